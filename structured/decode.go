package structured

import (
	"encoding/base64"
	"fmt"
	"math"
	"sort"
	"strconv"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"xdao.co/hashes/codec"
	"xdao.co/hashes/value"
)

// Decode parses data in format f into a value. Raw data becomes a binary value.
func Decode(f Format, data []byte) (value.Value, error) {
	switch f {
	case Raw:
		return value.Binary(data), nil
	case JSONC:
		return decodeYAML(jsonc.ToJSON(data))
	case YAML, JSON:
		return decodeYAML(data)
	case CBOR:
		var doc any
		if err := codec.Unmarshal(data, &doc); err != nil {
			return value.Value{}, fmt.Errorf("decoding cbor: %w", err)
		}
		return fromAny(doc)
	default:
		return value.Value{}, fmt.Errorf("unknown format %q", f)
	}
}

func decodeYAML(data []byte) (value.Value, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return value.Value{}, fmt.Errorf("decoding document: %w", err)
	}
	if doc.Kind == 0 {
		return value.Nothing(), nil
	}
	return fromNode(&doc)
}

func fromNode(n *yaml.Node) (value.Value, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return value.Nothing(), nil
		}
		return fromNode(n.Content[0])
	case yaml.AliasNode:
		return fromNode(n.Alias)
	case yaml.SequenceNode:
		rows := make([]value.Value, len(n.Content))
		for i, c := range n.Content {
			v, err := fromNode(c)
			if err != nil {
				return value.Value{}, err
			}
			rows[i] = v
		}
		return value.List(rows...), nil
	case yaml.MappingNode:
		var rec value.Record
		for i := 0; i+1 < len(n.Content); i += 2 {
			k, vn := n.Content[i], n.Content[i+1]
			if k.Kind != yaml.ScalarNode {
				return value.Value{}, fmt.Errorf("line %d: record keys must be scalars", k.Line)
			}
			v, err := fromNode(vn)
			if err != nil {
				return value.Value{}, err
			}
			rec = rec.With(k.Value, v)
		}
		return value.FromRecord(rec), nil
	case yaml.ScalarNode:
		return fromScalar(n)
	default:
		return value.Value{}, fmt.Errorf("line %d: unsupported node kind %d", n.Line, n.Kind)
	}
}

func fromScalar(n *yaml.Node) (value.Value, error) {
	switch n.ShortTag() {
	case "!!null":
		return value.Nothing(), nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return value.Value{}, err
		}
		return value.Bool(b), nil
	case "!!int":
		var i int64
		if err := n.Decode(&i); err != nil {
			return value.Value{}, fmt.Errorf("line %d: %w", n.Line, err)
		}
		return value.Int(i), nil
	case "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return value.Value{}, fmt.Errorf("line %d: %w", n.Line, err)
		}
		return value.Float(f), nil
	case "!!binary":
		b, err := base64.StdEncoding.DecodeString(stripSpace(n.Value))
		if err != nil {
			return value.Value{}, fmt.Errorf("line %d: bad !!binary: %w", n.Line, err)
		}
		return value.Binary(b), nil
	default:
		return value.String(n.Value), nil
	}
}

func stripSpace(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case ' ', '\n', '\r', '\t':
		default:
			out = append(out, s[i])
		}
	}
	return string(out)
}

// fromAny converts a generic CBOR document.
func fromAny(x any) (value.Value, error) {
	switch t := x.(type) {
	case nil:
		return value.Nothing(), nil
	case string:
		return value.String(t), nil
	case []byte:
		return value.Binary(t), nil
	case bool:
		return value.Bool(t), nil
	case int64:
		return value.Int(t), nil
	case uint64:
		if t > math.MaxInt64 {
			return value.Value{}, fmt.Errorf("integer %d overflows int64", t)
		}
		return value.Int(int64(t)), nil
	case float32:
		return value.Float(float64(t)), nil
	case float64:
		return value.Float(t), nil
	case []any:
		rows := make([]value.Value, len(t))
		for i, e := range t {
			v, err := fromAny(e)
			if err != nil {
				return value.Value{}, fmt.Errorf("row %d: %w", i, err)
			}
			rows[i] = v
		}
		return value.List(rows...), nil
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		var rec value.Record
		for _, k := range keys {
			v, err := fromAny(t[k])
			if err != nil {
				return value.Value{}, fmt.Errorf("field %s: %w", strconv.Quote(k), err)
			}
			rec = rec.With(k, v)
		}
		return value.FromRecord(rec), nil
	default:
		return value.Value{}, fmt.Errorf("unsupported CBOR item %T", x)
	}
}

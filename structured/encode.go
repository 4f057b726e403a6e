package structured

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"

	"gopkg.in/yaml.v3"

	"xdao.co/hashes/codec"
	"xdao.co/hashes/value"
)

// Encode writes v to w in format f.
//
// Raw writes a string followed by a newline, binary data as-is, and falls back
// to YAML for anything else.
func Encode(w io.Writer, f Format, v value.Value) error {
	switch f {
	case Raw:
		if s, ok := v.AsString(); ok {
			_, err := io.WriteString(w, s+"\n")
			return err
		}
		if b, ok := v.AsBinary(); ok {
			_, err := w.Write(b)
			return err
		}
		return Encode(w, YAML, v)
	case JSON, JSONC:
		var buf bytes.Buffer
		if err := writeJSON(&buf, v); err != nil {
			return err
		}
		var out bytes.Buffer
		if err := json.Indent(&out, buf.Bytes(), "", "  "); err != nil {
			return err
		}
		out.WriteByte('\n')
		_, err := w.Write(out.Bytes())
		return err
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(toNode(v)); err != nil {
			return err
		}
		return enc.Close()
	case CBOR:
		return codec.NewEncoder(w).Encode(toAny(v))
	default:
		return fmt.Errorf("unknown format %q", f)
	}
}

// errorRecord is how embedded errors appear in documents.
func errorRecord(e *value.Error) value.Value {
	fields := []value.Field{
		{Name: "kind", Value: value.String(string(e.Kind))},
		{Name: "msg", Value: value.String(e.Error())},
	}
	if e.Expected != "" {
		fields = append(fields, value.Field{Name: "expected", Value: value.String(e.Expected)})
	}
	if e.Actual != "" {
		fields = append(fields, value.Field{Name: "actual", Value: value.String(e.Actual)})
	}
	if e.Path != "" {
		fields = append(fields, value.Field{Name: "path", Value: value.String(e.Path)})
	}
	return value.Rec(value.Field{Name: "error", Value: value.Rec(fields...)})
}

func writeJSON(buf *bytes.Buffer, v value.Value) error {
	switch v.Kind() {
	case value.KindNothing:
		buf.WriteString("null")
	case value.KindString:
		s, _ := v.AsString()
		b, err := json.Marshal(s)
		if err != nil {
			return err
		}
		buf.Write(b)
	case value.KindBinary:
		// JSON has no byte strings; bytes are written as an array of numbers.
		b, _ := v.AsBinary()
		buf.WriteByte('[')
		for i, c := range b {
			if i > 0 {
				buf.WriteByte(',')
			}
			buf.WriteString(strconv.Itoa(int(c)))
		}
		buf.WriteByte(']')
	case value.KindInt:
		i, _ := v.AsInt()
		buf.WriteString(strconv.FormatInt(i, 10))
	case value.KindFloat:
		f, _ := v.AsFloat()
		if math.IsInf(f, 0) || math.IsNaN(f) {
			return fmt.Errorf("cannot encode %v as JSON", f)
		}
		buf.WriteString(strconv.FormatFloat(f, 'g', -1, 64))
	case value.KindBool:
		b, _ := v.AsBool()
		buf.WriteString(strconv.FormatBool(b))
	case value.KindRecord:
		rec, _ := v.AsRecord()
		buf.WriteByte('{')
		for i, f := range rec.Fields() {
			if i > 0 {
				buf.WriteByte(',')
			}
			k, err := json.Marshal(f.Name)
			if err != nil {
				return err
			}
			buf.Write(k)
			buf.WriteByte(':')
			if err := writeJSON(buf, f.Value); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	case value.KindList:
		rows, _ := v.AsList()
		buf.WriteByte('[')
		for i, row := range rows {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSON(buf, row); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case value.KindError:
		e, _ := v.AsError()
		return writeJSON(buf, errorRecord(e))
	}
	return nil
}

func toNode(v value.Value) *yaml.Node {
	scalar := func(tag, s string) *yaml.Node {
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: s}
	}
	switch v.Kind() {
	case value.KindString:
		s, _ := v.AsString()
		return scalar("!!str", s)
	case value.KindBinary:
		b, _ := v.AsBinary()
		return scalar("!!binary", base64.StdEncoding.EncodeToString(b))
	case value.KindInt:
		i, _ := v.AsInt()
		return scalar("!!int", strconv.FormatInt(i, 10))
	case value.KindFloat:
		f, _ := v.AsFloat()
		return scalar("!!float", strconv.FormatFloat(f, 'g', -1, 64))
	case value.KindBool:
		b, _ := v.AsBool()
		return scalar("!!bool", strconv.FormatBool(b))
	case value.KindRecord:
		rec, _ := v.AsRecord()
		n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, f := range rec.Fields() {
			n.Content = append(n.Content, scalar("!!str", f.Name), toNode(f.Value))
		}
		return n
	case value.KindList:
		rows, _ := v.AsList()
		n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, row := range rows {
			n.Content = append(n.Content, toNode(row))
		}
		return n
	case value.KindError:
		e, _ := v.AsError()
		return toNode(errorRecord(e))
	default:
		return scalar("!!null", "null")
	}
}

func toAny(v value.Value) any {
	switch v.Kind() {
	case value.KindString:
		s, _ := v.AsString()
		return s
	case value.KindBinary:
		b, _ := v.AsBinary()
		return b
	case value.KindInt:
		i, _ := v.AsInt()
		return i
	case value.KindFloat:
		f, _ := v.AsFloat()
		return f
	case value.KindBool:
		b, _ := v.AsBool()
		return b
	case value.KindRecord:
		rec, _ := v.AsRecord()
		m := make(map[string]any, rec.Len())
		for _, f := range rec.Fields() {
			m[f.Name] = toAny(f.Value)
		}
		return m
	case value.KindList:
		rows, _ := v.AsList()
		out := make([]any, len(rows))
		for i, row := range rows {
			out[i] = toAny(row)
		}
		return out
	case value.KindError:
		e, _ := v.AsError()
		return toAny(errorRecord(e))
	default:
		return nil
	}
}

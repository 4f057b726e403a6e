package codec

import (
	"fmt"

	"xdao.co/hashes/value"
)

// Wire is the CBOR form of a value.Value. Records are encoded as field lists
// to keep their order.
type Wire struct {
	Type   string      `cbor:"t"`
	Str    string      `cbor:"s,omitempty"`
	Bin    []byte      `cbor:"b,omitempty"`
	Int    int64       `cbor:"i,omitempty"`
	Float  float64     `cbor:"f,omitempty"`
	Bool   bool        `cbor:"o,omitempty"`
	Fields []WireField `cbor:"r,omitempty"`
	List   []Wire      `cbor:"l,omitempty"`
	Err    *WireError  `cbor:"e,omitempty"`
}

type WireField struct {
	Name  string `cbor:"n"`
	Value Wire   `cbor:"v"`
}

type WireError struct {
	Kind     string `cbor:"kind"`
	Expected string `cbor:"expected,omitempty"`
	Actual   string `cbor:"actual,omitempty"`
	Path     string `cbor:"path,omitempty"`
	Message  string `cbor:"msg,omitempty"`
}

// ToWire converts v to its wire form.
func ToWire(v value.Value) Wire {
	w := Wire{Type: v.Kind().String()}
	switch v.Kind() {
	case value.KindString:
		w.Str, _ = v.AsString()
	case value.KindBinary:
		w.Bin, _ = v.AsBinary()
	case value.KindInt:
		w.Int, _ = v.AsInt()
	case value.KindFloat:
		w.Float, _ = v.AsFloat()
	case value.KindBool:
		w.Bool, _ = v.AsBool()
	case value.KindRecord:
		rec, _ := v.AsRecord()
		for _, f := range rec.Fields() {
			w.Fields = append(w.Fields, WireField{Name: f.Name, Value: ToWire(f.Value)})
		}
	case value.KindList:
		rows, _ := v.AsList()
		w.List = make([]Wire, len(rows))
		for i, row := range rows {
			w.List[i] = ToWire(row)
		}
	case value.KindError:
		e, _ := v.AsError()
		w.Err = &WireError{
			Kind:     string(e.Kind),
			Expected: e.Expected,
			Actual:   e.Actual,
			Path:     e.Path,
			Message:  e.Message,
		}
	}
	return w
}

// FromWire converts a wire value back. Unknown types are rejected.
func FromWire(w Wire) (value.Value, error) {
	switch w.Type {
	case "nothing":
		return value.Nothing(), nil
	case "string":
		return value.String(w.Str), nil
	case "binary":
		if w.Bin == nil {
			return value.Binary([]byte{}), nil
		}
		return value.Binary(w.Bin), nil
	case "int":
		return value.Int(w.Int), nil
	case "float":
		return value.Float(w.Float), nil
	case "bool":
		return value.Bool(w.Bool), nil
	case "record":
		fields := make([]value.Field, 0, len(w.Fields))
		for _, f := range w.Fields {
			v, err := FromWire(f.Value)
			if err != nil {
				return value.Value{}, fmt.Errorf("field %q: %w", f.Name, err)
			}
			fields = append(fields, value.Field{Name: f.Name, Value: v})
		}
		return value.Rec(fields...), nil
	case "list":
		rows := make([]value.Value, len(w.List))
		for i, lw := range w.List {
			v, err := FromWire(lw)
			if err != nil {
				return value.Value{}, fmt.Errorf("row %d: %w", i, err)
			}
			rows[i] = v
		}
		return value.List(rows...), nil
	case "error":
		if w.Err == nil {
			return value.Value{}, fmt.Errorf("error value without payload")
		}
		return value.FromError(&value.Error{
			Kind:     value.ErrorKind(w.Err.Kind),
			Expected: w.Err.Expected,
			Actual:   w.Err.Actual,
			Path:     w.Err.Path,
			Message:  w.Err.Message,
		}), nil
	default:
		return value.Value{}, fmt.Errorf("unknown value type %q", w.Type)
	}
}

// MarshalValue encodes v as deterministic CBOR.
func MarshalValue(v value.Value) ([]byte, error) {
	return Marshal(ToWire(v))
}

// UnmarshalValue decodes bytes produced by MarshalValue.
func UnmarshalValue(data []byte) (value.Value, error) {
	var w Wire
	if err := Unmarshal(data, &w); err != nil {
		return value.Value{}, fmt.Errorf("decoding value: %w", err)
	}
	return FromWire(w)
}

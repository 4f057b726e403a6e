// Package value models the structured pipeline values commands consume and
// produce.
//
// A Value is a tagged variant: exactly one of string, binary, int, float,
// bool, nothing, record, list or error. Values are immutable in practice;
// every operation that changes a container returns a rebuilt copy and leaves
// the input untouched.
package value

import (
	"bytes"
	"fmt"
)

// Kind identifies the variant held by a Value.
type Kind uint8

const (
	KindNothing Kind = iota
	KindString
	KindBinary
	KindInt
	KindFloat
	KindBool
	KindRecord
	KindList
	KindError
)

func (k Kind) String() string {
	switch k {
	case KindNothing:
		return "nothing"
	case KindString:
		return "string"
	case KindBinary:
		return "binary"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindRecord:
		return "record"
	case KindList:
		return "list"
	case KindError:
		return "error"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Value is one pipeline value. The zero Value is nothing.
type Value struct {
	kind Kind
	str  string
	bin  []byte
	i    int64
	f    float64
	b    bool
	rec  Record
	list []Value
	err  *Error
}

func Nothing() Value { return Value{} }
func String(s string) Value { return Value{kind: KindString, str: s} }
func Binary(b []byte) Value { return Value{kind: KindBinary, bin: b} }
func Int(i int64) Value { return Value{kind: KindInt, i: i} }
func Float(f float64) Value { return Value{kind: KindFloat, f: f} }
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }
func FromRecord(r Record) Value { return Value{kind: KindRecord, rec: r} }
func List(vs ...Value) Value { return Value{kind: KindList, list: vs} }

// FromError embeds e as an error value. A nil e yields nothing.
func FromError(e *Error) Value {
	if e == nil {
		return Nothing()
	}
	return Value{kind: KindError, err: e}
}

func (v Value) Kind() Kind { return v.kind }

// TypeName is the name used in type mismatch messages.
func (v Value) TypeName() string {
	switch v.kind {
	case KindList:
		return fmt.Sprintf("list<%s>", elementType(v.list))
	default:
		return v.kind.String()
	}
}

func elementType(vs []Value) string {
	if len(vs) == 0 {
		return "any"
	}
	t := vs[0].kind
	for _, e := range vs[1:] {
		if e.kind != t {
			return "any"
		}
	}
	return t.String()
}

func (v Value) AsString() (string, bool) { return v.str, v.kind == KindString }
func (v Value) AsBinary() ([]byte, bool) { return v.bin, v.kind == KindBinary }
func (v Value) AsInt() (int64, bool) { return v.i, v.kind == KindInt }
func (v Value) AsFloat() (float64, bool) { return v.f, v.kind == KindFloat }
func (v Value) AsBool() (bool, bool) { return v.b, v.kind == KindBool }
func (v Value) AsRecord() (Record, bool) { return v.rec, v.kind == KindRecord }
func (v Value) AsList() ([]Value, bool) { return v.list, v.kind == KindList }
func (v Value) AsError() (*Error, bool) { return v.err, v.kind == KindError }

func (v Value) IsError() bool { return v.kind == KindError }

// Equal reports whether a and b hold the same variant with equal contents.
// Record field order is significant.
func Equal(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindNothing:
		return true
	case KindString:
		return a.str == b.str
	case KindBinary:
		return bytes.Equal(a.bin, b.bin)
	case KindInt:
		return a.i == b.i
	case KindFloat:
		return a.f == b.f
	case KindBool:
		return a.b == b.b
	case KindRecord:
		return a.rec.equal(b.rec)
	case KindList:
		if len(a.list) != len(b.list) {
			return false
		}
		for i := range a.list {
			if !Equal(a.list[i], b.list[i]) {
				return false
			}
		}
		return true
	case KindError:
		return *a.err == *b.err
	}
	return false
}

// String renders v for diagnostics.
func (v Value) String() string {
	switch v.kind {
	case KindNothing:
		return "nothing"
	case KindString:
		return fmt.Sprintf("%q", v.str)
	case KindBinary:
		return fmt.Sprintf("0x[%x]", v.bin)
	case KindInt:
		return fmt.Sprintf("%d", v.i)
	case KindFloat:
		return fmt.Sprintf("%g", v.f)
	case KindBool:
		return fmt.Sprintf("%t", v.b)
	case KindRecord:
		return v.rec.String()
	case KindList:
		var buf bytes.Buffer
		buf.WriteByte('[')
		for i, e := range v.list {
			if i > 0 {
				buf.WriteString(", ")
			}
			buf.WriteString(e.String())
		}
		buf.WriteByte(']')
		return buf.String()
	case KindError:
		return "error: " + v.err.Error()
	}
	return "?"
}

package value

import "strings"

// Field is one named column of a Record.
type Field struct {
	Name  string
	Value Value
}

// Record is an ordered set of uniquely named fields.
type Record struct {
	fields []Field
}

// NewRecord builds a record from fields in order. A repeated name replaces the
// earlier value in place.
func NewRecord(fields ...Field) Record {
	var r Record
	for _, f := range fields {
		r = r.With(f.Name, f.Value)
	}
	return r
}

// Rec is shorthand for FromRecord(NewRecord(fields...)).
func Rec(fields ...Field) Value { return FromRecord(NewRecord(fields...)) }

func (r Record) Len() int { return len(r.fields) }

// Fields returns a copy of the fields in order.
func (r Record) Fields() []Field {
	out := make([]Field, len(r.fields))
	copy(out, r.fields)
	return out
}

func (r Record) Columns() []string {
	out := make([]string, len(r.fields))
	for i, f := range r.fields {
		out[i] = f.Name
	}
	return out
}

func (r Record) Get(name string) (Value, bool) {
	for _, f := range r.fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return Value{}, false
}

// With returns a copy of r with name set to v. Existing fields keep their
// position; new fields are appended.
func (r Record) With(name string, v Value) Record {
	out := make([]Field, len(r.fields), len(r.fields)+1)
	copy(out, r.fields)
	for i := range out {
		if out[i].Name == name {
			out[i].Value = v
			return Record{fields: out}
		}
	}
	return Record{fields: append(out, Field{Name: name, Value: v})}
}

func (r Record) equal(o Record) bool {
	if len(r.fields) != len(o.fields) {
		return false
	}
	for i := range r.fields {
		if r.fields[i].Name != o.fields[i].Name || !Equal(r.fields[i].Value, o.fields[i].Value) {
			return false
		}
	}
	return true
}

func (r Record) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, f := range r.fields {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(f.Name)
		b.WriteString(": ")
		b.WriteString(f.Value.String())
	}
	b.WriteByte('}')
	return b.String()
}

package value

import (
	"errors"
	"strings"
	"testing"
)

func TestParseCellPath(t *testing.T) {
	cases := []struct {
		in   string
		want []Member
	}{
		{"a", []Member{{Name: "a"}}},
		{"a.b.0.c", []Member{{Name: "a"}, {Name: "b"}, {Index: 0, IsIndex: true}, {Name: "c"}}},
		{"a?.12", []Member{{Name: "a", Optional: true}, {Index: 12, IsIndex: true}}},
		{`"a.b".c`, []Member{{Name: "a.b"}, {Name: "c"}}},
		{`"0"?`, []Member{{Name: "0", Optional: true}}},
	}
	for _, tc := range cases {
		p, err := ParseCellPath(tc.in)
		if err != nil {
			t.Fatalf("ParseCellPath(%q): %v", tc.in, err)
		}
		if len(p.Members) != len(tc.want) {
			t.Fatalf("ParseCellPath(%q) = %v", tc.in, p.Members)
		}
		for i := range tc.want {
			if p.Members[i] != tc.want[i] {
				t.Fatalf("ParseCellPath(%q)[%d] = %+v, want %+v", tc.in, i, p.Members[i], tc.want[i])
			}
		}
		if again, err := ParseCellPath(p.String()); err != nil || again.String() != p.String() {
			t.Fatalf("String round trip of %q: %q, %v", tc.in, p.String(), err)
		}
	}

	for _, bad := range []string{"", ".", "a.", "a..b", `"open`, "a?b"} {
		if _, err := ParseCellPath(bad); err == nil {
			t.Fatalf("ParseCellPath(%q) succeeded, want error", bad)
		}
	}
}

func upper(v Value) Value {
	s, ok := v.AsString()
	if !ok {
		return FromError(Unsupported("string", v))
	}
	return String(strings.ToUpper(s))
}

func TestUpdateRecordPreservesShape(t *testing.T) {
	in := Rec(
		Field{"name", String("ada")},
		Field{"meta", Rec(Field{"lang", String("go")}, Field{"n", Int(3)})},
		Field{"tags", List(String("x"), String("y"))},
	)
	got, err := in.Update(MustParseCellPath("meta.lang"), upper)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	want := Rec(
		Field{"name", String("ada")},
		Field{"meta", Rec(Field{"lang", String("GO")}, Field{"n", Int(3)})},
		Field{"tags", List(String("x"), String("y"))},
	)
	if !Equal(got, want) {
		t.Fatalf("got %s\nwant %s", got, want)
	}
	// input untouched
	meta, _ := in.AsRecord()
	m, _ := meta.Get("meta")
	lang, _ := m.AsRecord()
	if l, _ := lang.Get("lang"); !Equal(l, String("go")) {
		t.Fatalf("input mutated: %s", in)
	}
}

func TestUpdateColumnAcrossRows(t *testing.T) {
	in := List(
		Rec(Field{"a", String("x")}, Field{"b", Int(1)}),
		Rec(Field{"a", String("y")}, Field{"b", Int(2)}),
	)
	got, err := in.Update(MustParseCellPath("a"), upper)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	want := List(
		Rec(Field{"a", String("X")}, Field{"b", Int(1)}),
		Rec(Field{"a", String("Y")}, Field{"b", Int(2)}),
	)
	if !Equal(got, want) {
		t.Fatalf("got %s want %s", got, want)
	}
}

func TestUpdateIndex(t *testing.T) {
	in := List(String("a"), String("b"))
	got, err := in.Update(MustParseCellPath("1"), upper)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if !Equal(got, List(String("a"), String("B"))) {
		t.Fatalf("got %s", got)
	}
}

func TestUpdateErrors(t *testing.T) {
	rec := Rec(Field{"a", String("x")})
	cases := []struct {
		name string
		in   Value
		path string
		kind ErrorKind
	}{
		{"MissingColumn", rec, "b", CellPathNotFound},
		{"IndexOutOfRange", List(String("x")), "3", CellPathNotFound},
		{"IndexIntoRecord", rec, "0", CellPathType},
		{"MemberIntoScalar", rec, "a.b", CellPathType},
		{"ErrorOnPath", Rec(Field{"a", FromError(&Error{Kind: Remote, Message: "boom"})}), "a.b", Remote},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.in.Update(MustParseCellPath(tc.path), upper)
			if err == nil {
				t.Fatalf("expected error")
			}
			var ve *Error
			if !errors.As(err, &ve) || ve.Kind != tc.kind {
				t.Fatalf("error = %v, want kind %s", err, tc.kind)
			}
			if !Equal(got, tc.in) {
				t.Fatalf("value changed on error: %s", got)
			}
		})
	}
}

func TestUpdateOptionalMissing(t *testing.T) {
	rec := Rec(Field{"a", String("x")})
	for _, p := range []string{"b?", "a.b?", "0?"} {
		got, err := rec.Update(MustParseCellPath(p), upper)
		if err != nil {
			t.Fatalf("%s: unexpected error %v", p, err)
		}
		if !Equal(got, rec) {
			t.Fatalf("%s: got %s", p, got)
		}
	}
}

func TestRecordWithKeepsOrder(t *testing.T) {
	r := NewRecord(Field{"z", Int(1)}, Field{"a", Int(2)})
	r2 := r.With("z", Int(9)).With("m", Int(3))
	if got := strings.Join(r2.Columns(), ","); got != "z,a,m" {
		t.Fatalf("columns = %s", got)
	}
	if v, _ := r.Get("z"); !Equal(v, Int(1)) {
		t.Fatalf("With mutated receiver")
	}
}

func TestTypeNameAndError(t *testing.T) {
	if got := List(Int(1), Int(2)).TypeName(); got != "list<int>" {
		t.Fatalf("TypeName = %s", got)
	}
	if got := List(Int(1), String("x")).TypeName(); got != "list<any>" {
		t.Fatalf("TypeName = %s", got)
	}
	e := Unsupported("string or binary", Int(5))
	if e.Actual != "int" || !strings.Contains(e.Error(), "expected string or binary, got int") {
		t.Fatalf("unexpected error text %q", e.Error())
	}
	if !FromError(e).IsError() || FromError(nil).Kind() != KindNothing {
		t.Fatalf("FromError mismatch")
	}
}

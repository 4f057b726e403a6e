package hasher_test

import (
	"bytes"
	"context"
	"encoding/hex"
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"xdao.co/hashes/algorithm"
	"xdao.co/hashes/digest"
	"xdao.co/hashes/hasher"
	"xdao.co/hashes/value"
)

const (
	sha256Hex = "71c480df93d6ae2f1efad1447c66c9525e316218cf51fc8d9ed832f2daf18b73"
	sha1Hex   = "32d10c7b8cf96570ca04ce37f2a19d84240d3a89"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("hex: %v", err)
	}
	return b
}

func newSHA256(t *testing.T) *hasher.Hasher[algorithm.SHA256, *algorithm.SHA256] {
	t.Helper()
	return hasher.New[algorithm.SHA256](hasher.Metadata{
		Hex:        sha256Hex,
		Binary:     mustHex(t, sha256Hex),
		Multicodec: 0x12,
	})
}

func run(t *testing.T, cmd hasher.Command, call hasher.Call) value.Value {
	t.Helper()
	v, err := cmd.Run(context.Background(), call)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	return v
}

func sumHex(s string) value.Value {
	return value.String(hex.EncodeToString(digest.Sum[algorithm.SHA256]([]byte(s))))
}

func TestSignature(t *testing.T) {
	cmd := newSHA256(t)
	sig := cmd.Signature()
	if sig.Name != "hash sha256" || cmd.Name() != "hash sha256" {
		t.Fatalf("name = %q", sig.Name)
	}
	if sig.Description != "Hash a value using the sha256 hash algorithm." {
		t.Fatalf("description = %q", sig.Description)
	}
	if sig.Category != hasher.Category || len(sig.InputOutputs) != 4 {
		t.Fatalf("signature = %+v", sig)
	}
	if sig.Rest.Description != "Optionally sha256 hash data by cell path." {
		t.Fatalf("rest = %q", sig.Rest.Description)
	}
	if sig.Switches[0].Long != "binary" || sig.Switches[0].Short != 'b' {
		t.Fatalf("binary switch = %+v", sig.Switches[0])
	}
}

func TestExamplesMatchLiveRun(t *testing.T) {
	cmd := newSHA256(t)
	ex := cmd.Examples()
	if len(ex) != 3 {
		t.Fatalf("got %d examples", len(ex))
	}
	if ex[2].Result != nil {
		t.Fatalf("file example must not carry a result")
	}
	if ex[2].Example != "hashes sha256 --file ./release.tar.gz" {
		t.Fatalf("file example = %q", ex[2].Example)
	}
	if !strings.HasSuffix(ex[1].Example, "--binary") {
		t.Fatalf("second example = %q", ex[1].Example)
	}

	in := hasher.ValueInput(value.String(digest.TestVector))
	hexOut := run(t, cmd, hasher.Call{Input: in})
	if !value.Equal(hexOut, *ex[0].Result) {
		t.Fatalf("hex example %s, live %s", ex[0].Result, hexOut)
	}
	binOut := run(t, cmd, hasher.Call{Input: in, Binary: true})
	if !value.Equal(binOut, *ex[1].Result) {
		t.Fatalf("binary example %s, live %s", ex[1].Result, binOut)
	}

	// hex output decodes to the binary output
	s, _ := hexOut.AsString()
	b, _ := binOut.AsBinary()
	if !bytes.Equal(mustHex(t, s), b) {
		t.Fatalf("hex and binary disagree")
	}
}

func TestBinaryScalar(t *testing.T) {
	cmd := newSHA256(t)
	got := run(t, cmd, hasher.Call{Input: hasher.ValueInput(value.Binary([]byte(digest.TestVector)))})
	if !value.Equal(got, value.String(sha256Hex)) {
		t.Fatalf("got %s", got)
	}
}

func TestStreamMatchesScalarAcrossChunkSizes(t *testing.T) {
	cmd := newSHA256(t)
	msg := strings.Repeat(digest.TestVector, 1000)
	want := sumHex(msg)
	for _, chunk := range []int{0, 1, 7, 26, 4096, 1 << 20} {
		r := iotest.OneByteReader(strings.NewReader(msg))
		got := run(t, cmd, hasher.Call{Input: hasher.StreamInput(r), ChunkSize: chunk})
		if !value.Equal(got, want) {
			t.Fatalf("chunk %d: got %s want %s", chunk, got, want)
		}
	}
}

func TestStreamIgnoresCellPaths(t *testing.T) {
	cmd := newSHA256(t)
	got := run(t, cmd, hasher.Call{
		Input:     hasher.StreamInput(strings.NewReader(digest.TestVector)),
		CellPaths: []string{"a.b"},
	})
	if !value.Equal(got, value.String(sha256Hex)) {
		t.Fatalf("got %s", got)
	}
}

func TestStreamReadError(t *testing.T) {
	cmd := newSHA256(t)
	boom := errors.New("disk on fire")
	r := io.MultiReader(strings.NewReader("abc"), iotest.ErrReader(boom))
	_, err := cmd.Run(context.Background(), hasher.Call{Input: hasher.StreamInput(r)})
	if !hasher.IsKind(err, hasher.KindInput) || !errors.Is(err, boom) {
		t.Fatalf("err = %v", err)
	}
	if hasher.RuleID(err) != hasher.RuleStreamRead {
		t.Fatalf("rule = %s", hasher.RuleID(err))
	}
}

func TestStructuredPaths(t *testing.T) {
	cmd := newSHA256(t)
	in := value.Rec(
		value.Field{Name: "name", Value: value.String("ada")},
		value.Field{Name: "age", Value: value.Int(36)},
		value.Field{Name: "blob", Value: value.Binary([]byte("xyz"))},
		value.Field{Name: "keep", Value: value.String("untouched")},
	)
	got := run(t, cmd, hasher.Call{Input: hasher.ValueInput(in), CellPaths: []string{"name", "blob"}})
	want := value.Rec(
		value.Field{Name: "name", Value: sumHex("ada")},
		value.Field{Name: "age", Value: value.Int(36)},
		value.Field{Name: "blob", Value: sumHex("xyz")},
		value.Field{Name: "keep", Value: value.String("untouched")},
	)
	if !value.Equal(got, want) {
		t.Fatalf("got %s\nwant %s", got, want)
	}
}

func TestErrorIsolation(t *testing.T) {
	cmd := newSHA256(t)
	in := value.Rec(
		value.Field{Name: "n", Value: value.Int(1)},
		value.Field{Name: "s", Value: value.String("ok")},
	)
	got := run(t, cmd, hasher.Call{Input: hasher.ValueInput(in), CellPaths: []string{"n", "s"}})
	rec, ok := got.AsRecord()
	if !ok {
		t.Fatalf("got %s", got)
	}
	n, _ := rec.Get("n")
	e, ok := n.AsError()
	if !ok || e.Kind != value.UnsupportedInput || e.Expected != "string or binary" || e.Actual != "int" {
		t.Fatalf("n = %s", n)
	}
	if e.Path != "n" {
		t.Fatalf("n: error path = %q", e.Path)
	}
	if s, _ := rec.Get("s"); !value.Equal(s, sumHex("ok")) {
		t.Fatalf("s = %s", s)
	}
}

func TestUnsupportedLeafCarriesPath(t *testing.T) {
	cmd := newSHA256(t)
	in := value.Rec(value.Field{Name: "outer", Value: value.Rec(value.Field{Name: "n", Value: value.Int(1)})})
	got := run(t, cmd, hasher.Call{Input: hasher.ValueInput(in), CellPaths: []string{"outer.n"}})
	rec, _ := got.AsRecord()
	outer, _ := rec.Get("outer")
	inner, _ := outer.AsRecord()
	n, _ := inner.Get("n")
	e, ok := n.AsError()
	if !ok || e.Path != "outer.n" {
		t.Fatalf("outer.n = %s", n)
	}
	if !strings.Contains(e.Error(), "(at outer.n)") {
		t.Fatalf("message lacks position: %q", e.Error())
	}
}

func TestTableColumn(t *testing.T) {
	cmd := newSHA256(t)
	upstream := value.FromError(&value.Error{Kind: value.Remote, Message: "upstream"})
	in := value.List(
		value.Rec(value.Field{Name: "a", Value: value.String("x")}),
		upstream,
		value.Rec(value.Field{Name: "b", Value: value.String("y")}),
	)
	got := run(t, cmd, hasher.Call{Input: hasher.ValueInput(in), CellPaths: []string{"a"}})
	rows, ok := got.AsList()
	if !ok || len(rows) != 3 {
		t.Fatalf("got %s", got)
	}
	if !value.Equal(rows[0], value.Rec(value.Field{Name: "a", Value: sumHex("x")})) {
		t.Fatalf("row 0 = %s", rows[0])
	}
	if !value.Equal(rows[1], upstream) {
		t.Fatalf("error row not passed through: %s", rows[1])
	}
	e, ok := rows[2].AsError()
	if !ok || e.Kind != value.CellPathNotFound {
		t.Fatalf("row 2 = %s", rows[2])
	}
}

func TestOptionalPathLeavesRow(t *testing.T) {
	cmd := newSHA256(t)
	in := value.Rec(value.Field{Name: "b", Value: value.String("y")})
	got := run(t, cmd, hasher.Call{Input: hasher.ValueInput(in), CellPaths: []string{"a?"}})
	if !value.Equal(got, in) {
		t.Fatalf("got %s", got)
	}
}

func TestNoPaths(t *testing.T) {
	cmd := newSHA256(t)

	rec := value.Rec(value.Field{Name: "a", Value: value.String("x")})
	got := run(t, cmd, hasher.Call{Input: hasher.ValueInput(rec)})
	if e, ok := got.AsError(); !ok || e.Kind != value.UnsupportedInput || e.Actual != "record" {
		t.Fatalf("record without paths = %s", got)
	}

	list := value.List(value.String("x"), value.Int(2))
	got = run(t, cmd, hasher.Call{Input: hasher.ValueInput(list)})
	rows, _ := got.AsList()
	if len(rows) != 2 || !value.Equal(rows[0], sumHex("x")) || !rows[1].IsError() {
		t.Fatalf("list without paths = %s", got)
	}
}

func TestErrorPassThrough(t *testing.T) {
	cmd := newSHA256(t)
	in := value.FromError(&value.Error{Kind: value.Remote, Message: "already failed"})
	for _, call := range []hasher.Call{
		{Input: hasher.ValueInput(in)},
		{Input: hasher.ValueInput(in), Binary: true},
		{Input: hasher.ValueInput(in), CellPaths: []string{"x"}},
	} {
		if got := run(t, cmd, call); !value.Equal(got, in) {
			t.Fatalf("got %s", got)
		}
	}
}

func TestArgumentErrors(t *testing.T) {
	cmd := newSHA256(t)
	in := hasher.ValueInput(value.String("x"))
	cases := []struct {
		name string
		call hasher.Call
		rule string
	}{
		{"ConflictingModes", hasher.Call{Input: in, Binary: true, CID: true}, hasher.RuleConflictingModes},
		{"BadCellPath", hasher.Call{Input: in, CellPaths: []string{"a..b"}}, hasher.RuleBadCellPath},
		{"NegativeChunk", hasher.Call{Input: in, ChunkSize: -1}, hasher.RuleBadChunkSize},
		{"OversizedChunk", hasher.Call{Input: in, ChunkSize: hasher.MaxChunkSize + 1}, hasher.RuleBadChunkSize},
		{"HugeStreamChunk", hasher.Call{Input: hasher.StreamInput(strings.NewReader("abc")), ChunkSize: 1 << 62}, hasher.RuleBadChunkSize},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := cmd.Run(context.Background(), tc.call)
			if !hasher.IsKind(err, hasher.KindArguments) || hasher.RuleID(err) != tc.rule {
				t.Fatalf("err = %v (rule %s)", err, hasher.RuleID(err))
			}
		})
	}
}

func TestMaxChunkSizeAccepted(t *testing.T) {
	cmd := newSHA256(t)
	got := run(t, cmd, hasher.Call{Input: hasher.StreamInput(strings.NewReader(digest.TestVector)), ChunkSize: hasher.MaxChunkSize})
	if !value.Equal(got, value.String(sha256Hex)) {
		t.Fatalf("got %s", got)
	}
}

func TestArgumentsCheckedBeforeReading(t *testing.T) {
	cmd := newSHA256(t)
	r := &countingReader{r: strings.NewReader("data")}
	_, err := cmd.Run(context.Background(), hasher.Call{Input: hasher.StreamInput(r), Binary: true, Multihash: true})
	if !hasher.IsKind(err, hasher.KindArguments) {
		t.Fatalf("err = %v", err)
	}
	if r.n != 0 {
		t.Fatalf("stream read %d times before argument check", r.n)
	}
}

type countingReader struct {
	r io.Reader
	n int
}

func (c *countingReader) Read(p []byte) (int, error) {
	c.n++
	return c.r.Read(p)
}

func TestMultihashAndCID(t *testing.T) {
	cmd := newSHA256(t)
	in := hasher.ValueInput(value.String(digest.TestVector))
	mh := run(t, cmd, hasher.Call{Input: in, Multihash: true})
	if !value.Equal(mh, value.String("QmVzkZtzuJnQ2RdKbwGuGJbpmTAgevZpmtseG9uqYTJyz2")) {
		t.Fatalf("multihash = %s", mh)
	}
	c := run(t, cmd, hasher.Call{Input: in, CID: true})
	if !value.Equal(c, value.String("bafkreidrysan7e6wvyxr56wrir6gnskslyyweggpkh6i3hwyglznv4mlom")) {
		t.Fatalf("cid = %s", c)
	}
}

func TestMultihashWithoutMulticodec(t *testing.T) {
	cmd := hasher.New[algorithm.SHA1](hasher.Metadata{Hex: sha1Hex, Binary: mustHex(t, sha1Hex)})
	_, err := cmd.Run(context.Background(), hasher.Call{Input: hasher.ValueInput(value.String("x")), CID: true})
	if hasher.RuleID(err) != hasher.RuleNoMulticodec {
		t.Fatalf("err = %v", err)
	}
}

func TestInterrupted(t *testing.T) {
	cmd := newSHA256(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	for _, in := range []hasher.Input{
		hasher.StreamInput(strings.NewReader("x")),
		hasher.ValueInput(value.List(value.String("a"), value.String("b"))),
	} {
		v, err := cmd.Run(ctx, hasher.Call{Input: in})
		if !hasher.IsKind(err, hasher.KindInterrupted) || !errors.Is(err, context.Canceled) {
			t.Fatalf("err = %v", err)
		}
		if v.Kind() != value.KindNothing {
			t.Fatalf("partial result %s", v)
		}
	}
}

func TestParseMode(t *testing.T) {
	for _, m := range []hasher.Mode{hasher.ModeHex, hasher.ModeBinary, hasher.ModeMultihash, hasher.ModeCID} {
		got, err := hasher.ParseMode(m.String())
		if err != nil || got != m {
			t.Fatalf("ParseMode(%s) = %v, %v", m, got, err)
		}
		if mode, err := (hasher.Call{}).WithMode(m).Mode(); err != nil || mode != m {
			t.Fatalf("WithMode(%s).Mode() = %v, %v", m, mode, err)
		}
	}
	if _, err := hasher.ParseMode("base64"); err == nil {
		t.Fatalf("expected error")
	}
}

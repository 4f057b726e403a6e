// Package digesttest provides a reusable conformance suite for digest.Adapter
// implementations.
package digesttest

import (
	"bytes"
	"testing"

	"xdao.co/hashes/digest"
)

// NewAdapter constructs a fresh adapter for a test.
type NewAdapter func() digest.Adapter

// RunAdapterConformance checks the Adapter contract and that the adapter
// produces wantHex for digest.TestVector.
func RunAdapterConformance(t *testing.T, newAdapter NewAdapter, wantHex string) {
	t.Helper()

	want, err := digest.ParseHex(wantHex, 0)
	if err != nil {
		t.Fatalf("ParseHex(%q) failed: %v", wantHex, err)
	}

	t.Run("Vector", func(t *testing.T) {
		a := newAdapter()
		a.Update([]byte(digest.TestVector))
		got := a.Finalize()
		if !bytes.Equal(got, want) {
			t.Fatalf("%s digest mismatch: got %x want %x", a.Identifier(), got, want)
		}
	})

	t.Run("Size", func(t *testing.T) {
		a := newAdapter()
		if a.Size() != len(want) {
			t.Fatalf("Size() = %d, want %d", a.Size(), len(want))
		}
		a.Update([]byte("anything"))
		if got := a.Finalize(); len(got) != a.Size() {
			t.Fatalf("Finalize returned %d bytes, Size() = %d", len(got), a.Size())
		}
	})

	t.Run("ChunkingInvariant", func(t *testing.T) {
		msg := []byte(digest.TestVector)
		for _, split := range [][]int{{1}, {3, 5}, {13}, {0, 26}, {25}} {
			a := newAdapter()
			prev := 0
			for _, at := range split {
				a.Update(msg[prev:at])
				prev = at
			}
			a.Update(msg[prev:])
			if got := a.Finalize(); !bytes.Equal(got, want) {
				t.Fatalf("split %v: got %x want %x", split, got, want)
			}
		}
	})

	t.Run("EmptyUpdates", func(t *testing.T) {
		a := newAdapter()
		a.Update(nil)
		a.Update([]byte(digest.TestVector))
		a.Update([]byte{})
		if got := a.Finalize(); !bytes.Equal(got, want) {
			t.Fatalf("empty updates changed digest: got %x want %x", got, want)
		}
	})

	t.Run("Reset", func(t *testing.T) {
		a := newAdapter()
		a.Update([]byte("garbage that must be forgotten"))
		_ = a.Finalize()
		a.Reset()
		a.Update([]byte(digest.TestVector))
		if got := a.Finalize(); !bytes.Equal(got, want) {
			t.Fatalf("digest after Reset: got %x want %x", got, want)
		}
	})

	t.Run("UpdateAfterFinalizePanics", func(t *testing.T) {
		a := newAdapter()
		_ = a.Finalize()
		defer func() {
			if recover() == nil {
				t.Fatalf("Update after Finalize did not panic")
			}
		}()
		a.Update([]byte("x"))
	})

	t.Run("Identifier", func(t *testing.T) {
		a := newAdapter()
		if a.Identifier() == "" {
			t.Fatalf("Identifier is empty")
		}
		if a.Identifier() != newAdapter().Identifier() {
			t.Fatalf("Identifier is not stable")
		}
	})
}

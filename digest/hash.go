package digest

import (
	"errors"
	"hash"
)

// ErrFinalized is the panic value raised when a finalized adapter is reused
// without Reset.
var ErrFinalized = errors.New("digest: adapter already finalized")

// Hash implements Update, Finalize and Size on top of a hash.Hash.
// Concrete adapters embed it and call Init from their Reset method.
// The zero value is unusable; construct adapters with New, which calls Reset.
type Hash struct {
	h         hash.Hash
	finalized bool
}

// Init installs h as the running state.
func (s *Hash) Init(h hash.Hash) {
	s.h = h
	s.finalized = false
}

func (s *Hash) Update(p []byte) {
	if s.finalized {
		panic(ErrFinalized)
	}
	// hash.Hash.Write never returns an error.
	_, _ = s.h.Write(p)
}

func (s *Hash) Finalize() []byte {
	if s.finalized {
		panic(ErrFinalized)
	}
	s.finalized = true
	return s.h.Sum(nil)
}

func (s *Hash) Size() int { return s.h.Size() }

package digest

import "io"

// Sponge is an extendable-output function state.
type Sponge interface {
	io.Writer
	io.Reader
}

// XOF implements Update, Finalize and Size for an extendable-output function
// truncated to a fixed length. Like Hash, it must be initialized through Reset.
type XOF struct {
	x         Sponge
	size      int
	finalized bool
}

// Init installs x as the running state; Finalize reads size bytes from it.
func (s *XOF) Init(x Sponge, size int) {
	s.x = x
	s.size = size
	s.finalized = false
}

func (s *XOF) Update(p []byte) {
	if s.finalized {
		panic(ErrFinalized)
	}
	_, _ = s.x.Write(p)
}

func (s *XOF) Finalize() []byte {
	if s.finalized {
		panic(ErrFinalized)
	}
	s.finalized = true
	out := make([]byte, s.size)
	if _, err := io.ReadFull(s.x, out); err != nil {
		// XOF readers never run dry.
		panic(err)
	}
	return out
}

func (s *XOF) Size() int { return s.size }

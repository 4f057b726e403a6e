package digest

// Adapter is the capability set of one digest algorithm.
//
// Contract:
//   - Update MAY be called any number of times before Finalize.
//   - Finalize returns exactly Size() bytes and ends the computation; calling
//     Update or Finalize again panics until Reset is called.
//   - Reset returns the adapter to its initial, unfinalized state.
//   - Identifier is stable and is the command-facing algorithm name.
type Adapter interface {
	Update(p []byte)
	Finalize() []byte
	Reset()
	Identifier() string
	Size() int
}

// Algorithm constrains a pointer to a concrete adapter type T. It lets generic
// code construct monomorphic adapters without a runtime lookup:
//
//	a := digest.New[algorithm.SHA1]()
type Algorithm[T any] interface {
	*T
	Adapter
}

// New returns a fresh, reset adapter of type T.
func New[T any, A Algorithm[T]]() A {
	a := A(new(T))
	a.Reset()
	return a
}

// Sum computes the digest of data with a fresh adapter of type T.
func Sum[T any, A Algorithm[T]](data []byte) []byte {
	a := New[T, A]()
	a.Update(data)
	return a.Finalize()
}

// SumWith resets a, absorbs data and finalizes.
func SumWith(a Adapter, data []byte) []byte {
	a.Reset()
	a.Update(data)
	return a.Finalize()
}

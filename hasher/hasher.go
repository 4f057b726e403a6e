// Package hasher implements the generic hash command.
//
// One Hasher is instantiated per algorithm type, so every command is bound to
// its adapter at compile time:
//
//	cmd := hasher.New[algorithm.SHA256](sha256Metadata)
//
// A call hashes a byte stream incrementally, a bare string or binary value as
// a whole, or the leaves of a structured value addressed by cell paths.
// Unsupported leaves become embedded value.Error values; only invalid
// arguments, unreadable streams and interruption fail the whole call.
package hasher

import (
	"context"

	"xdao.co/hashes/digest"
	"xdao.co/hashes/value"
)

// Command is one hash command as the plugin façade exposes it.
type Command interface {
	Name() string
	// Algorithm is the identifier of the bound digest algorithm.
	Algorithm() string
	Signature() Signature
	Examples() []Example
	Metadata() Metadata
	Run(ctx context.Context, call Call) (value.Value, error)
}

// Hasher is the Command for algorithm type T.
type Hasher[T any, A digest.Algorithm[T]] struct {
	id  string
	md  Metadata
	sig Signature
}

// New binds the generic command to algorithm T with its build-time metadata.
func New[T any, A digest.Algorithm[T]](md Metadata) *Hasher[T, A] {
	id := digest.New[T, A]().Identifier()
	return &Hasher[T, A]{id: id, md: md, sig: signatureFor(id)}
}

func (h *Hasher[T, A]) Name() string { return h.sig.Name }
func (h *Hasher[T, A]) Algorithm() string { return h.id }
func (h *Hasher[T, A]) Signature() Signature { return h.sig }
func (h *Hasher[T, A]) Metadata() Metadata { return h.md }
func (h *Hasher[T, A]) Examples() []Example { return examplesFor(h.id, h.md) }

// Sum hashes data with a fresh adapter.
func (h *Hasher[T, A]) Sum(data []byte) []byte {
	return digest.Sum[T, A](data)
}

// Run executes one call. Arguments are validated before any input is read.
func (h *Hasher[T, A]) Run(ctx context.Context, call Call) (value.Value, error) {
	p, err := call.plan(h.md.Multicodec, h.id)
	if err != nil {
		return value.Value{}, err
	}
	if err := interrupted(ctx); err != nil {
		return value.Value{}, err
	}
	if call.Input.IsStream() {
		sum, err := h.hashStream(ctx, call.Input.Stream, p.chunkSize)
		if err != nil {
			return value.Value{}, err
		}
		return format(p.mode, sum, h.md.Multicodec)
	}
	return h.operate(ctx, call.Input.Value, p)
}

func interrupted(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return wrapError(KindInterrupted, RuleInterrupted, "hash interrupted", err)
	}
	return nil
}

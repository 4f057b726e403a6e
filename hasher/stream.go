package hasher

import (
	"context"
	"errors"
	"io"

	"xdao.co/hashes/digest"
	"xdao.co/hashes/internal/pool"
)

// hashStream feeds r into one adapter chunk by chunk. Interruption is checked
// before every chunk.
func (h *Hasher[T, A]) hashStream(ctx context.Context, r io.Reader, chunkSize int) ([]byte, error) {
	a := digest.New[T, A]()
	bp := pool.For(chunkSize)
	buf := bp.Get()
	defer bp.Put(buf)

	for {
		if err := interrupted(ctx); err != nil {
			return nil, err
		}
		buf.Reset()
		n, err := io.CopyN(buf, r, int64(chunkSize))
		if n > 0 {
			a.Update(buf.Bytes())
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, wrapError(KindInput, RuleStreamRead, "reading input stream", err)
		}
	}
	return a.Finalize(), nil
}

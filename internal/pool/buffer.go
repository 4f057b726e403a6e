// Package pool recycles the chunk buffers used when hashing byte streams.
package pool

import (
	"bytes"
	"math/bits"
	"sync"
)

// BufferPool manages buffers sized for one chunk length.
type BufferPool struct {
	size int
	pool sync.Pool
}

func NewBufferPool(size int) *BufferPool {
	return &BufferPool{
		size: size,
		pool: sync.Pool{
			New: func() any {
				return bytes.NewBuffer(make([]byte, 0, size))
			},
		},
	}
}

// Size is the chunk length this pool was created for.
func (bp *BufferPool) Size() int { return bp.size }

// Get returns an empty buffer.
func (bp *BufferPool) Get() *bytes.Buffer {
	buf := bp.pool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

// Put returns buf to the pool.
func (bp *BufferPool) Put(buf *bytes.Buffer) {
	// Buffers that grew past twice the chunk length are left to the GC.
	if buf.Cap() > bp.size*2 {
		return
	}
	buf.Reset()
	bp.pool.Put(buf)
}

var pools sync.Map // int -> *BufferPool

// For returns the shared pool for chunks of up to size bytes. Sizes are
// rounded up to a power of two so only a few pools ever exist. size must be
// positive.
func For(size int) *BufferPool {
	size = roundUp(size)
	if p, ok := pools.Load(size); ok {
		return p.(*BufferPool)
	}
	p, _ := pools.LoadOrStore(size, NewBufferPool(size))
	return p.(*BufferPool)
}

func roundUp(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}

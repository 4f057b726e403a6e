//go:build !hashes_no_xxhash

package algorithm

import (
	"github.com/cespare/xxhash/v2"

	"xdao.co/hashes/digest"
)

// XXHash64 uses seed zero.
type XXHash64 struct{ digest.Hash }

func (*XXHash64) Identifier() string { return "xxhash64" }
func (a *XXHash64) Reset() { a.Init(xxhash.New()) }

func init() {
	MustRegister(describe[XXHash64](familyXXHash, ClassChecksum, 0))
}

//go:build !hashes_no_blake3

package algorithm

import (
	"github.com/zeebo/blake3"

	"xdao.co/hashes/digest"
)

type BLAKE3 struct{ digest.Hash }

func (*BLAKE3) Identifier() string { return "blake3" }
func (a *BLAKE3) Reset() { a.Init(blake3.New()) }

func init() {
	MustRegister(describe[BLAKE3](familyBLAKE3, ClassCryptographic, 0x1e))
}

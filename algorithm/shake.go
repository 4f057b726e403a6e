//go:build !hashes_no_shake

package algorithm

import (
	"github.com/cloudflare/circl/xof"

	"xdao.co/hashes/digest"
)

// SHAKE128 is truncated to 32 bytes, its multihash length.
type SHAKE128 struct{ digest.XOF }

func (*SHAKE128) Identifier() string { return "shake128" }
func (a *SHAKE128) Reset() { a.Init(xof.SHAKE128.New(), 32) }

// SHAKE256 is truncated to 64 bytes.
type SHAKE256 struct{ digest.XOF }

func (*SHAKE256) Identifier() string { return "shake256" }
func (a *SHAKE256) Reset() { a.Init(xof.SHAKE256.New(), 64) }

func init() {
	MustRegister(describe[SHAKE128](familySHAKE, ClassCryptographic, 0x18))
	MustRegister(describe[SHAKE256](familySHAKE, ClassCryptographic, 0x19))
}

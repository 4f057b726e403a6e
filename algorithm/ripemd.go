//go:build !hashes_no_ripemd

package algorithm

import (
	"golang.org/x/crypto/ripemd160" //nolint:staticcheck // legacy algorithm kept for compatibility

	"xdao.co/hashes/digest"
)

type RIPEMD160 struct{ digest.Hash }

func (*RIPEMD160) Identifier() string { return "ripemd160" }
func (a *RIPEMD160) Reset() { a.Init(ripemd160.New()) }

func init() {
	MustRegister(describe[RIPEMD160](familyRIPEMD, ClassCryptographic, 0x1053))
}

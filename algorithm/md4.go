//go:build !hashes_no_md4

package algorithm

import (
	"golang.org/x/crypto/md4"

	"xdao.co/hashes/digest"
)

type MD4 struct{ digest.Hash }

func (*MD4) Identifier() string { return "md4" }
func (a *MD4) Reset() { a.Init(md4.New()) }

func init() {
	MustRegister(describe[MD4](familyMD4, ClassCryptographic, 0xd4))
}

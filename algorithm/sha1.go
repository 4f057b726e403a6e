//go:build !hashes_no_sha1

package algorithm

import (
	"crypto/sha1"

	"xdao.co/hashes/digest"
)

type SHA1 struct{ digest.Hash }

func (*SHA1) Identifier() string { return "sha1" }
func (a *SHA1) Reset() { a.Init(sha1.New()) }

func init() {
	MustRegister(describe[SHA1](familySHA1, ClassCryptographic, 0x11))
}

//go:build hashes_md5

package algorithm

import (
	"crypto/md5"

	"xdao.co/hashes/digest"
)

// MD5 is opt-in: host shells usually ship their own md5 command.
type MD5 struct{ digest.Hash }

func (*MD5) Identifier() string { return "md5" }
func (a *MD5) Reset() { a.Init(md5.New()) }

func init() {
	MustRegister(describe[MD5](familyMD5, ClassCryptographic, 0xd5))
}

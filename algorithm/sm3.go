//go:build !hashes_no_sm3

package algorithm

import (
	"github.com/emmansun/gmsm/sm3"

	"xdao.co/hashes/digest"
)

type SM3 struct{ digest.Hash }

func (*SM3) Identifier() string { return "sm3" }
func (a *SM3) Reset() { a.Init(sm3.New()) }

func init() {
	MustRegister(describe[SM3](familySM3, ClassCryptographic, 0x534d))
}

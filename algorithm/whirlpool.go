//go:build !hashes_no_whirlpool

package algorithm

import (
	"github.com/jzelinskie/whirlpool"

	"xdao.co/hashes/digest"
)

type Whirlpool struct{ digest.Hash }

func (*Whirlpool) Identifier() string { return "whirlpool" }
func (a *Whirlpool) Reset() { a.Init(whirlpool.New()) }

func init() {
	MustRegister(describe[Whirlpool](familyWhirlpool, ClassCryptographic, 0))
}

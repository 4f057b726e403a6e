//go:build !hashes_no_sha3

package algorithm

import (
	"golang.org/x/crypto/sha3"

	"xdao.co/hashes/digest"
)

type SHA3_224 struct{ digest.Hash }

func (*SHA3_224) Identifier() string { return "sha3-224" }
func (a *SHA3_224) Reset() { a.Init(sha3.New224()) }

type SHA3_256 struct{ digest.Hash }

func (*SHA3_256) Identifier() string { return "sha3-256" }
func (a *SHA3_256) Reset() { a.Init(sha3.New256()) }

type SHA3_384 struct{ digest.Hash }

func (*SHA3_384) Identifier() string { return "sha3-384" }
func (a *SHA3_384) Reset() { a.Init(sha3.New384()) }

type SHA3_512 struct{ digest.Hash }

func (*SHA3_512) Identifier() string { return "sha3-512" }
func (a *SHA3_512) Reset() { a.Init(sha3.New512()) }

// Keccak256 is the original Keccak submission padding, as used by Ethereum.
type Keccak256 struct{ digest.Hash }

func (*Keccak256) Identifier() string { return "keccak256" }
func (a *Keccak256) Reset() { a.Init(sha3.NewLegacyKeccak256()) }

type Keccak512 struct{ digest.Hash }

func (*Keccak512) Identifier() string { return "keccak512" }
func (a *Keccak512) Reset() { a.Init(sha3.NewLegacyKeccak512()) }

func init() {
	MustRegister(describe[SHA3_224](familySHA3, ClassCryptographic, 0x17))
	MustRegister(describe[SHA3_256](familySHA3, ClassCryptographic, 0x16))
	MustRegister(describe[SHA3_384](familySHA3, ClassCryptographic, 0x15))
	MustRegister(describe[SHA3_512](familySHA3, ClassCryptographic, 0x14))
	MustRegister(describe[Keccak256](familySHA3, ClassCryptographic, 0x1b))
	MustRegister(describe[Keccak512](familySHA3, ClassCryptographic, 0x1d))
}

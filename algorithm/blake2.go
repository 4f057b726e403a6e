//go:build !hashes_no_blake2

package algorithm

import (
	"hash"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/blake2s"

	"xdao.co/hashes/digest"
)

// unkeyed wraps BLAKE2 constructors, which only fail for oversized keys.
func unkeyed(newHash func(key []byte) (hash.Hash, error)) hash.Hash {
	h, err := newHash(nil)
	if err != nil {
		panic(err)
	}
	return h
}

type BLAKE2s256 struct{ digest.Hash }

func (*BLAKE2s256) Identifier() string { return "blake2s-256" }
func (a *BLAKE2s256) Reset() { a.Init(unkeyed(blake2s.New256)) }

type BLAKE2b256 struct{ digest.Hash }

func (*BLAKE2b256) Identifier() string { return "blake2b-256" }
func (a *BLAKE2b256) Reset() { a.Init(unkeyed(blake2b.New256)) }

type BLAKE2b384 struct{ digest.Hash }

func (*BLAKE2b384) Identifier() string { return "blake2b-384" }
func (a *BLAKE2b384) Reset() { a.Init(unkeyed(blake2b.New384)) }

type BLAKE2b512 struct{ digest.Hash }

func (*BLAKE2b512) Identifier() string { return "blake2b-512" }
func (a *BLAKE2b512) Reset() { a.Init(unkeyed(blake2b.New512)) }

func init() {
	MustRegister(describe[BLAKE2s256](familyBLAKE2, ClassCryptographic, 0xb260))
	MustRegister(describe[BLAKE2b256](familyBLAKE2, ClassCryptographic, 0xb220))
	MustRegister(describe[BLAKE2b384](familyBLAKE2, ClassCryptographic, 0xb230))
	MustRegister(describe[BLAKE2b512](familyBLAKE2, ClassCryptographic, 0xb240))
}

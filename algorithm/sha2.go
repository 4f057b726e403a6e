//go:build !hashes_no_sha2

package algorithm

import (
	"crypto/sha256"
	"crypto/sha512"

	sha256simd "github.com/minio/sha256-simd"

	"xdao.co/hashes/digest"
)

type SHA224 struct{ digest.Hash }

func (*SHA224) Identifier() string { return "sha224" }
func (a *SHA224) Reset() { a.Init(sha256.New224()) }

// SHA256 uses the SIMD implementation, which falls back to the generic code
// on CPUs without SHA extensions.
type SHA256 struct{ digest.Hash }

func (*SHA256) Identifier() string { return "sha256" }
func (a *SHA256) Reset() { a.Init(sha256simd.New()) }

type SHA384 struct{ digest.Hash }

func (*SHA384) Identifier() string { return "sha384" }
func (a *SHA384) Reset() { a.Init(sha512.New384()) }

type SHA512 struct{ digest.Hash }

func (*SHA512) Identifier() string { return "sha512" }
func (a *SHA512) Reset() { a.Init(sha512.New()) }

type SHA512_224 struct{ digest.Hash }

func (*SHA512_224) Identifier() string { return "sha512-224" }
func (a *SHA512_224) Reset() { a.Init(sha512.New512_224()) }

type SHA512_256 struct{ digest.Hash }

func (*SHA512_256) Identifier() string { return "sha512-256" }
func (a *SHA512_256) Reset() { a.Init(sha512.New512_256()) }

func init() {
	MustRegister(describe[SHA224](familySHA2, ClassCryptographic, 0x1013))
	MustRegister(describe[SHA256](familySHA2, ClassCryptographic, 0x12))
	MustRegister(describe[SHA384](familySHA2, ClassCryptographic, 0x20))
	MustRegister(describe[SHA512](familySHA2, ClassCryptographic, 0x13))
	MustRegister(describe[SHA512_224](familySHA2, ClassCryptographic, 0x1014))
	MustRegister(describe[SHA512_256](familySHA2, ClassCryptographic, 0x1015))
}

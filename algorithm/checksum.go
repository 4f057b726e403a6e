//go:build !hashes_no_checksum

package algorithm

import (
	"hash/crc32"
	"hash/crc64"

	"xdao.co/hashes/digest"
)

// Checksums render big-endian, matching hash.Hash32/64 Sum.

var (
	castagnoli = crc32.MakeTable(crc32.Castagnoli)
	isoTable   = crc64.MakeTable(crc64.ISO)
	ecmaTable  = crc64.MakeTable(crc64.ECMA)
)

type CRC32IEEE struct{ digest.Hash }

func (*CRC32IEEE) Identifier() string { return "crc32-ieee" }
func (a *CRC32IEEE) Reset() { a.Init(crc32.NewIEEE()) }

type CRC32C struct{ digest.Hash }

func (*CRC32C) Identifier() string { return "crc32c" }
func (a *CRC32C) Reset() { a.Init(crc32.New(castagnoli)) }

type CRC64ISO struct{ digest.Hash }

func (*CRC64ISO) Identifier() string { return "crc64-iso" }
func (a *CRC64ISO) Reset() { a.Init(crc64.New(isoTable)) }

type CRC64ECMA struct{ digest.Hash }

func (*CRC64ECMA) Identifier() string { return "crc64-ecma" }
func (a *CRC64ECMA) Reset() { a.Init(crc64.New(ecmaTable)) }

func init() {
	MustRegister(describe[CRC32IEEE](familyChecksum, ClassChecksum, 0))
	MustRegister(describe[CRC32C](familyChecksum, ClassChecksum, 0))
	MustRegister(describe[CRC64ISO](familyChecksum, ClassChecksum, 0))
	MustRegister(describe[CRC64ECMA](familyChecksum, ClassChecksum, 0))
}

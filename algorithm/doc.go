// Package algorithm holds the concrete digest adapters and the registry of
// algorithms compiled into the binary.
//
// Algorithms are grouped into families. Each family lives in its own file and
// is selected at build time:
//
//	hashes_no_sha1      drop sha1
//	hashes_no_sha2      drop sha224, sha256, sha384, sha512, sha512-224, sha512-256
//	hashes_no_sha3      drop sha3-*, keccak256, keccak512
//	hashes_no_shake     drop shake128, shake256
//	hashes_no_blake2    drop blake2s-256, blake2b-256, blake2b-384, blake2b-512
//	hashes_no_blake3    drop blake3
//	hashes_no_md4       drop md4
//	hashes_md5          add md5 (off by default)
//	hashes_no_ripemd    drop ripemd160
//	hashes_no_sm3       drop sm3
//	hashes_no_whirlpool drop whirlpool
//	hashes_no_checksum  drop crc32-ieee, crc32c, crc64-iso, crc64-ecma
//	hashes_no_xxhash    drop xxhash64
//
// Excluding every family is a build error.
package algorithm

const (
	familySHA1      = "sha1"
	familySHA2      = "sha2"
	familySHA3      = "sha3"
	familySHAKE     = "shake"
	familyBLAKE2    = "blake2"
	familyBLAKE3    = "blake3"
	familyMD4       = "md4"
	familyMD5       = "md5"
	familyRIPEMD    = "ripemd"
	familySM3       = "sm3"
	familyWhirlpool = "whirlpool"
	familyChecksum  = "checksum"
	familyXXHash    = "xxhash"
)

// AllFamilies lists every family this package knows, whether or not it is
// compiled into the current binary.
func AllFamilies() []string {
	return []string{
		familyBLAKE2,
		familyBLAKE3,
		familyChecksum,
		familyMD4,
		familyMD5,
		familyRIPEMD,
		familySHA1,
		familySHA2,
		familySHA3,
		familySHAKE,
		familySM3,
		familyWhirlpool,
		familyXXHash,
	}
}

// BuildConstraint returns the build constraint under which family is compiled.
func BuildConstraint(family string) string {
	if family == familyMD5 {
		return "hashes_md5"
	}
	return "!hashes_no_" + family
}

//go:build hashes_no_sha1 && hashes_no_sha2 && hashes_no_sha3 && hashes_no_shake && hashes_no_blake2 && hashes_no_blake3 && hashes_no_md4 && !hashes_md5 && hashes_no_ripemd && hashes_no_sm3 && hashes_no_whirlpool && hashes_no_checksum && hashes_no_xxhash

package algorithm

// At least one algorithm family must be compiled in.
var _ = enableAtLeastOneAlgorithmFamily

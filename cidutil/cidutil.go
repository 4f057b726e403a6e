// Package cidutil renders digests as self-describing multihashes and CIDs.
package cidutil

import (
	"fmt"

	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multihash"
)

// Multihash wraps an already computed digest with its multicodec code.
func Multihash(digest []byte, code uint64) (multihash.Multihash, error) {
	if code == 0 {
		return nil, fmt.Errorf("cidutil: no multicodec code")
	}
	b, err := multihash.Encode(digest, code)
	if err != nil {
		return nil, fmt.Errorf("cidutil: encoding multihash 0x%x: %w", code, err)
	}
	return multihash.Multihash(b), nil
}

// MultihashB58 returns the base58btc form of Multihash(digest, code).
func MultihashB58(digest []byte, code uint64) (string, error) {
	mh, err := Multihash(digest, code)
	if err != nil {
		return "", err
	}
	return mh.B58String(), nil
}

// CIDv1Raw returns a CIDv1 with the "raw" multicodec for an already computed
// digest.
func CIDv1Raw(digest []byte, code uint64) (cid.Cid, error) {
	mh, err := Multihash(digest, code)
	if err != nil {
		return cid.Undef, err
	}
	return cid.NewCidV1(cid.Raw, mh), nil
}

// CIDv1RawSHA256 returns a CIDv1 string using the "raw" multicodec
// and a sha2-256 multihash of data.
func CIDv1RawSHA256(data []byte) string {
	sum, err := multihash.Sum(data, multihash.SHA2_256, -1)
	if err != nil {
		// unreachable for SHA2_256 with default length
		return ""
	}
	return cid.NewCidV1(cid.Raw, sum).String()
}

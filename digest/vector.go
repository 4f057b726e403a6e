package digest

import (
	"encoding/hex"
	"fmt"
)

// TestVector is the fixed message every algorithm is run against to produce
// its documented example digest.
const TestVector = "abcdefghijklmnopqrstuvwxyz"

// FormatHex returns the lowercase hex encoding of sum.
func FormatHex(sum []byte) string {
	return hex.EncodeToString(sum)
}

// ParseHex decodes a hex digest and checks it is size bytes long.
// A size of zero or less skips the length check.
func ParseHex(s string, size int) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("parsing hex digest: %w", err)
	}
	if size > 0 && len(b) != size {
		return nil, fmt.Errorf("digest is %d bytes, want %d", len(b), size)
	}
	return b, nil
}

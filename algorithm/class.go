package algorithm

// Class restricts which callers should see a given algorithm.
type Class uint8

const (
	// ClassCryptographic marks collision-resistant digests, including legacy
	// ones such as MD5 and SHA-1.
	ClassCryptographic Class = 1 << iota
	// ClassChecksum marks error-detection checksums and fast non-cryptographic hashes.
	ClassChecksum

	ClassAny = ClassCryptographic | ClassChecksum
)

func (c Class) allows(want Class) bool { return c&want != 0 }

func (c Class) String() string {
	switch c {
	case ClassCryptographic:
		return "cryptographic"
	case ClassChecksum:
		return "checksum"
	case ClassAny:
		return "any"
	default:
		return "unknown"
	}
}

// ParseClass parses the names produced by Class.String.
func ParseClass(s string) (Class, bool) {
	switch s {
	case "cryptographic", "crypto":
		return ClassCryptographic, true
	case "checksum":
		return ClassChecksum, true
	case "", "any", "all":
		return ClassAny, true
	default:
		return 0, false
	}
}

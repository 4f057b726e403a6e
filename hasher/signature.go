package hasher

import (
	"fmt"

	"xdao.co/hashes/digest"
	"xdao.co/hashes/value"
)

// Category groups commands in the host's help output.
const Category = "hash"

// Metadata is the build-time bundle baked into each command: the digest of
// digest.TestVector in both output forms plus the algorithm's multicodec code.
type Metadata struct {
	Hex        string
	Binary     []byte
	Multicodec uint64
}

// InputOutput is one accepted input type and the output type it produces.
type InputOutput struct {
	Input  string
	Output string
}

// Switch is a boolean flag.
type Switch struct {
	Long        string
	Short       rune
	Description string
}

// Rest describes the trailing positional arguments.
type Rest struct {
	Name        string
	Shape       string
	Description string
}

// Signature is the self-description a command presents to its host.
type Signature struct {
	Name          string
	Description   string
	Category      string
	InputOutputs  []InputOutput
	Switches      []Switch
	Rest          Rest
	AllowVariants bool
}

// Example is a documented invocation. Result is nil when the outcome depends
// on external data.
type Example struct {
	Description string
	Example     string
	Result      *value.Value
}

func signatureFor(id string) Signature {
	return Signature{
		Name:        "hash " + id,
		Description: fmt.Sprintf("Hash a value using the %s hash algorithm.", id),
		Category:    Category,
		InputOutputs: []InputOutput{
			{Input: "binary", Output: "any"},
			{Input: "string", Output: "any"},
			{Input: "table", Output: "table"},
			{Input: "record", Output: "record"},
		},
		Switches: []Switch{
			{Long: "binary", Short: 'b', Description: "Output binary instead of hexadecimal representation"},
			{Long: "multihash", Short: 'm', Description: "Output a base58btc multihash instead of hexadecimal representation"},
			{Long: "cid", Description: "Output a CIDv1 with the raw codec instead of hexadecimal representation"},
		},
		Rest: Rest{
			Name:        "rest",
			Shape:       "cell-path",
			Description: fmt.Sprintf("Optionally %s hash data by cell path.", id),
		},
		AllowVariants: true,
	}
}

func examplesFor(id string, md Metadata) []Example {
	hex := value.String(md.Hex)
	bin := value.Binary(md.Binary)
	return []Example{
		{
			Description: fmt.Sprintf("Return the %s hash of a string, hex-encoded", id),
			Example:     fmt.Sprintf("hashes %s --string %s", id, digest.TestVector),
			Result:      &hex,
		},
		{
			Description: fmt.Sprintf("Return the %s hash of a string, as binary", id),
			Example:     fmt.Sprintf("hashes %s --string %s --binary", id, digest.TestVector),
			Result:      &bin,
		},
		{
			Description: fmt.Sprintf("Return the %s hash of a file's contents", id),
			Example:     fmt.Sprintf("hashes %s --file ./release.tar.gz", id),
		},
	}
}

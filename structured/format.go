// Package structured converts documents to and from pipeline values.
//
// YAML and JSON are decoded through yaml.v3 nodes so record fields keep
// document order. JSONC is normalized to JSON first. CBOR maps carry no order
// and decode with sorted keys.
package structured

import (
	"fmt"
	"strings"
)

// Format names a document encoding.
type Format string

const (
	// Raw means no structure: input is hashed as a byte stream and scalar
	// results are written as-is.
	Raw   Format = "raw"
	YAML  Format = "yaml"
	JSON  Format = "json"
	JSONC Format = "jsonc"
	CBOR  Format = "cbor"
)

// Formats lists every accepted format name.
func Formats() []Format { return []Format{Raw, YAML, JSON, JSONC, CBOR} }

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case "":
		return Raw, nil
	case "yml":
		return YAML, nil
	case Raw, YAML, JSON, JSONC, CBOR:
		return f, nil
	default:
		return "", fmt.Errorf("unknown format %q", s)
	}
}

// FromExtension guesses a format from a file name, defaulting to Raw.
func FromExtension(name string) Format {
	i := strings.LastIndexByte(name, '.')
	if i < 0 {
		return Raw
	}
	switch strings.ToLower(name[i+1:]) {
	case "yaml", "yml":
		return YAML
	case "json":
		return JSON
	case "jsonc":
		return JSONC
	case "cbor":
		return CBOR
	default:
		return Raw
	}
}

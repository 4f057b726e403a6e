package hasher

import (
	"fmt"
	"io"
	"strings"

	"xdao.co/hashes/value"
)

const (
	// DefaultChunkSize is the stream read size when a call does not set one.
	DefaultChunkSize = 64 << 10
	// MaxChunkSize bounds the per-call read buffer.
	MaxChunkSize = 16 << 20
)

// Mode selects how a digest is rendered.
type Mode uint8

const (
	ModeHex Mode = iota
	ModeBinary
	ModeMultihash
	ModeCID
)

func (m Mode) String() string {
	switch m {
	case ModeHex:
		return "hex"
	case ModeBinary:
		return "binary"
	case ModeMultihash:
		return "multihash"
	case ModeCID:
		return "cid"
	default:
		return fmt.Sprintf("mode(%d)", uint8(m))
	}
}

// ParseMode parses the names produced by Mode.String.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "", "hex":
		return ModeHex, nil
	case "binary", "bin":
		return ModeBinary, nil
	case "multihash", "mh":
		return ModeMultihash, nil
	case "cid":
		return ModeCID, nil
	default:
		return 0, fmt.Errorf("unknown output mode %q", s)
	}
}

// Input is the pipeline input of one call: either a byte stream or a value.
type Input struct {
	Stream io.Reader
	Value  value.Value
}

func StreamInput(r io.Reader) Input { return Input{Stream: r} }
func ValueInput(v value.Value) Input { return Input{Value: v} }
func (in Input) IsStream() bool { return in.Stream != nil }

// Call is one evaluated invocation.
type Call struct {
	// CellPaths address the leaves to hash inside structured input. They are
	// ignored for stream input.
	CellPaths []string
	Binary    bool
	Multihash bool
	CID       bool
	// ChunkSize is the stream read size; zero means DefaultChunkSize.
	ChunkSize int
	Input     Input
}

// Mode returns the single output mode selected by the call's switches.
func (c Call) Mode() (Mode, error) {
	mode := ModeHex
	var set []string
	if c.Binary {
		mode = ModeBinary
		set = append(set, "--binary")
	}
	if c.Multihash {
		mode = ModeMultihash
		set = append(set, "--multihash")
	}
	if c.CID {
		mode = ModeCID
		set = append(set, "--cid")
	}
	if len(set) > 1 {
		return 0, newError(KindArguments, RuleConflictingModes,
			fmt.Sprintf("output switches are mutually exclusive: %s", strings.Join(set, ", ")))
	}
	return mode, nil
}

// WithMode returns c with exactly the switch for m set.
func (c Call) WithMode(m Mode) Call {
	c.Binary = m == ModeBinary
	c.Multihash = m == ModeMultihash
	c.CID = m == ModeCID
	return c
}

// CheckChunkSize validates a requested stream read size. Zero selects
// DefaultChunkSize.
func CheckChunkSize(n int) error {
	if n < 0 || n > MaxChunkSize {
		return newError(KindArguments, RuleBadChunkSize,
			fmt.Sprintf("chunk size must be between 0 and %d, got %d", MaxChunkSize, n))
	}
	return nil
}

type plan struct {
	mode      Mode
	paths     []value.CellPath
	chunkSize int
}

func (c Call) plan(multicodec uint64, id string) (plan, error) {
	mode, err := c.Mode()
	if err != nil {
		return plan{}, err
	}
	if (mode == ModeMultihash || mode == ModeCID) && multicodec == 0 {
		return plan{}, newError(KindArguments, RuleNoMulticodec,
			fmt.Sprintf("%s has no multicodec code; %s output is unavailable", id, mode))
	}
	p := plan{mode: mode, chunkSize: c.ChunkSize}
	if err := CheckChunkSize(c.ChunkSize); err != nil {
		return plan{}, err
	}
	if p.chunkSize == 0 {
		p.chunkSize = DefaultChunkSize
	}
	for _, s := range c.CellPaths {
		cp, err := value.ParseCellPath(s)
		if err != nil {
			return plan{}, wrapError(KindArguments, RuleBadCellPath, "invalid cell path", err)
		}
		p.paths = append(p.paths, cp)
	}
	return p, nil
}

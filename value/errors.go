package value

import "fmt"

// ErrorKind classifies an embedded error value.
type ErrorKind string

const (
	// UnsupportedInput: the value has a type the command cannot process.
	UnsupportedInput ErrorKind = "unsupported_input"
	// CellPathNotFound: a column or row index named by a cell path is missing.
	CellPathNotFound ErrorKind = "cell_path_not_found"
	// CellPathType: a cell path member cannot be applied to the value it reached.
	CellPathType ErrorKind = "cell_path_type"
	// Remote: the error was reported by a remote plugin and carries only text.
	Remote ErrorKind = "remote"
)

// Error is a recoverable failure scoped to one value. It travels through a
// pipeline as data rather than aborting the call.
type Error struct {
	Kind     ErrorKind
	Expected string
	Actual   string
	// Path is the cell path being followed when the error occurred, if any.
	Path    string
	Message string
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" {
		msg = string(e.Kind)
	}
	if e.Expected != "" || e.Actual != "" {
		msg = fmt.Sprintf("%s: expected %s, got %s", msg, e.Expected, e.Actual)
	}
	if e.Path != "" {
		msg = fmt.Sprintf("%s (at %s)", msg, e.Path)
	}
	return msg
}

// Unsupported returns the error for a value whose type is not one of expected.
func Unsupported(expected string, got Value) *Error {
	return &Error{
		Kind:     UnsupportedInput,
		Expected: expected,
		Actual:   got.TypeName(),
		Message:  "only " + expected + " input is supported",
	}
}

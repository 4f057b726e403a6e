package hasher

import "errors"

// Kind is a stable category for whole-call failures.
//
// Per-value failures are not errors at this level; they are embedded in the
// result as value.Error values.
type Kind string

const (
	KindArguments   Kind = "Arguments"
	KindInput       Kind = "Input"
	KindInterrupted Kind = "Interrupted"
	KindInternal    Kind = "Internal"
)

// Rule ids name the violated invocation rule. They are stable; messages are not.
const (
	RuleConflictingModes   = "HASH-ARG-001"
	RuleNoMulticodec       = "HASH-ARG-002"
	RuleBadCellPath        = "HASH-ARG-003"
	RuleBadChunkSize       = "HASH-ARG-004"
	RuleMissingInput       = "HASH-ARG-005"
	RuleStreamRead         = "HASH-IN-001"
	RuleInterrupted        = "HASH-INT-001"
	RuleFormat             = "HASH-INTERNAL-001"
	RuleUnknownCommand     = "HASH-ARG-006"
	RuleUnsupportedPayload = "HASH-IN-002"
)

// Error is a failure of the whole call. No partial result accompanies it.
type Error struct {
	Kind    Kind
	RuleID  string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func newError(kind Kind, ruleID, msg string) error {
	return &Error{Kind: kind, RuleID: ruleID, Message: msg}
}

func wrapError(kind Kind, ruleID, msg string, cause error) error {
	if cause == nil {
		return newError(kind, ruleID, msg)
	}
	return &Error{Kind: kind, RuleID: ruleID, Message: msg, Cause: cause}
}

// Errorf builds a whole-call error for callers outside this package, such as
// transports reporting an unknown command.
func Errorf(kind Kind, ruleID, msg string, cause error) error {
	return wrapError(kind, ruleID, msg, cause)
}

// IsKind reports whether err is (or wraps) a *Error with the given Kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Kind == kind
}

// RuleID returns the stable RuleID for a structured error, or "" if unknown.
func RuleID(err error) string {
	var e *Error
	if !errors.As(err, &e) {
		return ""
	}
	return e.RuleID
}

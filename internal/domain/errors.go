package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for broad classification.
var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidConfig      = errors.New("invalid config")
	ErrInvalidPermutation = errors.New("invalid permutation")
	ErrExecution          = errors.New("execution error")
)

// ErrorKind is a coarse-grained categorization for errors.
type ErrorKind string

const (
	KindNotFound           ErrorKind = "not_found"
	KindInvalidConfig      ErrorKind = "invalid_config"
	KindInvalidPermutation ErrorKind = "invalid_permutation"
	KindExecution          ErrorKind = "execution"
)

// OpError wraps an underlying error with operation context and a kind.
type OpError struct {
	Op   string
	Kind ErrorKind
	Path string // Optional: relevant file path
	Err  error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsKind helps callers classify errors without depending on infra packages.
func IsKind(err error, kind ErrorKind) bool {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind == kind
	}
	return false
}

// LinkErrorKind identifies why a single link could not be classified.
type LinkErrorKind string

const (
	LinkUnsupportedProtocol LinkErrorKind = "UNSUPPORTED_PROTOCOL"
	LinkDecodeFailed        LinkErrorKind = "DECODE_FAILED"
	LinkRemarkMissing       LinkErrorKind = "REMARK_MISSING"
	LinkRuleConflict        LinkErrorKind = "RULE_CONFLICT"
)

// LinkError is a per-line failure. It never aborts a batch; the classifier
// turns it into an Invalid classification.
type LinkError struct {
	Kind LinkErrorKind
	Err  error // Optional: underlying decode error
}

func (e *LinkError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	return string(e.Kind)
}

func (e *LinkError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Message returns the user-facing text for the error kind.
func (e *LinkError) Message() string {
	if e == nil {
		return ""
	}
	switch e.Kind {
	case LinkUnsupportedProtocol:
		return "unsupported link protocol"
	case LinkDecodeFailed:
		return "link decode failure"
	case LinkRemarkMissing:
		return "could not extract remark"
	case LinkRuleConflict:
		return "rule conflict: sn requires sid"
	default:
		return "unknown link error"
	}
}

// IsLinkKind reports whether err is a LinkError of the given kind.
func IsLinkKind(err error, kind LinkErrorKind) bool {
	var le *LinkError
	if errors.As(err, &le) {
		return le.Kind == kind
	}
	return false
}

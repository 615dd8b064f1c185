// Package serrors implements semantic errors: errors tagged with a
// comparable kind sentinel and an optional stable domain code. Callers
// branch on the kind with errors.Is and render precise messages from the
// code, without ever string-matching error text.
package serrors

import (
	"errors"
	"fmt"

	"accounts/pkg/domain"
)

// Kind is a marker interface implemented by all semantic error kinds created
// with NewKind. It distinguishes semantic kinds from ordinary errors.
type Kind interface {
	error
	isKind()
}

// kind is the unexported sentinel implementation behind every Kind.
type kind struct{ s string }

func (k kind) Error() string { return k.s }
func (k kind) isKind()       {}

// NewKind creates a new semantic error kind with the given name. Kinds are
// comparable sentinels that work with errors.Is/As through the Error wrapper.
func NewKind(name string) Kind { return kind{s: name} }

// The failure kinds produced by the account core. Every business failure
// returned by a use case carries exactly one of these.
var (
	// ErrValidation indicates a required field is missing from a request.
	ErrValidation = NewKind("VALIDATION")
	// ErrAlreadyExists indicates a conflicting account holds the requested username.
	ErrAlreadyExists = NewKind("ALREADY_EXISTS")
	// ErrNotFound indicates no account exists for the given identifier.
	ErrNotFound = NewKind("NOT_FOUND")
	// ErrRepository indicates the underlying store failed. It is never
	// conflated with ErrNotFound: an absent record is not a repository failure.
	ErrRepository = NewKind("REPOSITORY")
	// ErrInternal indicates an unexpected error outside the taxonomy above.
	ErrInternal = NewKind("INTERNAL")
)

// Error is a semantic error carrying a kind, an optional stable domain code,
// an optional wrapped cause and an optional message. It fully supports
// errors.Is/errors.As and unwrapping: errors.Is matches against both the
// kind sentinel and the wrapped cause.
//
// Error string formatting:
//   - If both msg and err are set: "<msg>: <err>"
//   - If only msg is set: "<msg>"
//   - If only err is set: "<err>"
//   - Otherwise: the kind's name.
type Error struct {
	kind Kind
	code domain.Code
	err  error
	msg  string
}

// With constructs a semantic error with the given kind and message.
func With(k Kind, msgFmt string, args ...any) *Error {
	return &Error{kind: k, msg: fmt.Sprintf(msgFmt, args...)}
}

// Coded constructs a semantic error with the given kind, stable domain code
// and message. Use it for business failures that API clients key off.
func Coded(k Kind, code domain.Code, msgFmt string, args ...any) *Error {
	return &Error{kind: k, code: code, msg: fmt.Sprintf(msgFmt, args...)}
}

// Wrap constructs a semantic error with the given kind that wraps a concrete
// cause and attaches a message.
func Wrap(k Kind, err error, msgFmt string, args ...any) *Error {
	return &Error{kind: k, err: err, msg: fmt.Sprintf(msgFmt, args...)}
}

// KindOnly creates a semantic error carrying only the kind.
func KindOnly(k Kind) *Error { return &Error{kind: k} }

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e == nil:
		return "<nil>"
	case e.msg != "" && e.err != nil:
		return e.msg + ": " + e.err.Error()
	case e.msg != "":
		return e.msg
	case e.err != nil:
		return e.err.Error()
	default:
		if e.kind != nil {
			return e.kind.Error()
		}

		return "unknown error"
	}
}

// Unwrap returns the wrapped cause, enabling errors.Unwrap/Is/As traversal.
func (e *Error) Unwrap() error { return e.err }

// Is matches against either the kind sentinel or the wrapped cause.
func (e *Error) Is(target error) bool {
	if e == nil || target == nil {
		return e == nil && target == nil
	}
	if e.kind != nil && errors.Is(e.kind, target) {
		return true
	}
	if e.err != nil && errors.Is(e.err, target) {
		return true
	}

	return false
}

// As matches against either the kind sentinel or the wrapped cause.
func (e *Error) As(target any) bool {
	if e == nil || target == nil {
		return false
	}
	if e.kind != nil && errors.As(e.kind, target) {
		return true
	}
	if e.err != nil && errors.As(e.err, target) {
		return true
	}

	return false
}

// Kind returns the semantic kind sentinel associated with this error, or nil.
func (e *Error) Kind() Kind { return e.kind }

// Code returns the stable domain code attached to this error, if any.
func (e *Error) Code() domain.Code { return e.code }

// Message returns the message attached to this error.
func (e *Error) Message() string { return e.msg }

// Cause returns the wrapped cause (may be nil).
func (e *Error) Cause() error { return e.err }

// CodeOf extracts the stable domain code from anywhere in err's chain. It
// returns domain.CodeInternalError when no semantic error with a code is
// present, so transports always have something to render.
func CodeOf(err error) domain.Code {
	var se *Error
	if errors.As(err, &se) && se.code != "" {
		return se.code
	}

	return domain.CodeInternalError
}

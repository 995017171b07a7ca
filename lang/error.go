package lang

import (
	"errors"
	"log/slog"
	"strings"
)

// Predefined errors (sentinel values). Each identifies one failure class of
// the engine; use [errors.Is] against these to discriminate reasons.
var (
	ErrUnknownDirective     = NewError("unknown directive")
	ErrMalformedDeclaration = NewError("malformed declaration")
	ErrInvalidValue         = NewError("invalid value")
	ErrUnknownToken         = NewError("unknown token in expression")
	ErrStackUnderflow       = NewError("expression stack underflow")
	ErrInvalidExpression    = NewError("invalid expression")
	ErrTypeMismatch         = NewError("type mismatch")
	ErrMaxDepthExceeded     = NewError("maximum nesting depth exceeded")
	ErrReadInput            = NewError("failed to read input")

	// ErrUndefinedSymbol unwraps to [ErrInvalidValue]: a bare identifier that
	// resolves to nothing is one way a value literal can be invalid.
	ErrUndefinedSymbol = &Error{msg: "undefined symbol", err: ErrInvalidValue}
)

// Error represents an engine error with optional structured logging
// attributes. It implements both error and slog.LogValuer interfaces.
type Error struct {
	msg   string
	err   error       // Wrapped error (for errors.Unwrap)
	attrs []slog.Attr // Attributes for structured logging
}

// NewError creates a new Error with a message.
func NewError(msg string) *Error {
	return &Error{msg: msg}
}

// WrapError wraps a standard error into an Error.
func WrapError(err error) *Error {
	ee := &Error{}
	if errors.As(err, &ee) {
		return ee
	}

	return &Error{err: err}
}

// Error implements the error interface.
func (e *Error) Error() string {
	// Build error message using the first available format,
	// depending on which fields are set:
	//
	//   1. "<msg>: <err>" // base and wrapped error both set
	//   2. "<msg>"        // wrapped error is nil
	//   3. "<err>"        // base error message is empty
	//   4. ""             // no fields are set
	part := make([]string, 0, 2)

	if e.msg != "" {
		part = append(part, e.msg)
	}

	if e.err != nil {
		part = append(part, e.err.Error())
	}

	return strings.Join(part, ": ")
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *Error) Unwrap() error { return e.err }

// Is reports whether target is the same failure class as e.
// Derived errors produced by [Error.Wrap] and [Error.With] retain their
// sentinel's message, so errors.Is matches them against the sentinel.
func (e *Error) Is(target error) bool {
	t := &Error{}
	if !errors.As(target, &t) {
		return false
	}

	return e.msg == t.msg
}

// LogValue implements slog.LogValuer for rich structured logging.
func (e *Error) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(e.attrs)+2)

	if e.msg != "" {
		attrs = append(attrs, slog.String("error", e.msg))
	}

	if e.err != nil {
		attrs = append(attrs, slog.String("cause", e.err.Error()))
	}

	return slog.GroupValue(append(attrs, e.attrs...)...)
}

// Wrap creates a new Error wrapping another error.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		msg:   e.msg,
		err:   err,
		attrs: e.attrs, // Share attrs
	}
}

// With adds attributes to the error for structured logging.
// This creates a new Error instance to maintain immutability.
func (e *Error) With(attrs ...slog.Attr) *Error {
	newAttrs := make([]slog.Attr, len(e.attrs)+len(attrs))
	copy(newAttrs, e.attrs)
	copy(newAttrs[len(e.attrs):], attrs)

	return &Error{
		msg:   e.msg,
		err:   e.err,
		attrs: newAttrs,
	}
}

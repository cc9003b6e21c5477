// Package perr defines the engine's typed error kinds and the diagnostic
// value carried through every fallible operation. Errors keep the best
// source span the (external) parser attached to the offending AST node, so
// a caller can report it without the engine knowing anything about source
// text layout beyond line:column.
package perr

import (
	"fmt"

	"github.com/gopikchr/pikchr/pos"
)

// Kind enumerates the engine-level error kinds from the specification.
type Kind int

const (
	// UnboundName is a variable or object name that could not be resolved.
	UnboundName Kind = iota
	// TypeMismatch is e.g. naming an edge of a non-object.
	TypeMismatch
	// DivisionByZero is division by an exact zero Scalar or Length.
	DivisionByZero
	// DomainError is e.g. sqrt of a negative number.
	DomainError
	// Overflow is an arithmetic result that is not finite.
	Overflow
	// BadAttribute is an attribute that is not legal for an object's class.
	BadAttribute
	// MacroDepth is macro expansion exceeding the fixed depth bound.
	MacroDepth
	// UserError is a source-level `error "..."` statement.
	UserError
	// InternalInvariant is a should-not-happen consistency check.
	InternalInvariant
)

func (k Kind) String() string {
	switch k {
	case UnboundName:
		return "UnboundName"
	case TypeMismatch:
		return "TypeMismatch"
	case DivisionByZero:
		return "DivisionByZero"
	case DomainError:
		return "DomainError"
	case Overflow:
		return "Overflow"
	case BadAttribute:
		return "BadAttribute"
	case MacroDepth:
		return "MacroDepth"
	case UserError:
		return "UserError"
	case InternalInvariant:
		return "InternalInvariant"
	default:
		return "Unknown"
	}
}

// Error is the engine's diagnostic value. It implements error and Unwrap so
// callers can use errors.Is/errors.As against Kind or a wrapped cause.
type Error struct {
	Kind    Kind
	Message string
	Span    pos.Span
	Wrapped error
}

func (e *Error) Error() string {
	if e.Span.IsValid() {
		return fmt.Sprintf("%s: %s (at %s)", e.Kind, e.Message, e.Span)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Wrapped }

// New builds an Error with no span and no wrapped cause.
func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// At attaches a span to a newly built Error.
func At(span pos.Span, kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Span: span}
}

// Wrap attaches a wrapped cause to a newly built Error, preserving its span.
func Wrap(span pos.Span, kind Kind, cause error, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Span: span, Wrapped: cause}
}

// Is reports whether err is a *Error of the given kind, unwrapping as needed.
func Is(err error, kind Kind) bool {
	for err != nil {
		if e, ok := err.(*Error); ok {
			if e.Kind == kind {
				return true
			}
			err = e.Wrapped
			continue
		}
		break
	}
	return false
}

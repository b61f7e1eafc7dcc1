package pgcodec

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a codec failure. ErrorKind implements error so it can be used as the target of errors.Is.
type ErrorKind uint8

const (
	// ErrTruncated means fewer bytes were available than a field or declared length requires.
	ErrTruncated ErrorKind = iota + 1

	// ErrTrailingBytes means bytes remained after a value was fully decoded.
	ErrTrailingBytes

	// ErrLengthMismatch means a declared length or count disagrees with the data or is invalid.
	ErrLengthMismatch

	// ErrInvalidLexeme means text search lexeme text contains the NUL terminator, is not valid text, or carries an
	// invalid weight.
	ErrInvalidLexeme

	// ErrArityError means a tsquery operator record did not have enough operands on the stack.
	ErrArityError

	// ErrMalformedTree means a tsquery record stream did not reduce to exactly one tree.
	ErrMalformedTree

	// ErrElementDecodeFailed means the element codec of a range rejected a bound. The *Error wraps the element error.
	ErrElementDecodeFailed

	// ErrInvalidUTF8 means a text field is not valid UTF-8.
	ErrInvalidUTF8

	// ErrOutOfRange means the wire value is well formed but cannot be represented by the target Go type.
	ErrOutOfRange
)

func (k ErrorKind) String() string {
	switch k {
	case ErrTruncated:
		return "truncated"
	case ErrTrailingBytes:
		return "trailing bytes"
	case ErrLengthMismatch:
		return "length mismatch"
	case ErrInvalidLexeme:
		return "invalid lexeme"
	case ErrArityError:
		return "arity error"
	case ErrMalformedTree:
		return "malformed tree"
	case ErrElementDecodeFailed:
		return "element decode failed"
	case ErrInvalidUTF8:
		return "invalid utf8"
	case ErrOutOfRange:
		return "out of range"
	default:
		return fmt.Sprintf("unknown error kind %d", uint8(k))
	}
}

func (k ErrorKind) Error() string {
	return "pgcodec: " + k.String()
}

// Error is the error returned by all codecs.
type Error struct {
	// TypeName is the PostgreSQL name of the type being encoded or decoded.
	TypeName string
	Kind     ErrorKind

	// Offset is the byte offset into the input where the failure was detected. It is 0 for encode failures.
	Offset int
	Detail string

	// Err is the underlying error, if any. Only set for ErrElementDecodeFailed.
	Err error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("pgcodec: %s: %s at offset %d", e.TypeName, e.Kind.String(), e.Offset)
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the ErrorKind of e.
func (e *Error) Is(target error) bool {
	k, ok := target.(ErrorKind)
	return ok && k == e.Kind
}

// KindOf returns the ErrorKind of the outermost *Error in err's chain or 0 if there is none.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

func newEncodeError(typeName string, kind ErrorKind, detail string) *Error {
	return &Error{TypeName: typeName, Kind: kind, Detail: detail}
}

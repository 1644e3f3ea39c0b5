package wire

import (
	"errors"
	"fmt"
)

// Failure classes. Every decode error wraps exactly one of these.
var (
	ErrTruncated    = errors.New("truncated input")
	ErrMalformed    = errors.New("malformed content")
	ErrUnrecognized = errors.New("unrecognized discriminant")
	ErrUnsupported  = errors.New("recognized but unsupported")
	ErrInvariant    = errors.New("structural invariant violated")
	ErrCompression  = errors.New("compression failure")
)

// Error records where in a buffer a primitive decode failed.
type Error struct {
	Offset int
	What   string
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at offset %d: %v", e.What, e.Offset, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Errorf builds an *Error whose cause wraps class with a formatted detail.
func Errorf(class error, offset int, what, format string, args ...any) error {
	return &Error{
		Offset: offset,
		What:   what,
		Err:    fmt.Errorf("%w: "+format, append([]any{class}, args...)...),
	}
}

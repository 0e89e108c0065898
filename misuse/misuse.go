// Package misuse defines the errors raised when the assertion library itself is used incorrectly.
//
// These never go through a failure strategy.
// They're raised with panic at the point of misuse, since they indicate a bug in the test rather than a failed expectation.
package misuse

import (
	"errors"
	"fmt"
)

// Class is a stable category of misuse.
type Class string

const (
	InvalidArgument Class = "INVALID_ARGUMENT"
	IllegalState    Class = "ILLEGAL_STATE"
	Unsupported     Class = "UNSUPPORTED"
)

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrIllegalState    = errors.New("illegal state")
	ErrUnsupported     = errors.New("unsupported operation")
)

func (c Class) sentinel() error {
	switch c {
	case InvalidArgument:
		return ErrInvalidArgument
	case IllegalState:
		return ErrIllegalState
	default:
		return ErrUnsupported
	}
}

// Error describes a misuse of the library.
// It matches the sentinel for its [Class] with [errors.Is].
type Error struct {
	Class   Class
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Is(err error) bool {
	if other, ok := err.(*Error); ok {
		return other.Class == e.Class
	}
	return err == e.Class.sentinel()
}

// Errorf creates an [Error] of the given class.
// The format and args parameters are passed to [fmt.Sprintf].
func Errorf(class Class, format string, args ...any) *Error {
	return &Error{Class: class, Message: fmt.Sprintf(format, args...)}
}

// Panicf panics with an [Error] of the given class.
func Panicf(class Class, format string, args ...any) {
	panic(Errorf(class, format, args...))
}

// Must panics with err if it's not nil, otherwise val is returned.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

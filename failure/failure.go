package failure

import (
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/saylorsolutions/truth/config"
	"github.com/saylorsolutions/truth/fact"
)

// ErrAssertionFailed matches every [Failure] with [errors.Is].
var ErrAssertionFailed = errors.New("assertion failed")

const modulePath = "github.com/saylorsolutions/truth"

// Failure is the result of a failed assertion.
// It's an error, and the rendered Message is its text.
type Failure struct {
	Message  string      // Message is the fully rendered failure message.
	Facts    []fact.Fact // Facts are the decorated facts the message was rendered from.
	Cause    error       // Cause is an error that was the actual value somewhere in the subject chain.
	Stack    string      // Stack is the caller's stack at the time the failure was created, if enabled.
	Expected string      // Expected is the expected value's string form, set for comparison failures.
	Actual   string      // Actual is the actual value's string form, set for comparison failures.

	comparison bool
	children   []error
}

// Option customizes a [Failure] created with [New].
type Option func(*Failure)

// WithCause sets the Failure's cause.
func WithCause(err error) Option {
	return func(f *Failure) {
		f.Cause = err
	}
}

// WithComparison marks the Failure as a comparison failure between expected and actual.
func WithComparison(expected, actual string) Option {
	return func(f *Failure) {
		f.comparison = true
		f.Expected = expected
		f.Actual = actual
	}
}

// New creates a Failure.
// The caller's stack is captured when [config.Settings.StackTraces] is enabled.
func New(message string, facts []fact.Fact, opts ...Option) *Failure {
	f := &Failure{
		Message: message,
		Facts:   facts,
	}
	for _, opt := range opts {
		opt(f)
	}
	if config.Current().StackTraces {
		f.Stack = captureStack(3)
	}
	return f
}

func (f *Failure) Error() string {
	return f.Message
}

// Report is the message followed by the cause, if there is one.
func (f *Failure) Report() string {
	if f.Cause == nil {
		return f.Message
	}
	return f.Message + "\ncaused by: " + f.Cause.Error()
}

// Unwrap allows matching [ErrAssertionFailed], the cause, and any failures summarized by this one with [errors.Is] and [errors.As].
func (f *Failure) Unwrap() []error {
	errs := make([]error, 0, 2+len(f.children))
	errs = append(errs, ErrAssertionFailed)
	if f.Cause != nil {
		errs = append(errs, f.Cause)
	}
	return append(errs, f.children...)
}

// IsComparison reports whether this Failure compared an expected and actual value.
func (f *Failure) IsComparison() bool {
	return f.comparison
}

// Keys returns the key of every fact, in order.
func (f *Failure) Keys() []string {
	keys := make([]string, len(f.Facts))
	for i, fct := range f.Facts {
		keys[i] = fct.Key()
	}
	return keys
}

// Value returns the value of the first fact with the given key.
func (f *Failure) Value(key string) (string, bool) {
	return f.ValueIndexed(key, 0)
}

// ValueIndexed returns the value of the index'th fact with the given key.
// False is returned if there's no such fact, or if it has no value.
func (f *Failure) ValueIndexed(key string, index int) (string, bool) {
	seen := 0
	for _, fct := range f.Facts {
		if fct.Key() != key {
			continue
		}
		if seen == index {
			return fct.Value()
		}
		seen++
	}
	return "", false
}

func captureStack(skip int) string {
	pcs := make([]uintptr, 64)
	n := runtime.Callers(skip, pcs)
	if n == 0 {
		return ""
	}
	var (
		buf    strings.Builder
		frames = runtime.CallersFrames(pcs[:n])
	)
	for {
		frame, more := frames.Next()
		if keepFrame(frame) {
			if buf.Len() > 0 {
				buf.WriteByte('\n')
			}
			buf.WriteString(fmt.Sprintf("at %s(%s:%d)", frame.Function, frame.File, frame.Line))
		}
		if !more {
			break
		}
	}
	return buf.String()
}

func keepFrame(frame runtime.Frame) bool {
	fn := frame.Function
	switch {
	case len(fn) == 0:
		return false
	case strings.HasPrefix(fn, "runtime."), strings.HasPrefix(fn, "testing."):
		return false
	case strings.HasPrefix(fn, modulePath+".") || strings.HasPrefix(fn, modulePath+"/"):
		return strings.HasSuffix(frame.File, "_test.go")
	}
	return true
}

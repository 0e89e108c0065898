package failure

import (
	"fmt"
	"strings"

	"github.com/saylorsolutions/truth/config"
	"github.com/saylorsolutions/truth/misuse"
)

// Strategy decides what happens to a [Failure].
type Strategy interface {
	Fail(f *Failure)
}

// StrategyFunc adapts a function to the [Strategy] interface.
type StrategyFunc func(f *Failure)

func (fn StrategyFunc) Fail(f *Failure) {
	fn(f)
}

// Helper is implemented by strategies that report through a test host.
// Assertion code calls Helper so that the host attributes failures to the test's line, not the library's.
type Helper interface {
	Helper()
}

// TB is the part of [testing.TB] needed to report a fatal failure.
type TB interface {
	Helper()
	Fatal(args ...any)
}

type fatal struct {
	t TB
}

// Fatal reports each failure with t.Fatal, which stops the test.
func Fatal(t TB) Strategy {
	return &fatal{t: t}
}

func (s *fatal) Helper() {
	s.t.Helper()
}

func (s *fatal) Fail(f *Failure) {
	s.t.Helper()
	s.t.Fatal(f.Report())
}

// Panic raises each failure with panic.
// This is useful outside of a test host, where there's nothing else to stop execution.
var Panic Strategy = StrategyFunc(func(f *Failure) {
	panic(f)
})

// Ignore discards every failure.
var Ignore Strategy = StrategyFunc(func(f *Failure) {
	config.Logger().Debug("Ignored failure", "strategy", "ignore", "message", f.Message)
})

// Recorder records failures instead of stopping at the first one.
// Use [Recorder.Result] to get a summary of everything recorded.
//
// The zero value is ready to use.
// Note that a Recorder is not concurrency safe.
type Recorder struct {
	failures []*Failure
}

func (r *Recorder) Fail(f *Failure) {
	r.failures = append(r.failures, f)
	config.Logger().Debug("Recorded failure", "strategy", "recorder", "count", len(r.failures))
}

// Len returns the number of recorded failures.
func (r *Recorder) Len() int {
	return len(r.failures)
}

// Failures returns a copy of the recorded failures, in order.
func (r *Recorder) Failures() []*Failure {
	if len(r.failures) == 0 {
		return nil
	}
	cp := make([]*Failure, len(r.failures))
	copy(cp, r.failures)
	return cp
}

// Clear removes all recorded failures.
func (r *Recorder) Clear() {
	r.failures = nil
}

// Result returns nil if nothing was recorded.
// Otherwise, a summary [Failure] is returned that numbers each recorded failure and embeds its stack.
// The summary unwraps to every recorded failure.
func (r *Recorder) Result() error {
	if len(r.failures) == 0 {
		return nil
	}
	return r.summarize()
}

func (r *Recorder) summarize() *Failure {
	var buf strings.Builder
	count := len(r.failures)
	if count == 1 {
		buf.WriteString("1 expectation failed:")
	} else {
		buf.WriteString(fmt.Sprintf("%d expectations failed:", count))
	}
	children := make([]error, count)
	for i, f := range r.failures {
		children[i] = f
		prefix := fmt.Sprintf("  %d. ", i+1)
		indent := strings.Repeat(" ", len(prefix))
		buf.WriteString("\n")
		buf.WriteString(prefix)
		buf.WriteString(indentLines(f.Report(), indent))
		if len(f.Stack) > 0 {
			buf.WriteString("\n")
			buf.WriteString(indent)
			buf.WriteString(indentLines(f.Stack, indent))
		}
		buf.WriteString("\n")
	}
	return &Failure{
		Message:  strings.TrimSuffix(buf.String(), "\n"),
		children: children,
	}
}

func indentLines(s, indent string) string {
	return strings.ReplaceAll(s, "\n", "\n"+indent)
}

// Capture holds at most one failure.
// A second failure without a [Capture.Reset] is reported to the misuse hook, since it means the code under test failed more than once.
//
// Note that a Capture is not concurrency safe.
type Capture struct {
	captured *Failure
	onMisuse func(msg string)
}

// NewCapture creates a Capture that reports misuse with onMisuse.
// If onMisuse is nil, misuse panics with an IllegalState [misuse.Error].
func NewCapture(onMisuse func(msg string)) *Capture {
	return &Capture{onMisuse: onMisuse}
}

func (c *Capture) Fail(f *Failure) {
	if c.captured != nil {
		c.misuse(fmt.Sprintf("caught multiple failures:\n\n%s\n\n%s", c.captured.Report(), f.Report()))
		return
	}
	c.captured = f
	config.Logger().Debug("Captured failure", "strategy", "capture", "message", f.Message)
}

// Failure returns the captured failure, if any.
func (c *Capture) Failure() (*Failure, bool) {
	return c.captured, c.captured != nil
}

// Reset empties the slot.
func (c *Capture) Reset() {
	c.captured = nil
}

func (c *Capture) misuse(msg string) {
	if c.onMisuse == nil {
		misuse.Panicf(misuse.IllegalState, "%s", msg)
	}
	c.onMisuse(msg)
}

package truth

import (
	"github.com/saylorsolutions/truth/failure"
	"github.com/saylorsolutions/truth/misuse"
)

type expectFailureState int

const (
	efIdle expectFailureState = iota
	efArmed
	efCaptured
	efFinished
)

// ExpectFailure captures the failure of an assertion, so that assertions and custom subjects can be tested.
//
//	ef := truth.NewExpectFailure(t)
//	ef.WhenTesting().That(4).IsEqualTo(5)
//	truth.AssertThat(t, ef.Failure().Message).IsEqualTo("expected: 5\nbut was : 4")
//
// Every call to [ExpectFailure.WhenTesting] must produce exactly one failure, which must be read with [ExpectFailure.Failure] before WhenTesting is called again.
// Misuse is reported with t.Fatal.
//
// Note that an ExpectFailure is not concurrency safe.
type ExpectFailure struct {
	t       TB
	capture *failure.Capture
	state   expectFailureState
	inScope bool
}

// NewExpectFailure creates an ExpectFailure scoped to t.
// When the test finishes, it fails if WhenTesting was called without capturing a failure.
func NewExpectFailure(t TB) *ExpectFailure {
	ef := &ExpectFailure{
		t:       t,
		inScope: true,
	}
	ef.capture = failure.NewCapture(ef.fatal)
	t.Cleanup(ef.exitScope)
	return ef
}

func (ef *ExpectFailure) fatal(msg string) {
	ef.t.Helper()
	ef.t.Fatal(msg)
}

func (ef *ExpectFailure) checkScope() {
	if ef.t == nil {
		misuse.Panicf(misuse.IllegalState, "ExpectFailure must be created with NewExpectFailure")
	}
	if !ef.inScope {
		misuse.Panicf(misuse.IllegalState, "ExpectFailure used after its test finished")
	}
}

// WhenTesting returns a builder whose next failure is captured.
func (ef *ExpectFailure) WhenTesting() *SubjectBuilder {
	ef.checkScope()
	ef.t.Helper()
	switch ef.state {
	case efArmed:
		ef.fatal("ExpectFailure.WhenTesting() called previously, but did not capture a failure.")
		return nil
	case efCaptured:
		ef.fatal("ExpectFailure already captured a failure; call Failure() before WhenTesting() again.")
		return nil
	}
	ef.capture.Reset()
	ef.state = efArmed
	return &SubjectBuilder{metadata: newMetadata(failure.StrategyFunc(ef.captureFailure), ef.t)}
}

func (ef *ExpectFailure) captureFailure(f *failure.Failure) {
	ef.capture.Fail(f)
	if ef.state == efArmed {
		ef.state = efCaptured
	}
}

// Failure returns the captured failure.
// It's fatal to call this before a failure is captured.
func (ef *ExpectFailure) Failure() *failure.Failure {
	ef.checkScope()
	ef.t.Helper()
	f, ok := ef.capture.Failure()
	if !ok || (ef.state != efCaptured && ef.state != efFinished) {
		ef.fatal("ExpectFailure did not capture a failure.")
		return nil
	}
	ef.state = efFinished
	return f
}

func (ef *ExpectFailure) exitScope() {
	ef.inScope = false
	if ef.state == efArmed {
		ef.fatal("ExpectFailure.WhenTesting() invoked, but no failure was caught.")
	}
	ef.state = efFinished
}

// ExpectFailureOf runs assertion with a builder whose failure is captured, and returns that failure.
//
//	f := truth.ExpectFailureOf(t, func(b *truth.SubjectBuilder) {
//		b.That(4).IsEqualTo(5)
//	})
func ExpectFailureOf(t TB, assertion func(whenTesting *SubjectBuilder)) *failure.Failure {
	t.Helper()
	ef := NewExpectFailure(t)
	assertion(ef.WhenTesting())
	return ef.Failure()
}

// ExpectFailureAbout is the same as [ExpectFailureOf] for custom subjects created with factory.
func ExpectFailureAbout[S any, A any](t TB, factory Factory[S, A], assertion func(whenTesting *SimpleSubjectBuilder[S, A])) *failure.Failure {
	t.Helper()
	ef := NewExpectFailure(t)
	assertion(About(ef.WhenTesting(), factory))
	return ef.Failure()
}

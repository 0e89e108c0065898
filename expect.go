package truth

import (
	"github.com/saylorsolutions/truth/failure"
)

// Expect records failures instead of stopping the test at the first one.
// When the test finishes, every recorded failure is reported together with t.Error.
//
//	expect := truth.NewExpect(t)
//	expect.That(user.Name).IsEqualTo("gopher")
//	expect.That(user.Age).IsEqualTo(13)
//
// Note that an Expect is not concurrency safe.
type Expect struct {
	*SubjectBuilder
	recorder *failure.Recorder
}

// NewExpect creates an Expect that reports to t when the test finishes.
func NewExpect(t TB) *Expect {
	recorder := new(failure.Recorder)
	t.Cleanup(func() {
		if err := recorder.Result(); err != nil {
			t.Error(err.Error())
		}
	})
	return &Expect{
		SubjectBuilder: &SubjectBuilder{metadata: newMetadata(recorder, t)},
		recorder:       recorder,
	}
}

// HasFailures reports whether any failure has been recorded so far.
func (e *Expect) HasFailures() bool {
	return e.recorder.Len() > 0
}

// Failures returns the failures recorded so far.
func (e *Expect) Failures() []*failure.Failure {
	return e.recorder.Failures()
}

package truth_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/saylorsolutions/truth"
	"github.com/saylorsolutions/truth/fact"
	"github.com/saylorsolutions/truth/misuse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type badSubject struct {
	*truth.Subject
	actual int
}

func badSubjects(m *truth.FailureMetadata, actual int) *badSubject {
	return &badSubject{Subject: truth.NewSubject(m, actual), actual: actual}
}

// IsEqualTo fails twice, which a capturing strategy must reject.
func (s *badSubject) IsEqualTo(expected int) {
	if s.actual != expected {
		s.FailWithoutActual(fact.Simple(fmt.Sprintf("expected <%d> is equal to <%d>", s.actual, expected)))
		s.FailWithoutActual(fact.Simple(fmt.Sprintf("expected <%d> is equal to <%d>", expected, s.actual)))
	}
}

func TestExpectFailure_Fail(t *testing.T) {
	ef := truth.NewExpectFailure(t)
	ef.WhenTesting().WithMessage("abc").Fail()
	assert.Equal(t, "abc", ef.Failure().Message)
}

func TestExpectFailure_WithCause(t *testing.T) {
	cause := errors.New("not found")
	ef := truth.NewExpectFailure(t)
	ef.WhenTesting().That(cause).IsNull()
	f := ef.Failure()
	assert.Contains(t, f.Message, "not found")
	assert.Same(t, cause, f.Cause)
}

func TestExpectFailure_About(t *testing.T) {
	ef := truth.NewExpectFailure(t)
	truth.About(ef.WhenTesting(), myObjects).That("foo").IsEqualTo("bar")
	assert.Contains(t, ef.Failure().Message, "foo")
}

func TestExpectFailure_PassesIfUnused(t *testing.T) {
	tb := new(fakeTB)
	truth.NewExpectFailure(tb)
	tb.finish()
	assert.Empty(t, tb.fatals)
}

func TestExpectFailure_ReadTwice(t *testing.T) {
	ef := truth.NewExpectFailure(t)
	ef.WhenTesting().That(4).IsEqualTo(5)
	first := ef.Failure()
	assert.Same(t, first, ef.Failure())
}

func TestExpectFailure_RearmAfterRead(t *testing.T) {
	ef := truth.NewExpectFailure(t)
	ef.WhenTesting().That(4).IsEqualTo(5)
	first := ef.Failure()
	ef.WhenTesting().That(6).IsEqualTo(7)
	second := ef.Failure()
	assert.NotSame(t, first, second)
	assert.Equal(t, "expected: 7\nbut was : 6", second.Message)
}

func TestExpectFailure_Misuse(t *testing.T) {
	tests := map[string]struct {
		run      func(ef *truth.ExpectFailure)
		expected string
	}{
		"Fails on success": {
			run: func(ef *truth.ExpectFailure) {
				ef.WhenTesting().That(4).IsEqualTo(4)
				ef.Failure()
			},
			expected: "ExpectFailure did not capture a failure.",
		},
		"Failure before WhenTesting": {
			run: func(ef *truth.ExpectFailure) {
				ef.Failure()
			},
			expected: "ExpectFailure did not capture a failure.",
		},
		"Multiple failures": {
			run: func(ef *truth.ExpectFailure) {
				truth.About(ef.WhenTesting(), badSubjects).That(5).IsEqualTo(4)
			},
			expected: "caught multiple failures:\n\nexpected <5> is equal to <4>\n\nexpected <4> is equal to <5>",
		},
		"Multiple WhenTestings": {
			run: func(ef *truth.ExpectFailure) {
				ef.WhenTesting().That(4).IsEqualTo(4)
				ef.WhenTesting()
			},
			expected: "ExpectFailure.WhenTesting() called previously, but did not capture a failure.",
		},
		"Multiple WhenTestings that fail": {
			run: func(ef *truth.ExpectFailure) {
				ef.WhenTesting().That(5).IsEqualTo(4)
				ef.WhenTesting()
			},
			expected: "ExpectFailure already captured a failure; call Failure() before WhenTesting() again.",
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			tb := new(fakeTB)
			ef := truth.NewExpectFailure(tb)
			require.True(t, catchFatal(func() {
				tc.run(ef)
			}))
			require.NotEmpty(t, tb.fatals)
			assert.Equal(t, tc.expected, tb.fatals[0])
		})
	}
}

func TestExpectFailure_FailsAfterTest(t *testing.T) {
	tb := new(fakeTB)
	ef := truth.NewExpectFailure(tb)
	ef.WhenTesting().That(4).IsEqualTo(4)
	tb.finish()
	assert.Equal(t, []string{"ExpectFailure.WhenTesting() invoked, but no failure was caught."}, tb.fatals)
}

func TestExpectFailure_CapturedButUnreadPassesScopeExit(t *testing.T) {
	tb := new(fakeTB)
	ef := truth.NewExpectFailure(tb)
	ef.WhenTesting().That(4).IsEqualTo(5)
	tb.finish()
	assert.Empty(t, tb.fatals)
}

func TestExpectFailure_OutsideScope(t *testing.T) {
	var zero truth.ExpectFailure
	assertMisuse(t, misuse.ErrIllegalState, func() {
		zero.WhenTesting().That(4).IsEqualTo(4)
	})

	tb := new(fakeTB)
	ef := truth.NewExpectFailure(tb)
	tb.finish()
	assertMisuse(t, misuse.ErrIllegalState, func() {
		ef.WhenTesting()
	})
}

func TestExpectFailure_StrategyIsolation(t *testing.T) {
	tb := new(fakeTB)
	ef := truth.NewExpectFailure(tb)
	assert.False(t, catchFatal(func() {
		ef.WhenTesting().That(4).IsEqualTo(5)
	}), "a captured failure never reaches the test host")
	assert.Empty(t, tb.fatals)
	assert.Empty(t, tb.errors)
}

func TestExpectFailureAbout(t *testing.T) {
	f := truth.ExpectFailureAbout(t, truth.NewBoolSubject, func(b *truth.SimpleSubjectBuilder[*truth.BoolSubject, bool]) {
		b.That(false).IsTrue()
	})
	require.NotNil(t, f)
	assert.Equal(t, "expected to be true", f.Message)
}

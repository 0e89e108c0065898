package truth_test

import (
	"errors"
	"testing"

	"github.com/saylorsolutions/truth"
	"github.com/saylorsolutions/truth/fact"
	"github.com/saylorsolutions/truth/failure"
	"github.com/saylorsolutions/truth/misuse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errRoot = errors.New("root")

type MyObjectSubject struct {
	*truth.Subject
}

func myObjects(m *truth.FailureMetadata, actual any) *MyObjectSubject {
	return &MyObjectSubject{Subject: truth.NewSubject(m, actual)}
}

// isThePresentKingOfFrance always fails.
func (s *MyObjectSubject) isThePresentKingOfFrance() {
	s.FailWithoutActual(fact.Simple("message"))
}

func (s *MyObjectSubject) doCheckFail(name string) {
	s.Check(name).WithMessage("message").Fail()
}

func (s *MyObjectSubject) delegatingToNamed(actual any, name string) *MyObjectSubject {
	return truth.About(s.Check(name), myObjects).That(actual)
}

func (s *MyObjectSubject) delegatingToNamedNoNeedToDisplayBoth(actual any, name string) *MyObjectSubject {
	return truth.About(s.CheckNoNeedToDisplayBothValues(name), myObjects).That(actual)
}

func expectMyObjectFailure(t *testing.T, assertion func(whenTesting *truth.SimpleSubjectBuilder[*MyObjectSubject, any])) *failure.Failure {
	t.Helper()
	f := truth.ExpectFailureAbout(t, myObjects, assertion)
	require.NotNil(t, f)
	return f
}

func assertNoCause(t *testing.T, f *failure.Failure, message string) {
	t.Helper()
	assert.Equal(t, message, f.Message)
	assert.NoError(t, f.Cause)
}

func TestChaining(t *testing.T) {
	tests := map[string]struct {
		assertion func(b *truth.SimpleSubjectBuilder[*MyObjectSubject, any])
		expected  string
	}{
		"No chaining": {
			assertion: func(b *truth.SimpleSubjectBuilder[*MyObjectSubject, any]) {
				b.That("root").isThePresentKingOfFrance()
			},
			expected: "message",
		},
		"One level named": {
			assertion: func(b *truth.SimpleSubjectBuilder[*MyObjectSubject, any]) {
				b.That("root").delegatingToNamed("child", "child").isThePresentKingOfFrance()
			},
			expected: "value of    : myObject.child\nmessage\nmyObject was: root",
		},
		"Two levels named": {
			assertion: func(b *truth.SimpleSubjectBuilder[*MyObjectSubject, any]) {
				b.That("root").
					delegatingToNamed("child", "child").
					delegatingToNamed("grandchild", "grandchild").
					isThePresentKingOfFrance()
			},
			expected: "value of    : myObject.child.grandchild\nmessage\nmyObject was: root",
		},
		"One level no need to display both": {
			assertion: func(b *truth.SimpleSubjectBuilder[*MyObjectSubject, any]) {
				b.That("root").delegatingToNamedNoNeedToDisplayBoth("child", "child").isThePresentKingOfFrance()
			},
			expected: "value of: myObject.child\nmessage",
		},
		"Two levels no need to display both": {
			assertion: func(b *truth.SimpleSubjectBuilder[*MyObjectSubject, any]) {
				b.That("root").
					delegatingToNamedNoNeedToDisplayBoth("child", "child").
					delegatingToNamedNoNeedToDisplayBoth("grandchild", "grandchild").
					isThePresentKingOfFrance()
			},
			expected: "value of: myObject.child.grandchild\nmessage",
		},
		"Only first step suppresses": {
			assertion: func(b *truth.SimpleSubjectBuilder[*MyObjectSubject, any]) {
				b.That("root").
					delegatingToNamedNoNeedToDisplayBoth("child", "child").
					delegatingToNamed("grandchild", "grandchild").
					isThePresentKingOfFrance()
			},
			expected: "value of: myObject.child.grandchild\nmessage",
		},
		"Only second step suppresses": {
			assertion: func(b *truth.SimpleSubjectBuilder[*MyObjectSubject, any]) {
				b.That("root").
					delegatingToNamed("child", "child").
					delegatingToNamedNoNeedToDisplayBoth("grandchild", "grandchild").
					isThePresentKingOfFrance()
			},
			expected: "value of: myObject.child.grandchild\nmessage",
		},
		"Check fail with name": {
			assertion: func(b *truth.SimpleSubjectBuilder[*MyObjectSubject, any]) {
				b.That("root").doCheckFail("child")
			},
			expected: "message\nvalue of    : myObject.child\nmyObject was: root",
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assertNoCause(t, expectMyObjectFailure(t, tc.assertion), tc.expected)
		})
	}
}

func TestChaining_RootError(t *testing.T) {
	f := expectMyObjectFailure(t, func(b *truth.SimpleSubjectBuilder[*MyObjectSubject, any]) {
		b.That(errRoot).isThePresentKingOfFrance()
	})
	assert.Equal(t, "message", f.Message)
	assert.Same(t, errRoot, f.Cause)
	assert.ErrorIs(t, f, errRoot)
}

func TestChaining_RootErrorNotDisplayed(t *testing.T) {
	f := expectMyObjectFailure(t, func(b *truth.SimpleSubjectBuilder[*MyObjectSubject, any]) {
		b.That(errRoot).delegatingToNamed("child", "child").isThePresentKingOfFrance()
	})
	assert.Equal(t, "value of: myObject.child\nmessage", f.Message)
	assert.Same(t, errRoot, f.Cause)
}

func TestChaining_NamedAndMessage(t *testing.T) {
	f := truth.ExpectFailureOf(t, func(b *truth.SubjectBuilder) {
		truth.About(b.WithMessage("prefix"), myObjects).
			That("root").
			delegatingToNamed("child", "child").
			isThePresentKingOfFrance()
	})
	require.NotNil(t, f)
	assertNoCause(t, f, "prefix\nvalue of    : myObject.child\nmessage\nmyObject was: root")
}

func TestChaining_BadFormat(t *testing.T) {
	assertMisuse(t, misuse.ErrInvalidArgument, func() {
		truth.AssertThat(t, "root").Check("%s %s", 1, 2, 3)
	})
}

func TestChaining_TypeDescription(t *testing.T) {
	f := truth.ExpectFailureOf(t, func(b *truth.SubjectBuilder) {
		sub := truth.About(b, func(m *truth.FailureMetadata, actual string) *truth.Subject {
			return truth.NewSubject(m, actual, truth.WithTypeDescription("widget"))
		}).That("root")
		sub.Check("name").That("gopher").IsEqualTo("gadget")
	})
	require.NotNil(t, f)
	assert.Equal(t, "value of  : widget.name\nexpected  : gadget\nbut was   : gopher\nwidget was: root", f.Message)
}

func TestChaining_LazyStepName(t *testing.T) {
	f := truth.ExpectFailureOf(t, func(b *truth.SubjectBuilder) {
		b.That([]string{"a", "b"}).Check("at(%s)", 1).That("b").IsEqualTo("c")
	})
	require.NotNil(t, f)
	val, ok := f.Value("value of")
	assert.True(t, ok)
	assert.Equal(t, "object.at(1)", val)
	val, _ = f.Value("object was")
	assert.Equal(t, "[a, b]", val)
}

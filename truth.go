package truth

import (
	"github.com/saylorsolutions/truth/failure"
)

// TB is the part of [testing.TB] used by this package.
type TB interface {
	Helper()
	Fatal(args ...any)
	Error(args ...any)
	Cleanup(func())
}

// Assert returns a builder whose failures stop the test with t.Fatal.
func Assert(t TB) *SubjectBuilder {
	return &SubjectBuilder{metadata: newMetadata(failure.Fatal(t), t)}
}

// AssertThat creates a [Subject] for actual whose failures stop the test with t.Fatal.
func AssertThat(t TB, actual any) *Subject {
	return Assert(t).That(actual)
}

// AssertWithMessage is the same as [Assert], but each failure starts with the given message.
// The only supported placeholder is "%s".
func AssertWithMessage(t TB, format string, args ...any) *SubjectBuilder {
	return Assert(t).WithMessage(format, args...)
}

// AssertAbout returns a builder for custom subjects created with factory, whose failures stop the test with t.Fatal.
func AssertAbout[S any, A any](t TB, factory Factory[S, A]) *SimpleSubjectBuilder[S, A] {
	return About(Assert(t), factory)
}

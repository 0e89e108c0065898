package truth

import (
	"errors"

	"github.com/saylorsolutions/truth/fact"
	"github.com/saylorsolutions/truth/internal/repr"
)

// ErrorSubject provides checks for errors.
// An error at the root of a chain is attached to failures as their cause, instead of being shown as the root value.
type ErrorSubject struct {
	*Subject
	actual error
}

// NewErrorSubject is the [Factory] for [ErrorSubject].
func NewErrorSubject(m *FailureMetadata, actual error) *ErrorSubject {
	return &ErrorSubject{
		Subject: NewSubject(m, actual),
		actual:  actual,
	}
}

// Message returns a subject for the result of Error().
// If the actual error is nil, this fails and further checks on the returned subject are ignored.
func (s *ErrorSubject) Message() *Subject {
	s.metadata.host.Helper()
	if repr.IsNil(s.actual) {
		s.FailWithoutActual(fact.Simple("expected an error with a message"), fact.New("but was", repr.Null))
		return s.IgnoreCheck().That(nil)
	}
	return s.Check("Error()").That(s.actual.Error())
}

// Cause returns a subject for the result of [errors.Unwrap].
func (s *ErrorSubject) Cause() *ErrorSubject {
	s.metadata.host.Helper()
	if repr.IsNil(s.actual) {
		s.FailWithoutActual(fact.Simple("expected an error with a cause"), fact.New("but was", repr.Null))
		return s.IgnoreCheck().ThatError(nil)
	}
	return s.Check("Unwrap()").ThatError(errors.Unwrap(s.actual))
}

// Is fails if the actual error doesn't match target with [errors.Is].
func (s *ErrorSubject) Is(target error) {
	s.metadata.host.Helper()
	if errors.Is(s.actual, target) {
		return
	}
	s.FailWithActual(fact.New("expected to match with errors.Is", repr.Of(target)))
}

// IsNot fails if the actual error matches target with [errors.Is].
func (s *ErrorSubject) IsNot(target error) {
	s.metadata.host.Helper()
	if !errors.Is(s.actual, target) {
		return
	}
	s.FailWithActual(fact.New("expected not to match with errors.Is", repr.Of(target)))
}

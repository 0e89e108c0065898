package truth

import (
	"reflect"

	"github.com/saylorsolutions/truth/fact"
	"github.com/saylorsolutions/truth/internal/repr"
	"github.com/saylorsolutions/truth/misuse"
)

// SliceSubject provides checks for slices and arrays of any element type.
type SliceSubject struct {
	*Subject
	length int
}

// NewSliceSubject is the [Factory] for [SliceSubject].
// The actual value must be nil, a slice, or an array.
func NewSliceSubject(m *FailureMetadata, actual any) *SliceSubject {
	var length int
	if actual != nil {
		rv := reflect.ValueOf(actual)
		switch rv.Kind() {
		case reflect.Slice, reflect.Array:
			length = rv.Len()
		default:
			misuse.Panicf(misuse.InvalidArgument, "SliceSubject requires a slice or array, got %T", actual)
		}
	}
	return &SliceSubject{
		Subject: NewSubject(m, actual),
		length:  length,
	}
}

// Len returns a subject for the length of the actual value.
func (s *SliceSubject) Len() *Subject {
	return s.Check("len()").That(s.length)
}

// HasLength fails if the actual value doesn't have the expected length.
// A negative expected length panics.
func (s *SliceSubject) HasLength(expected int) {
	s.metadata.host.Helper()
	if expected < 0 {
		misuse.Panicf(misuse.InvalidArgument, "HasLength(%d) called with negative length", expected)
	}
	s.Len().IsEqualTo(expected)
}

func (s *SliceSubject) IsEmpty() {
	s.metadata.host.Helper()
	if s.length != 0 {
		s.FailWithActual(fact.Simple("expected to be empty"))
	}
}

func (s *SliceSubject) IsNotEmpty() {
	s.metadata.host.Helper()
	if s.length == 0 {
		s.FailWithoutActual(fact.Simple("expected not to be empty"))
	}
}

// Contains fails if no element of the actual value is equal to element, as defined by [Subject.IsEqualTo].
func (s *SliceSubject) Contains(element any) {
	s.metadata.host.Helper()
	for _, elem := range mustElements("Contains", s.actual) {
		if valuesEqual(elem, element) {
			return
		}
	}
	s.FailWithActual(fact.New("expected to contain", repr.Of(element)))
}

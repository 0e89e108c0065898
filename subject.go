package truth

import (
	"reflect"

	"github.com/saylorsolutions/truth/fact"
	"github.com/saylorsolutions/truth/failure"
	"github.com/saylorsolutions/truth/internal/repr"
	"github.com/saylorsolutions/truth/lazy"
	"github.com/saylorsolutions/truth/misuse"
)

// Subject is a value under test, along with the metadata needed to report failures about it.
// It provides the checks that apply to any value.
//
// Custom subjects embed *Subject and are created with [NewSubject] from within a [Factory].
type Subject struct {
	metadata *FailureMetadata
	actual   any
}

type subjectOptions struct {
	typeDescription string
}

// SubjectOption customizes a [Subject] created with [NewSubject].
type SubjectOption func(*subjectOptions)

// WithTypeDescription replaces the label used for the root value in failure messages, which is derived from the subject's type name by default.
// It has no effect on a subject that isn't the root of its chain.
func WithTypeDescription(desc string) SubjectOption {
	return func(opts *subjectOptions) {
		opts.typeDescription = desc
	}
}

// NewSubject creates a Subject for actual.
// This is meant to be called from a [Factory] with the metadata it was given.
func NewSubject(m *FailureMetadata, actual any, opts ...SubjectOption) *Subject {
	if m == nil {
		misuse.Panicf(misuse.IllegalState, "NewSubject called with nil FailureMetadata; use a Factory with About or AssertAbout")
	}
	options := subjectOptions{typeDescription: m.typeHint}
	for _, opt := range opts {
		opt(&options)
	}
	return &Subject{
		metadata: m.withActual(actual, options.typeDescription),
		actual:   actual,
	}
}

// Actual returns the value under test.
func (s *Subject) Actual() any {
	return s.actual
}

// Metadata returns the metadata of this Subject, which can be used to create subjects that report failures the same way.
func (s *Subject) Metadata() *FailureMetadata {
	return s.metadata
}

func (s *Subject) actualString() string {
	return repr.Of(s.actual)
}

// Check starts a derived subject, named with the format and args.
// The name is shown in the "value of" line of failures, and the root value is shown as well.
//
//	s.Check("len()").That(len(actual)).IsEqualTo(3)
func (s *Subject) Check(format string, args ...any) *SubjectBuilder {
	return &SubjectBuilder{metadata: s.metadata.extend(lazy.Must(format, args...), false)}
}

// CheckNoNeedToDisplayBothValues is the same as [Subject.Check], except that the root value is left out of failures.
// This is useful when the derived value makes the root value obvious.
func (s *Subject) CheckNoNeedToDisplayBothValues(format string, args ...any) *SubjectBuilder {
	return &SubjectBuilder{metadata: s.metadata.extend(lazy.Must(format, args...), true)}
}

// IgnoreCheck returns a builder whose failures are discarded.
// This is useful when a check can't proceed, and has already reported why.
func (s *Subject) IgnoreCheck() *SubjectBuilder {
	return &SubjectBuilder{metadata: s.metadata.withStrategy(failure.Ignore)}
}

// FailWithActual reports a failure made of facts, followed by a "but was" fact with the actual value.
func (s *Subject) FailWithActual(facts ...fact.Fact) {
	s.metadata.host.Helper()
	s.metadata.fail(append(facts, fact.New("but was", s.actualString()))...)
}

// FailWithoutActual reports a failure made of only the given facts.
func (s *Subject) FailWithoutActual(facts ...fact.Fact) {
	s.metadata.host.Helper()
	s.metadata.fail(facts...)
}

// IsNull fails if the actual value is not nil.
// A typed nil, such as a nil pointer in an interface, is considered nil.
func (s *Subject) IsNull() {
	s.metadata.host.Helper()
	s.standardIsEqualTo(nil)
}

// IsNotNull fails if the actual value is nil.
func (s *Subject) IsNotNull() {
	s.metadata.host.Helper()
	s.standardIsNotEqualTo(nil)
}

// IsEqualTo fails if the actual value is not equal to expected.
//
// Values are equal if they're the same instance, both nil, or equal according to [github.com/google/go-cmp/cmp.Equal], which uses an Equal method if the type has one.
// Unexported fields are compared.
func (s *Subject) IsEqualTo(expected any) {
	s.metadata.host.Helper()
	s.standardIsEqualTo(expected)
}

// IsNotEqualTo fails if the actual value is equal to unexpected, as defined by [Subject.IsEqualTo].
func (s *Subject) IsNotEqualTo(unexpected any) {
	s.metadata.host.Helper()
	s.standardIsNotEqualTo(unexpected)
}

func (s *Subject) standardIsEqualTo(expected any) {
	s.metadata.host.Helper()
	if valuesEqual(s.actual, expected) {
		return
	}
	s.metadata.failEqualityCheck(comparisonFacts(expected, s.actual), repr.Of(expected), s.actualString())
}

func (s *Subject) standardIsNotEqualTo(unexpected any) {
	s.metadata.host.Helper()
	if !valuesEqual(s.actual, unexpected) {
		return
	}
	unexpectedStr := repr.Of(unexpected)
	facts := []fact.Fact{fact.New("expected not to be", unexpectedStr)}
	if actualStr := s.actualString(); actualStr != unexpectedStr {
		facts = append(facts, fact.New("but was; string representation of actual value", actualStr))
	}
	s.FailWithoutActual(facts...)
}

// IsSameInstanceAs fails if the actual value isn't the same instance as expected.
// Pointers, maps, channels, and slices must refer to the same memory, while other comparable values must be ==.
func (s *Subject) IsSameInstanceAs(expected any) {
	s.metadata.host.Helper()
	if sameInstance(s.actual, expected) {
		return
	}
	if facts := disambiguate("expected specific instance", expected, s.actual, valuesEqual(s.actual, expected)); facts != nil {
		s.FailWithoutActual(facts...)
		return
	}
	s.FailWithActual(fact.New("expected specific instance", repr.Of(expected)))
}

// IsNotSameInstanceAs fails if the actual value is the same instance as unexpected.
func (s *Subject) IsNotSameInstanceAs(unexpected any) {
	s.metadata.host.Helper()
	if !sameInstance(s.actual, unexpected) {
		return
	}
	s.FailWithoutActual(fact.New("expected not to be specific instance", repr.Of(unexpected)))
}

// IsIn fails if the actual value isn't equal to any element of values, which must be a slice or array.
func (s *Subject) IsIn(values any) {
	s.metadata.host.Helper()
	elements := mustElements("IsIn", values)
	for _, elem := range elements {
		if valuesEqual(s.actual, elem) {
			return
		}
	}
	s.FailWithActual(fact.New("expected any of", repr.Of(values)))
}

// IsNotIn fails if the actual value is equal to any element of values, which must be a slice or array.
func (s *Subject) IsNotIn(values any) {
	s.metadata.host.Helper()
	elements := mustElements("IsNotIn", values)
	for _, elem := range elements {
		if valuesEqual(s.actual, elem) {
			s.FailWithActual(fact.New("expected not to be any of", repr.Of(values)))
			return
		}
	}
}

// IsAnyOf is the variadic form of [Subject.IsIn].
func (s *Subject) IsAnyOf(values ...any) {
	s.metadata.host.Helper()
	s.IsIn(values)
}

// IsNoneOf is the variadic form of [Subject.IsNotIn].
func (s *Subject) IsNoneOf(values ...any) {
	s.metadata.host.Helper()
	s.IsNotIn(values)
}

func mustElements(check string, values any) []any {
	if values == nil {
		return nil
	}
	rv := reflect.ValueOf(values)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
	default:
		misuse.Panicf(misuse.InvalidArgument, "%s requires a slice or array, got %T", check, values)
	}
	elements := make([]any, rv.Len())
	for i := range elements {
		elements[i] = rv.Index(i).Interface()
	}
	return elements
}

// IsInstanceOf fails if the actual value isn't of type typ.
// If typ is an interface type, the actual value must implement it.
// Otherwise, the dynamic type of the actual value must be exactly typ.
//
//	AssertThat(t, err).IsInstanceOf(reflect.TypeFor[*fs.PathError]())
func (s *Subject) IsInstanceOf(typ reflect.Type) {
	s.metadata.host.Helper()
	if typ == nil {
		misuse.Panicf(misuse.InvalidArgument, "IsInstanceOf requires a non-nil reflect.Type")
	}
	if s.actual == nil {
		s.FailWithActual(fact.New("expected instance of", typ.String()))
		return
	}
	if isInstance(s.actual, typ) {
		return
	}
	s.FailWithoutActual(
		fact.New("expected instance of", typ.String()),
		fact.New("but was instance of", repr.TypeName(s.actual)),
		fact.New("with value", s.actualString()),
	)
}

// IsNotInstanceOf fails if the actual value is of type typ, as defined by [Subject.IsInstanceOf].
// A nil actual value always passes.
func (s *Subject) IsNotInstanceOf(typ reflect.Type) {
	s.metadata.host.Helper()
	if typ == nil {
		misuse.Panicf(misuse.InvalidArgument, "IsNotInstanceOf requires a non-nil reflect.Type")
	}
	if s.actual == nil || !isInstance(s.actual, typ) {
		return
	}
	s.FailWithActual(fact.New("expected not to be an instance of", typ.String()))
}

func isInstance(v any, typ reflect.Type) bool {
	actualType := reflect.TypeOf(v)
	if typ.Kind() == reflect.Interface {
		return actualType.Implements(typ)
	}
	return actualType == typ
}

// Equals always panics.
// Use [Subject.IsEqualTo] to compare the actual value.
func (s *Subject) Equals(any) bool {
	misuse.Panicf(misuse.Unsupported, "Subject.Equals() is not supported. Did you mean to call AssertThat(actual).IsEqualTo(expected) instead of AssertThat(actual).Equals(expected)?")
	return false
}

// HashCode always panics.
func (s *Subject) HashCode() int {
	misuse.Panicf(misuse.Unsupported, "Subject.HashCode() is not supported.")
	return 0
}

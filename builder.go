package truth

import (
	"reflect"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/saylorsolutions/truth/failure"
	"github.com/shopspring/decimal"
)

// Factory creates a subject of type S for an actual value of type A.
// Factories must pass the metadata they're given to [NewSubject].
type Factory[S any, A any] func(m *FailureMetadata, actual A) S

// SubjectBuilder starts subjects that share the same metadata.
type SubjectBuilder struct {
	metadata *FailureMetadata
}

// Using returns a SubjectBuilder that sends failures to strategy.
// This is useful outside of tests, or with a strategy like [failure.Panic] or a [failure.Recorder].
func Using(strategy failure.Strategy) *SubjectBuilder {
	return &SubjectBuilder{metadata: newMetadata(strategy, nil)}
}

// That creates a [Subject] for any value.
func (b *SubjectBuilder) That(actual any) *Subject {
	return NewSubject(b.metadata.withTypeHint(defaultTypeDescription), actual)
}

// WithMessage returns a builder that adds a message to each failure.
// The only supported placeholder is "%s", and the number of placeholders must match the number of args.
func (b *SubjectBuilder) WithMessage(format string, args ...any) *SubjectBuilder {
	return &SubjectBuilder{metadata: b.metadata.WithMessage(format, args...)}
}

// Fail reports a failure with no facts, only the messages and chain information of the builder.
func (b *SubjectBuilder) Fail() {
	b.metadata.host.Helper()
	b.metadata.fail()
}

func (b *SubjectBuilder) ThatBool(actual bool) *BoolSubject {
	return About(b, NewBoolSubject).That(actual)
}

func (b *SubjectBuilder) ThatDecimal(actual decimal.Decimal) *DecimalSubject {
	return About(b, NewDecimalSubject).That(actual)
}

func (b *SubjectBuilder) ThatSlice(actual any) *SliceSubject {
	return About(b, NewSliceSubject).That(actual)
}

func (b *SubjectBuilder) ThatError(actual error) *ErrorSubject {
	return About(b, NewErrorSubject).That(actual)
}

// SimpleSubjectBuilder creates subjects with a single [Factory].
type SimpleSubjectBuilder[S any, A any] struct {
	metadata *FailureMetadata
	factory  Factory[S, A]
	hint     string
}

// About returns a builder that creates subjects with factory.
func About[S any, A any](b *SubjectBuilder, factory Factory[S, A]) *SimpleSubjectBuilder[S, A] {
	return &SimpleSubjectBuilder[S, A]{
		metadata: b.metadata,
		factory:  factory,
		hint:     describeType(reflect.TypeFor[S]()),
	}
}

// That creates a subject for actual.
func (b *SimpleSubjectBuilder[S, A]) That(actual A) S {
	return b.factory(b.metadata.withTypeHint(b.hint), actual)
}

// describeType derives a label for values of subject type typ.
// The "Subject" suffix is removed and the first letter is lowered, so *MoneySubject becomes "money".
func describeType(typ reflect.Type) string {
	for typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	name := typ.Name()
	if idx := strings.IndexByte(name, '['); idx >= 0 {
		name = name[:idx]
	}
	name = strings.TrimSuffix(name, "Subject")
	if len(name) == 0 {
		return defaultTypeDescription
	}
	first, size := utf8.DecodeRuneInString(name)
	return string(unicode.ToLower(first)) + name[size:]
}

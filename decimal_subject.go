package truth

import (
	"github.com/saylorsolutions/truth/fact"
	"github.com/shopspring/decimal"
)

// DecimalSubject provides checks for [decimal.Decimal] values.
//
// Unlike [Subject.IsEqualTo], which uses [decimal.Decimal.Equal], the IsEqualTo of a DecimalSubject also requires the same scale, so 1.0 is not equal to 1.00.
// Use [DecimalSubject.IsEqualToIgnoringScale] to compare numeric value only.
type DecimalSubject struct {
	*Subject
	actual decimal.Decimal
}

// NewDecimalSubject is the [Factory] for [DecimalSubject].
func NewDecimalSubject(m *FailureMetadata, actual decimal.Decimal) *DecimalSubject {
	return &DecimalSubject{
		Subject: NewSubject(m, actual),
		actual:  actual,
	}
}

// IsEqualTo fails unless expected is a decimal with the same value and scale as the actual value.
// Other kinds of expected values are compared with [Subject.IsEqualTo].
func (s *DecimalSubject) IsEqualTo(expected any) {
	s.metadata.host.Helper()
	var want decimal.Decimal
	switch e := expected.(type) {
	case decimal.Decimal:
		want = e
	case *decimal.Decimal:
		if e == nil {
			s.Subject.IsEqualTo(expected)
			return
		}
		want = *e
	default:
		s.Subject.IsEqualTo(expected)
		return
	}
	if s.actual.Equal(want) && s.actual.Exponent() == want.Exponent() {
		return
	}
	expectedFact, actualFact := fact.Numeric("expected", want), fact.Numeric("but was", s.actual)
	expectedStr, _ := expectedFact.Value()
	actualStr, _ := actualFact.Value()
	s.metadata.failEqualityCheck([]fact.Fact{expectedFact, actualFact}, expectedStr, actualStr)
}

// IsEqualToIgnoringScale fails if the actual value is numerically different from expected.
func (s *DecimalSubject) IsEqualToIgnoringScale(expected decimal.Decimal) {
	s.metadata.host.Helper()
	if s.actual.Cmp(expected) == 0 {
		return
	}
	s.FailWithoutActual(
		fact.Numeric("expected", expected),
		fact.Numeric("but was", s.actual),
		fact.Simple("(scale is ignored)"),
	)
}

// IsEquivalentTo fails if the actual value doesn't sort equal to expected.
func (s *DecimalSubject) IsEquivalentTo(expected decimal.Decimal) {
	s.metadata.host.Helper()
	if s.actual.Cmp(expected) == 0 {
		return
	}
	s.failWithNumericActual(fact.Numeric("expected value that sorts equal to", expected))
}

// IsGreaterThan fails unless the actual value is greater than other.
func (s *DecimalSubject) IsGreaterThan(other decimal.Decimal) {
	s.metadata.host.Helper()
	if s.actual.GreaterThan(other) {
		return
	}
	s.failWithNumericActual(fact.Numeric("expected to be greater than", other))
}

// IsLessThan fails unless the actual value is less than other.
func (s *DecimalSubject) IsLessThan(other decimal.Decimal) {
	s.metadata.host.Helper()
	if s.actual.LessThan(other) {
		return
	}
	s.failWithNumericActual(fact.Numeric("expected to be less than", other))
}

func (s *DecimalSubject) failWithNumericActual(facts ...fact.Fact) {
	s.metadata.host.Helper()
	s.FailWithoutActual(append(facts, fact.Numeric("but was", s.actual))...)
}

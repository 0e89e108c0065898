package truth

import "github.com/saylorsolutions/truth/fact"

// BoolSubject provides checks for bool values.
type BoolSubject struct {
	*Subject
	actual bool
}

// NewBoolSubject is the [Factory] for [BoolSubject].
func NewBoolSubject(m *FailureMetadata, actual bool) *BoolSubject {
	return &BoolSubject{
		Subject: NewSubject(m, actual),
		actual:  actual,
	}
}

func (s *BoolSubject) IsTrue() {
	s.metadata.host.Helper()
	if !s.actual {
		s.FailWithoutActual(fact.Simple("expected to be true"))
	}
}

func (s *BoolSubject) IsFalse() {
	s.metadata.host.Helper()
	if s.actual {
		s.FailWithoutActual(fact.Simple("expected to be false"))
	}
}

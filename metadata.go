package truth

import (
	"strings"

	"github.com/saylorsolutions/truth/fact"
	"github.com/saylorsolutions/truth/failure"
	"github.com/saylorsolutions/truth/internal/chain"
	"github.com/saylorsolutions/truth/internal/repr"
	"github.com/saylorsolutions/truth/lazy"
)

const defaultTypeDescription = "object"

type step struct {
	name                *lazy.Message
	suppressRootDisplay bool
}

type rootValue struct {
	actual any
	label  string
}

// FailureMetadata carries everything a subject needs to report a failure: the strategy, custom messages, and the chain of steps from the root subject.
// It's immutable, and every derivation returns a new FailureMetadata sharing the existing messages and steps.
type FailureMetadata struct {
	strategy failure.Strategy
	host     failure.Helper
	messages chain.List[*lazy.Message]
	steps    chain.List[step]
	root     *rootValue
	typeHint string
	cause    error
}

type noopHelper struct{}

func (noopHelper) Helper() {}

func newMetadata(strategy failure.Strategy, host failure.Helper) *FailureMetadata {
	if host == nil {
		host = noopHelper{}
	}
	return &FailureMetadata{
		strategy: strategy,
		host:     host,
	}
}

func (m *FailureMetadata) clone() *FailureMetadata {
	cp := *m
	return &cp
}

// WithMessage returns metadata with an additional message, shown before the facts of any failure.
// The message is only formatted if a failure occurs, but a mismatch between "%s" placeholders and args panics immediately.
func (m *FailureMetadata) WithMessage(format string, args ...any) *FailureMetadata {
	cp := m.clone()
	cp.messages = m.messages.Append(lazy.Must(format, args...))
	return cp
}

func (m *FailureMetadata) withStrategy(strategy failure.Strategy) *FailureMetadata {
	cp := m.clone()
	cp.strategy = strategy
	return cp
}

func (m *FailureMetadata) withTypeHint(hint string) *FailureMetadata {
	cp := m.clone()
	cp.typeHint = hint
	return cp
}

func (m *FailureMetadata) extend(name *lazy.Message, suppressRootDisplay bool) *FailureMetadata {
	cp := m.clone()
	cp.steps = m.steps.Append(step{name: name, suppressRootDisplay: suppressRootDisplay})
	return cp
}

// withActual records actual as the root value if there isn't one yet.
// The first error seen in the chain becomes the failure cause.
func (m *FailureMetadata) withActual(actual any, label string) *FailureMetadata {
	cp := m.clone()
	cp.typeHint = ""
	if cp.root == nil {
		cp.root = &rootValue{actual: actual, label: label}
	}
	if err, ok := actual.(error); ok && cp.cause == nil && !repr.IsNil(err) {
		cp.cause = err
	}
	return cp
}

func (m *FailureMetadata) rootLabel() string {
	if m.root == nil || len(m.root.label) == 0 {
		return defaultTypeDescription
	}
	return m.root.label
}

func (m *FailureMetadata) resolveValueOf() (string, bool) {
	if m.steps.Len() == 0 {
		return "", false
	}
	var buf strings.Builder
	buf.WriteString(m.rootLabel())
	for s := range m.steps.All() {
		buf.WriteByte('.')
		buf.WriteString(s.name.String())
	}
	return buf.String(), true
}

func (m *FailureMetadata) shouldDisplayRoot() bool {
	if m.steps.Len() == 0 || m.root == nil {
		return false
	}
	if _, isErr := m.root.actual.(error); isErr && !repr.IsNil(m.root.actual) {
		return false
	}
	return !m.steps.Any(func(s step) bool {
		return s.suppressRootDisplay
	})
}

func (m *FailureMetadata) decorate(facts []fact.Fact) ([]string, []fact.Fact) {
	decorated := make([]fact.Fact, 0, len(facts)+2)
	if valueOf, ok := m.resolveValueOf(); ok {
		decorated = append(decorated, fact.New("value of", valueOf))
	}
	decorated = append(decorated, facts...)
	if m.shouldDisplayRoot() {
		decorated = append(decorated, fact.New(m.rootLabel()+" was", repr.Of(m.root.actual)))
	}

	var messages []string
	for msg := range m.messages.All() {
		messages = append(messages, msg.String())
	}
	return messages, decorated
}

func (m *FailureMetadata) fail(facts ...fact.Fact) {
	m.host.Helper()
	m.report(facts)
}

func (m *FailureMetadata) failEqualityCheck(facts []fact.Fact, expected, actual string) {
	m.host.Helper()
	m.report(facts, failure.WithComparison(expected, actual))
}

func (m *FailureMetadata) report(facts []fact.Fact, opts ...failure.Option) {
	m.host.Helper()
	messages, decorated := m.decorate(facts)
	if m.cause != nil {
		opts = append(opts, failure.WithCause(m.cause))
	}
	m.strategy.Fail(failure.New(fact.Render(messages, decorated), decorated, opts...))
}

/*
Package truth provides fluent assertions for Go tests, with failure messages made of aligned facts.

	truth.AssertThat(t, actual).IsEqualTo(expected)

A failed check produces a [failure.Failure] whose message lists what was expected and what was found.

	expected: 3
	but was : 2

# Chaining

Subjects can derive other subjects from their actual value with [Subject.Check].
Each derivation is a named step, and failures of a derived subject show the path from the root value along with the root value itself.

	value of : slice.len()
	expected : 3
	but was  : 2
	slice was: [a, b]

Use [Subject.CheckNoNeedToDisplayBothValues] when the derived value already says everything about the root, which drops the root line.

# Custom subjects

A custom subject embeds [*Subject] and is created by a [Factory], which receives the [FailureMetadata] and the actual value.
Use [About] or [AssertAbout] to start a chain with a custom subject.

	type MoneySubject struct {
		*truth.Subject
		actual Money
	}

	func Moneys(m *truth.FailureMetadata, actual Money) *MoneySubject {
		return &MoneySubject{Subject: truth.NewSubject(m, actual), actual: actual}
	}

	truth.AssertAbout(t, Moneys).That(price).IsEqualTo(want)

The root label in messages is derived from the subject's type name, so a *MoneySubject root is labeled "money".
Use [WithTypeDescription] to override it.

# Strategies

What happens to a failure is decided by the [failure.Strategy] chosen when the chain starts.
[AssertThat] stops the test, [NewExpect] records every failure and reports them when the test ends, and [NewExpectFailure] captures a single failure so that assertions can be tested themselves.
*/
package truth

/*
Package fact provides the building blocks of failure messages.

A failure message is a list of facts, such as "expected: 5" and "but was: 4", optionally preceded by free-form messages.
[Render] lays these out so that they're easy to scan:

	value of         : optionalInt.get()
	expected         : 2,000
	but was          : 1,337
	outside tolerance:    42

Keys are padded so that the ':' characters line up, and numeric facts created with [Numeric] are right-aligned on their integer part.
Values that span multiple lines are written below their key, indented by four spaces.

Numbers are formatted with [FormatNumeric], which never depends on the locale.
*/
package fact

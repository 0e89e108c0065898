// Package lazy provides messages that are only formatted when they're needed.
//
// A [Message] holds a format string and its arguments.
// The only placeholder is "%s", and arguments are converted to strings when [Message.String] is called, not before.
// This matters because assertion messages are created for every check, but only rendered when a check fails.
package lazy

import (
	"strings"

	"github.com/saylorsolutions/truth/internal/repr"
	"github.com/saylorsolutions/truth/misuse"
)

const placeholder = "%s"

// Message is an immutable, lazily formatted message.
type Message struct {
	format string
	args   []any
}

// New creates a [Message], returning an error if the number of "%s" placeholders in format doesn't match the number of args.
func New(format string, args ...any) (*Message, error) {
	expected := CountPlaceholders(format)
	if expected != len(args) {
		return nil, misuse.Errorf(misuse.InvalidArgument,
			"Incorrect number of args (%d) for the given placeholders (%d) in string template:\"%s\"",
			len(args), expected, format)
	}
	return &Message{format: format, args: args}, nil
}

// Must is the same as [New], except that a mismatch panics.
func Must(format string, args ...any) *Message {
	return misuse.Must(New(format, args...))
}

// CountPlaceholders returns the number of "%s" tokens in template.
// A "%%" is not treated as an escape, so "%%s" counts as one placeholder.
func CountPlaceholders(template string) int {
	return strings.Count(template, placeholder)
}

// String formats the message.
func (m *Message) String() string {
	if m == nil {
		return ""
	}
	return Format(m.format, m.args...)
}

// Format substitutes each "%s" in template with the next argument.
// Unlike [fmt.Sprintf], a mismatch never produces an error marker: missing arguments leave the placeholder as-is,
// and extra arguments are appended in square brackets.
func Format(template string, args ...any) string {
	var (
		buf strings.Builder
		i   int
	)
	for i < len(args) {
		idx := strings.Index(template, placeholder)
		if idx < 0 {
			break
		}
		buf.WriteString(template[:idx])
		buf.WriteString(repr.Of(args[i]))
		template = template[idx+len(placeholder):]
		i++
	}
	buf.WriteString(template)
	if i < len(args) {
		buf.WriteString(" [")
		for j := i; j < len(args); j++ {
			if j > i {
				buf.WriteString(", ")
			}
			buf.WriteString(repr.Of(args[j]))
		}
		buf.WriteString("]")
	}
	return buf.String()
}

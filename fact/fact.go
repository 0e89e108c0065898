package fact

import (
	"strings"

	"github.com/saylorsolutions/truth/misuse"
)

// Fact is a single key/value line in a failure message.
// A Fact may have no value, in which case only the key is rendered.
//
// Facts are immutable, and comparable with ==.
type Fact struct {
	key      string
	value    string
	hasValue bool
	numeric  bool
}

// New creates a textual [Fact].
func New(key, value string) Fact {
	return Fact{key: key, value: value, hasValue: true}
}

// Simple creates a [Fact] with no value, used for standalone comments such as "(scale is ignored)".
func Simple(key string) Fact {
	return Fact{key: key}
}

// Numeric creates a [Fact] whose value is formatted with [FormatNumeric].
// Numeric facts are right-aligned when rendered with [Render].
//
// This panics with a [misuse.ErrInvalidArgument] if number isn't a supported numeric kind.
func Numeric(key string, number any) Fact {
	return misuse.Must(TryNumeric(key, number))
}

// TryNumeric is the same as [Numeric], but returns an error instead of panicking.
func TryNumeric(key string, number any) (Fact, error) {
	formatted, err := FormatNumeric(number)
	if err != nil {
		return Fact{}, err
	}
	return Fact{key: key, value: formatted, hasValue: true, numeric: true}, nil
}

func (f Fact) Key() string {
	return f.key
}

// Value returns the value of the Fact, and whether it has one.
func (f Fact) Value() (string, bool) {
	return f.value, f.hasValue
}

func (f Fact) IsNumeric() bool {
	return f.numeric
}

func (f Fact) multiline() bool {
	return strings.Contains(f.key, "\n") || strings.Contains(f.value, "\n")
}

func (f Fact) String() string {
	if !f.hasValue {
		return f.key
	}
	if f.multiline() {
		return f.key + ":\n" + indent(f.value)
	}
	return f.key + ": " + f.value
}

func indent(value string) string {
	return "    " + strings.ReplaceAll(value, "\n", "\n    ")
}

package fact

import (
	"strings"
	"unicode/utf8"
)

// Render creates a failure message from messages and facts.
//
// Each message is written on its own line first, then each fact in order.
// Single-line facts with a value are aligned so that their ':' characters fall in the same column,
// and numeric facts among them are right-aligned on their integer part.
// Facts with a newline in their key or value are written as the key followed by each value line indented by four spaces.
// Facts without a value are written as just the key.
//
// The result has no trailing newline.
func Render(messages []string, facts []Fact) string {
	var keyWidth, intWidth int
	for _, f := range facts {
		if !f.hasValue || f.multiline() {
			continue
		}
		keyWidth = max(keyWidth, utf8.RuneCountInString(f.key))
		if f.numeric {
			intWidth = max(intWidth, intPartWidth(f.value))
		}
	}

	lines := make([]string, 0, len(messages)+len(facts))
	lines = append(lines, messages...)
	for _, f := range facts {
		switch {
		case !f.hasValue:
			lines = append(lines, f.key)
		case f.multiline():
			lines = append(lines, f.key+":\n"+indent(f.value))
		default:
			value := f.value
			if f.numeric {
				value = strings.Repeat(" ", intWidth-intPartWidth(value)) + value
			}
			lines = append(lines, padEnd(f.key, keyWidth)+": "+value)
		}
	}
	return strings.Join(lines, "\n")
}

// intPartWidth is the width of value up to its decimal point, or the whole value if there isn't one.
func intPartWidth(value string) int {
	if idx := strings.IndexByte(value, '.'); idx >= 0 {
		return utf8.RuneCountInString(value[:idx])
	}
	return utf8.RuneCountInString(value)
}

func padEnd(s string, width int) string {
	if pad := width - utf8.RuneCountInString(s); pad > 0 {
		return s + strings.Repeat(" ", pad)
	}
	return s
}

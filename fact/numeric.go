package fact

import (
	"math"
	"math/big"
	"reflect"
	"strconv"
	"strings"

	"github.com/saylorsolutions/truth/internal/repr"
	"github.com/saylorsolutions/truth/misuse"
	"github.com/shopspring/decimal"
)

// Floats with a magnitude in this range are written without an exponent.
const (
	minPlainFloat = 1e-7
	maxPlainFloat = 1e21
)

// FormatNumeric renders a number for a numeric [Fact].
//
// Supported kinds are every signed and unsigned integer type, float32, float64, and [decimal.Decimal] (or a pointer to one).
// Integers and the integer part of floats and decimals are grouped in thousands with ',', and '.' is always the decimal point.
// Floats use the shortest representation that round-trips, in plain notation when 1e-7 <= |x| < 1e21 and exponent notation otherwise.
// Decimals keep exactly the fractional digits they were created with.
//
// [big.Int] is rejected, as is anything else not listed above.
func FormatNumeric(number any) (string, error) {
	if number == nil {
		return repr.Null, nil
	}
	switch n := number.(type) {
	case int:
		return groupInteger(strconv.FormatInt(int64(n), 10)), nil
	case int8:
		return groupInteger(strconv.FormatInt(int64(n), 10)), nil
	case int16:
		return groupInteger(strconv.FormatInt(int64(n), 10)), nil
	case int32:
		return groupInteger(strconv.FormatInt(int64(n), 10)), nil
	case int64:
		return groupInteger(strconv.FormatInt(n, 10)), nil
	case uint:
		return groupInteger(strconv.FormatUint(uint64(n), 10)), nil
	case uint8:
		return groupInteger(strconv.FormatUint(uint64(n), 10)), nil
	case uint16:
		return groupInteger(strconv.FormatUint(uint64(n), 10)), nil
	case uint32:
		return groupInteger(strconv.FormatUint(uint64(n), 10)), nil
	case uint64:
		return groupInteger(strconv.FormatUint(n, 10)), nil
	case uintptr:
		return groupInteger(strconv.FormatUint(uint64(n), 10)), nil
	case float32:
		return formatFloat(float64(n), 32), nil
	case float64:
		return formatFloat(n, 64), nil
	case decimal.Decimal:
		return formatDecimal(n), nil
	case *decimal.Decimal:
		if n == nil {
			return repr.Null, nil
		}
		return formatDecimal(*n), nil
	case big.Int, *big.Int:
		return "", misuse.Errorf(misuse.InvalidArgument,
			"big.Int is not supported for numeric facts, convert it to a decimal.Decimal: %s", repr.Of(number))
	}
	return "", misuse.Errorf(misuse.InvalidArgument,
		"value of type %s is not a supported numeric kind: %s", reflect.TypeOf(number), repr.Of(number))
}

func formatFloat(f float64, bitSize int) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	abs := math.Abs(f)
	if abs == 0 || (abs >= minPlainFloat && abs < maxPlainFloat) {
		return groupInteger(strconv.FormatFloat(f, 'f', -1, bitSize))
	}
	return groupInteger(strconv.FormatFloat(f, 'e', -1, bitSize))
}

func formatDecimal(d decimal.Decimal) string {
	if exp := d.Exponent(); exp < 0 {
		return groupInteger(d.StringFixed(-exp))
	}
	return groupInteger(d.String())
}

// groupInteger inserts thousands separators in the leading run of digits in s, after an optional sign.
// Anything after that run (a fraction or exponent) is left unchanged.
func groupInteger(s string) string {
	var sign string
	if strings.HasPrefix(s, "-") || strings.HasPrefix(s, "+") {
		sign, s = s[:1], s[1:]
	}
	end := strings.IndexFunc(s, func(r rune) bool {
		return r < '0' || r > '9'
	})
	if end < 0 {
		end = len(s)
	}
	digits, rest := s[:end], s[end:]
	if len(digits) <= 3 {
		return sign + digits + rest
	}
	var buf strings.Builder
	buf.WriteString(sign)
	lead := len(digits) % 3
	if lead == 0 {
		lead = 3
	}
	buf.WriteString(digits[:lead])
	for i := lead; i < len(digits); i += 3 {
		buf.WriteByte(',')
		buf.WriteString(digits[i : i+3])
	}
	buf.WriteString(rest)
	return buf.String()
}

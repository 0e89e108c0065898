package truth

import (
	"reflect"
	"strings"

	"github.com/google/go-cmp/cmp"
	"github.com/pmezard/go-difflib/difflib"
	"github.com/saylorsolutions/truth/fact"
	"github.com/saylorsolutions/truth/internal/repr"
)

var compareUnexported = cmp.Exporter(func(reflect.Type) bool {
	return true
})

// valuesEqual reports whether actual and expected are equal.
// Identity and nil are settled before any user-defined Equal method is consulted.
func valuesEqual(actual, expected any) bool {
	if sameInstance(actual, expected) {
		return true
	}
	actualNil, expectedNil := repr.IsNil(actual), repr.IsNil(expected)
	if actualNil || expectedNil {
		return actualNil && expectedNil
	}
	return cmp.Equal(actual, expected, compareUnexported)
}

// sameInstance reports whether a and b refer to the same thing.
// Pointers, maps, and channels are the same instance if they have the same type and address.
// Slices must additionally have the same length.
// Other comparable values are the same instance if they have the same type and are ==.
func sameInstance(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ra, rb := reflect.ValueOf(a), reflect.ValueOf(b)
	if ra.Type() != rb.Type() {
		return false
	}
	switch ra.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.UnsafePointer:
		return ra.Pointer() == rb.Pointer()
	case reflect.Slice:
		return ra.Pointer() == rb.Pointer() && ra.Len() == rb.Len()
	case reflect.Func:
		return false
	}
	if !ra.Comparable() || !rb.Comparable() {
		return false
	}
	return a == b
}

// disambiguate returns facts explaining a failed comparison between values that have the same string representation.
// Nil is returned when the string representations differ.
func disambiguate(key string, expected, actual any, equal bool) []fact.Fact {
	expectedStr, actualStr := repr.Of(expected), repr.Of(actual)
	if expectedStr != actualStr {
		return nil
	}
	expectedType, actualType := repr.TypeName(expected), repr.TypeName(actual)
	if expectedType == actualType {
		desc := "(non-equal instance of same class with same string representation)"
		if equal {
			desc = "(different but equal instance of same class with same string representation)"
		}
		return []fact.Fact{
			fact.New(key, expectedStr),
			fact.New("but was", desc),
		}
	}
	return []fact.Fact{
		fact.New(key, expectedStr),
		fact.New("an instance of", expectedType),
		fact.New("but was", "(non-equal value with same string representation)"),
		fact.New("an instance of", actualType),
	}
}

// comparisonFacts describes why actual isn't equal to expected.
func comparisonFacts(expected, actual any) []fact.Fact {
	if facts := disambiguate("expected", expected, actual, false); facts != nil {
		return facts
	}
	expectedStr, actualStr := repr.Of(expected), repr.Of(actual)
	if strings.Contains(expectedStr, "\n") && strings.Contains(actualStr, "\n") {
		if diff := unifiedDiff(expectedStr, actualStr); len(diff) > 0 {
			return []fact.Fact{fact.New("diff (-expected +actual)", diff)}
		}
	}
	return []fact.Fact{
		fact.New("expected", expectedStr),
		fact.New("but was", actualStr),
	}
}

func unifiedDiff(expected, actual string) string {
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(expected),
		B:        difflib.SplitLines(actual),
		FromFile: "expected",
		ToFile:   "actual",
		Context:  2,
	})
	if err != nil {
		return ""
	}
	return strings.TrimRight(diff, "\n")
}

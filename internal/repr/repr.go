// Package repr renders values the way failure messages show them.
package repr

import (
	"fmt"
	"reflect"
	"strings"
)

const (
	Null          = "null"
	NullReference = "(null reference)"
)

// IsNil reports whether v is an untyped nil, or a typed nil held in an interface.
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}

// Of returns the string form of v used in facts.
func Of(v any) string {
	if IsNil(v) {
		return Null
	}
	switch val := v.(type) {
	case string:
		return val
	case error:
		return val.Error()
	case fmt.Stringer:
		return val.String()
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		parts := make([]string, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			parts[i] = Of(rv.Index(i).Interface())
		}
		return "[" + strings.Join(parts, ", ") + "]"
	default:
		return fmt.Sprint(v)
	}
}

// TypeName returns the dynamic type of v, or [NullReference] for an untyped nil.
func TypeName(v any) string {
	if v == nil {
		return NullReference
	}
	return reflect.TypeOf(v).String()
}

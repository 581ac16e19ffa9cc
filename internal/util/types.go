package util

import "reflect"

// TypeName is the diagnostic name of T, e.g. "lxns.Notes" or "*wrapperspb.BoolValue".
func TypeName[T any]() string {
	return reflect.TypeFor[T]().String()
}

// IsNil reports whether v is nil or a typed nil (pointer, map, slice,
// interface, chan, func).
func IsNil(v any) bool {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return true
	}
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Chan, reflect.Func:
		return rv.IsNil()
	}
	return false
}

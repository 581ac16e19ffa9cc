package codec

import "reflect"

// nullable reports ErrNull unless V can represent an absent value.
func nullable[V any]() error {
	switch reflect.TypeFor[V]().Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice:
		return nil
	}
	return ErrNull
}

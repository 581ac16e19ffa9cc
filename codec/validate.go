package codec

import (
	"reflect"

	"github.com/go-playground/validator/v10"
)

// validate caches struct metadata per type and is safe for concurrent use.
var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks `validate:"..."` struct tags on v (or the struct v points to).
// Non-struct values and nil pointers pass.
func Validate(v any) error {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil
	}
	return validate.Struct(rv.Interface())
}

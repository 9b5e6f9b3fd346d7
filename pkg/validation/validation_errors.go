package validation

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// MissingFields returns the names of fields that failed a "required" check,
// in struct declaration order. It returns nil for any other kind of error.
func MissingFields(err error) []string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil
	}

	var fields []string
	for _, e := range validationErrors {
		if e.Tag() == "required" {
			fields = append(fields, e.Field())
		}
	}
	return fields
}

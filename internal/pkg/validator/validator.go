// Package validator wraps a single validator instance shared by all
// handlers. Request DTOs carry `validate` tags for coordinate ranges and
// required fields.
package validator

import (
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Validate checks a request DTO against its `validate` tags.
func Validate(s interface{}) error {
	return validate.Struct(s)
}

// GetValidator - expose the validator for custom configuration
func GetValidator() *validator.Validate {
	return validate
}

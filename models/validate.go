package models

import (
	"github.com/go-playground/validator/v10"
)

// validate reads the same `binding` tags Gin uses, so storage-level
// validation and request binding share one rule set.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.SetTagName("binding")
	return v
}

// ValidateInput checks an input struct against its binding tags.
// Returns a validator.ValidationErrors on failure.
func ValidateInput(input interface{}) error {
	return validate.Struct(input)
}

package api

import (
	"errors"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/ksalau/learnflow-backend/errs"
)

// validationError converts a validator failure into a 400 ApiErr naming the
// offending payload field.
func validationError(err error) *errs.ApiErr {
	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) || len(fieldErrors) == 0 {
		return errs.NewBadRequestError("invalid request payload")
	}

	field := jsonFieldName(fieldErrors[0].Field())
	switch fieldErrors[0].Tag() {
	case "required":
		return errs.NewValidationError(field, field+" is required")
	case "email":
		return errs.NewValidationError(field, field+" must be a valid email address")
	default:
		return errs.NewValidationError(field, field+" is invalid")
	}
}

// jsonFieldName lowercases the first rune of a Go field name to match the
// payload's camelCase keys.
func jsonFieldName(name string) string {
	if name == "" {
		return name
	}
	runes := []rune(name)
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}

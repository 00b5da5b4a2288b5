package utils

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validate is the shared validator instance for request DTOs.
var Validate = validator.New()

// FormatValidationErrors flattens validator field errors into a field→reason
// map suitable for the response Errors payload.
func FormatValidationErrors(err error) map[string]string {
	fields := make(map[string]string)

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		fields["request"] = err.Error()
		return fields
	}

	for _, fe := range validationErrors {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			fields[field] = "is required"
		case "email":
			fields[field] = "must be a valid email address"
		case "min":
			fields[field] = fmt.Sprintf("must be at least %s characters", fe.Param())
		case "max":
			fields[field] = fmt.Sprintf("must be at most %s characters", fe.Param())
		case "oneof":
			fields[field] = fmt.Sprintf("must be one of: %s", fe.Param())
		default:
			fields[field] = fmt.Sprintf("failed %s validation", fe.Tag())
		}
	}
	return fields
}

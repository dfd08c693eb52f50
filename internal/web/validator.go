package web

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// FieldError is one user-facing form validation failure.
type FieldError struct {
	Field   string
	Message string
}

// validateForm runs struct validation and translates the failures into
// messages fit for inline display next to the form fields.
func validateForm(s any) []FieldError {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var out []FieldError
	for _, fe := range err.(validator.ValidationErrors) {
		field := fe.Field()
		var message string
		switch fe.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", field)
		case "max":
			message = fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
		default:
			message = fmt.Sprintf("%s is invalid", field)
		}
		out = append(out, FieldError{
			Field:   strings.ToLower(field),
			Message: message,
		})
	}
	return out
}

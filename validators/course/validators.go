package courseValidator

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// validationErrors flattens validator.ValidationErrors into the
// field->message map used by middleware.ValidationErrorResponse.
func validationErrors(err error) map[string]string {
	errors := make(map[string]string)

	vErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		errors["body"] = "Invalid request body!"
		return errors
	}

	for _, fe := range vErrs {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			errors[field] = fmt.Sprintf("%s is required!", field)
		case "min":
			errors[field] = fmt.Sprintf("%s must be at least %s!", field, fe.Param())
		case "max":
			errors[field] = fmt.Sprintf("%s must be at most %s!", field, fe.Param())
		default:
			errors[field] = fmt.Sprintf("%s is invalid!", field)
		}
	}

	return errors
}

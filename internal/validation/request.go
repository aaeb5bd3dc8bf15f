package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/AlenaMolokova/masterdata/internal/utils"
	"github.com/go-playground/validator/v10"
)

var structValidator = newStructValidator()

func newStructValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidateRequest checks the validate tags of a decoded request body.
// It returns nil when the request is valid.
func ValidateRequest(req any) []utils.FieldError {
	err := structValidator.Struct(req)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []utils.FieldError{{Field: "", Message: err.Error()}}
	}

	details := make([]utils.FieldError, 0, len(validationErrors))
	for _, e := range validationErrors {
		details = append(details, utils.FieldError{
			Field:   e.Field(),
			Message: fieldMessage(e),
		})
	}
	return details
}

func fieldMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "max":
		return fmt.Sprintf("must be at most %s characters", e.Param())
	case "min":
		return fmt.Sprintf("must be at least %s", e.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", e.Param())
	case "oneof":
		return fmt.Sprintf("must be one of [%s]", e.Param())
	case "email":
		return "must be a valid email address"
	default:
		return fmt.Sprintf("failed on %s", e.Tag())
	}
}

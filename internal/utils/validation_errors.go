// internal/utils/validation_errors.go
package utils

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// ====================================================================================
// Validator
// ====================================================================================

// NewValidator returns a validator with the extra tags the models use ("notblank").
// Field errors are reported under their JSON names.
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	// RegisterValidation only fails on an empty tag or nil func.
	_ = v.RegisterValidation("notblank", validators.NotBlank)
	return v
}

// ====================================================================================
// Formatting
// ====================================================================================

// FormatValidationErrors turns validator.ValidationErrors into field -> message.
// Any other error yields a single generic "error" entry.
func FormatValidationErrors(err error) map[string]string {
	errorsMap := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		for _, fieldErr := range validationErrors {
			errorsMap[fieldErr.Field()] = fieldMessage(fieldErr)
		}
	} else {
		errorsMap["error"] = "Invalid input data or incorrect format."
	}

	return errorsMap
}

// JoinValidationErrors renders a validation error as one line for display,
// fields in alphabetical order so the message is stable.
func JoinValidationErrors(err error) string {
	m := FormatValidationErrors(err)
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, m[k])
	}
	return strings.Join(parts, " ")
}

func fieldMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required", "notblank":
		return fmt.Sprintf("%s is required.", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address.", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters.", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters.", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s.", field, fe.Param())
	default:
		return fmt.Sprintf("Validation for field '%s' failed on the '%s' rule.", field, fe.Tag())
	}
}

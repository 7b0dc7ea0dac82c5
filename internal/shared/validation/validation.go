// Package validation checks request bodies before they are sent.
package validation

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"

	"github.com/onlyfix/admin/internal/shared/errors"
)

// MinCarYear is the oldest model year accepted for a car.
const MinCarYear = 1900

var validate *validator.Validate

// now is swapped in tests.
var now = time.Now

// MaxCarYear is the newest model year accepted for a car: two years ahead of
// the current one.
func MaxCarYear() int {
	return now().Year() + 2
}

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterValidation("notblank", validators.NotBlank)
	validate.RegisterValidation("caryear", func(fl validator.FieldLevel) bool {
		year := int(fl.Field().Int())
		return year >= MinCarYear && year <= MaxCarYear()
	})

	// Use JSON tag names for validation errors
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// ValidateStruct returns a 422-classified APIError keyed by JSON field name,
// the same shape the backend uses for its own validation failures.
func ValidateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return fmt.Errorf("validate request: %w", err)
	}

	fields := make(map[string][]string, len(validationErrors))
	for _, fieldError := range validationErrors {
		fields[fieldError.Field()] = append(fields[fieldError.Field()], fieldMessage(fieldError))
	}

	return errors.NewValidationError("The given data was invalid.", fields)
}

func fieldMessage(fe validator.FieldError) string {
	field := strings.ReplaceAll(fe.Field(), "_", " ")
	param := fe.Param()

	switch fe.Tag() {
	case "required", "notblank":
		return fmt.Sprintf("The %s field is required.", field)
	case "caryear":
		return fmt.Sprintf("The %s must be between %d and %d.", field, MinCarYear, MaxCarYear())
	case "email":
		return fmt.Sprintf("The %s must be a valid email address.", field)
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("The %s must be at least %s characters.", field, param)
		}
		return fmt.Sprintf("The %s must be at least %s.", field, param)
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("The %s may not be greater than %s characters.", field, param)
		}
		return fmt.Sprintf("The %s may not be greater than %s.", field, param)
	case "gt":
		return fmt.Sprintf("The %s must be greater than %s.", field, param)
	case "gte":
		return fmt.Sprintf("The %s must be at least %s.", field, param)
	case "lte":
		return fmt.Sprintf("The %s may not be greater than %s.", field, param)
	case "oneof":
		return fmt.Sprintf("The selected %s is invalid.", field)
	case "eqfield":
		return fmt.Sprintf("The %s must match %s.", field, param)
	default:
		return fmt.Sprintf("The %s field failed the %s rule.", field, fe.Tag())
	}
}

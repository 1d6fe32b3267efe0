package domain

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})
	return v
}

// Validate checks the `validate` struct tags of v and reports the first failing
// field as a validation error named after its JSON key.
func Validate(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return NewError(ErrorKindValidation, "invalid input", err)
	}

	fe := fieldErrs[0]
	switch fe.Tag() {
	case "required":
		return Validationf("%s is required", fe.Field())
	case "email":
		return Validationf("%s must be a valid email address", fe.Field())
	case "max":
		return Validationf("%s must be at most %s characters", fe.Field(), fe.Param())
	case "min", "gte":
		return Validationf("%s must be at least %s", fe.Field(), fe.Param())
	case "lte":
		return Validationf("%s must be at most %s", fe.Field(), fe.Param())
	case "oneof":
		return Validationf("%s must be one of [%s]", fe.Field(), fe.Param())
	default:
		return Validationf("%s is invalid", fe.Field())
	}
}

// Package validation contains the logic for validating
// configuration values.
//
// It uses the `validator` library to enforce rules (like
// required fields or minimum durations) defined in struct tags
// and turns the failures into an errs.KindInvalid error with one
// FieldError per offending key.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/deppfellow/chinook/internal/errs"
	"github.com/go-playground/validator/v10"
)

// Validatable is implemented by types that know how to validate themselves.
//
// Typical pattern:
// - Tag the fields (`validate:"required"`)
// - Implement Validate() error that calls Struct, plus any rule tags cannot express
type Validatable interface {
	Validate() error
}

var validate = newValidator()

// newValidator reports fields by their koanf key, so "ConnectTimeout"
// shows up as "connect_timeout".
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		if name := f.Tag.Get("koanf"); name != "" {
			return name
		}
		return f.Name
	})
	return v
}

// Struct validates the tags of s.
func Struct(s any) error {
	return validate.Struct(s)
}

// Check runs v.Validate and converts a failure into an errs.KindInvalid error.
func Check(v Validatable) error {
	err := v.Validate()
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return errs.NewInvalidError(err.Error(), nil, nil, err)
	}
	fields := fieldErrors(validationErrors)
	problems := make([]string, len(fields))
	for i, f := range fields {
		problems[i] = f.Field + " " + f.Error
	}
	return errs.NewInvalidError("Validation failed: "+strings.Join(problems, ", "), nil, fields, err)
}

func fieldErrors(validationErrors validator.ValidationErrors) []errs.FieldError {
	out := make([]errs.FieldError, 0, len(validationErrors))
	for _, err := range validationErrors {
		var msg string

		switch err.Tag() {
		case "required":
			msg = "is required"

		case "min":
			// strings: length, numbers: value
			if err.Kind() == reflect.String {
				msg = fmt.Sprintf("must be at least %s characters", err.Param())
			} else {
				msg = fmt.Sprintf("must be at least %s", err.Param())
			}

		case "max":
			if err.Kind() == reflect.String {
				msg = fmt.Sprintf("must not exceed %s characters", err.Param())
			} else {
				msg = fmt.Sprintf("must not exceed %s", err.Param())
			}

		case "oneof":
			msg = fmt.Sprintf("must be one of: %s", err.Param())

		default:
			if err.Param() != "" {
				msg = fmt.Sprintf("%s:%s", err.Tag(), err.Param())
			} else {
				msg = err.Tag()
			}
		}

		out = append(out, errs.FieldError{
			Field: err.Field(),
			Error: msg,
		})
	}
	return out
}

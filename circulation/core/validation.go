package core

import (
	"errors"
	"reflect"

	"github.com/go-playground/validator/v10"

	"github.com/AntonStoeckl/library-circulation-go/nationalid"
)

const (
	tagNationalIDFormat     = "nationalid_format"
	tagNationalIDCheckDigit = "nationalid_checkdigit"
)

//nolint:gochecknoglobals // validator caches struct metadata, one instance per process
var fieldValidator = newFieldValidator()

// newFieldValidator configures go-playground/validator for the entity field structs.
// Field names in errors come from the `field` struct tag.
func newFieldValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		if name := fld.Tag.Get("field"); name != "" {
			return name
		}

		return fld.Name
	})

	// RegisterValidation only fails for an empty tag or a nil func.
	_ = v.RegisterValidation(tagNationalIDFormat, func(fl validator.FieldLevel) bool {
		return nationalid.ValidateFormat(fl.Field().String())
	})

	_ = v.RegisterValidation(tagNationalIDCheckDigit, func(fl validator.FieldLevel) bool {
		return nationalid.ValidateCheckDigit(fl.Field().String())
	})

	return v
}

// validateFields validates a tagged field struct and reports the first violated field.
func validateFields(entity string, fields any) error {
	err := fieldValidator.Struct(fields)
	if err == nil {
		return nil
	}

	return toValidationError(entity, "", err)
}

// validateValue validates a single value against a tag, as the setters do.
func validateValue(entity string, field string, value any, tag string) error {
	err := fieldValidator.Var(value, tag)
	if err == nil {
		return nil
	}

	return toValidationError(entity, field, err)
}

func toValidationError(entity string, field string, err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return &ValidationError{Entity: entity, Field: field, Reason: err.Error()}
	}

	first := fieldErrs[0]
	if field == "" {
		field = first.Field()
	}

	return &ValidationError{Entity: entity, Field: field, Reason: friendlyReason(first)}
}

func friendlyReason(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "gt":
		return "must be greater than " + e.Param()
	case "gte":
		return "must be greater than or equal to " + e.Param()
	case "ltefield":
		return "must not exceed " + fieldLabel(e.Param())
	case "gtefield":
		return "must not be less than " + fieldLabel(e.Param())
	case "oneof":
		return "must be one of: " + e.Param()
	case tagNationalIDFormat:
		return "has an invalid format"
	case tagNationalIDCheckDigit:
		return "has an invalid check digit"
	default:
		return "is invalid"
	}
}

// fieldLabel turns the Go field name used as a cross-field param into readable words.
func fieldLabel(goName string) string {
	switch goName {
	case "TotalCopies":
		return "total copies"
	case "AvailableCopies":
		return "available copies"
	default:
		return goName
	}
}

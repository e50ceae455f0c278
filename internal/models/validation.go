package models

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// MissingFieldsMessage is returned to callers when a required form field is absent or empty
const MissingFieldsMessage = "Missing required fields: name, email, and problem are required."

// ErrValidation is the sentinel matched by every ValidationError
var ErrValidation = errors.New("validation error")

// ValidationError represents a failed validation with the offending fields
type ValidationError struct {
	Fields  []string `json:"fields"`
	Message string   `json:"message"`
}

// Error implements the error interface
func (ve *ValidationError) Error() string {
	if len(ve.Fields) == 0 {
		return ve.Message
	}
	return ve.Message + " (invalid: " + strings.Join(ve.Fields, ", ") + ")"
}

// Unwrap lets errors.Is match ErrValidation
func (ve *ValidationError) Unwrap() error {
	return ErrValidation
}

// NewValidator returns a validator that reports fields by their JSON names
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidateStruct runs struct validation and converts failures into a ValidationError
func ValidateStruct(v *validator.Validate, value interface{}) error {
	err := v.Struct(value)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	fields := make([]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		fields = append(fields, fieldErr.Field())
	}

	return &ValidationError{
		Fields:  fields,
		Message: MissingFieldsMessage,
	}
}

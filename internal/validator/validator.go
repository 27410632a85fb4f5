package validator

import (
	"errors"

	"github.com/Behyna/cc5mock/internal/metrics"
	"github.com/go-playground/validator/v10"
)

type Error struct {
	Error       bool
	FailedField string
	Tag         string
	Value       interface{}
}

type IXValidator interface {
	Validate(data interface{}) []Error
}

type XValidator struct {
	validator *validator.Validate
	metrics   *metrics.Metrics
}

func NewValidate() *validator.Validate {
	return validator.New(validator.WithRequiredStructEnabled())
}

func NewXValidator(validator *validator.Validate, metrics *metrics.Metrics) IXValidator {
	return &XValidator{
		validator: validator,
		metrics:   metrics,
	}
}

func (x XValidator) Validate(data interface{}) []Error {
	var validationErrors []Error

	errs := x.validator.Struct(data)
	if errs == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(errs, &fieldErrs) {
		return []Error{{Error: true, Tag: "invalid"}}
	}

	for _, err := range fieldErrs {
		var elem Error
		elem.FailedField = err.Field()
		elem.Tag = err.Tag()
		elem.Value = err.Value()
		elem.Error = true
		validationErrors = append(validationErrors, elem)

		if x.metrics != nil {
			x.metrics.RecordValidationError(elem.FailedField, elem.Tag)
		}
	}

	return validationErrors
}

// HasField reports whether errs contains a failure for field.
func HasField(errs []Error, field string) bool {
	for _, err := range errs {
		if err.Error && err.FailedField == field {
			return true
		}
	}
	return false
}

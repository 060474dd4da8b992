// Package validator adapts go-playground/validator to echo.
package validator

import (
	"reflect"
	"strings"

	"storelocator/internal/domain/query"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// FieldError describes one rejected request field.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Param string `json:"param,omitempty"`
}

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validate *validator.Validate
}

// New creates a validator that reports fields by their query/json names
// and knows the "sortkey" rule.
func New() *CustomValidator {
	validate := validator.New(validator.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		for _, tag := range []string{"query", "param", "json"} {
			name := strings.SplitN(field.Tag.Get(tag), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}

		return field.Name
	})

	// Registration only fails for empty tags or nil functions.
	_ = validate.RegisterValidation("sortkey", func(fl validator.FieldLevel) bool {
		_, err := query.ParseSortKey(fl.Field().String())

		return err == nil
	})

	return &CustomValidator{validate: validate}
}

// Validate validates a struct according to its validate tags.
func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validate.Struct(i); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// Details lists the failed fields of a validation error, or nil for other errors.
func Details(err error) []FieldError {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return nil
	}

	details := make([]FieldError, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		details = append(details, FieldError{
			Field: fieldErr.Field(),
			Rule:  fieldErr.Tag(),
			Param: fieldErr.Param(),
		})
	}

	return details
}

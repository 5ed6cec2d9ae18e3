// Package validation adapts go-playground/validator to the domain error types.
package validation

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/grachmannico95/verbs-service/internal/domain"
)

type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})
	return &Validator{validate: v}
}

// Validate implements echo.Validator.
func (v *Validator) Validate(i interface{}) error {
	return v.Row(i, 0)
}

// Row validates i and reports the first failing field as a
// *domain.ValidationError tagged with the 1-based import row.
func (v *Validator) Row(i interface{}, row int) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return &domain.ValidationError{
			Row:   row,
			Field: fe.Field(),
			Tag:   fe.Tag(),
			Err:   err,
		}
	}
	return err
}

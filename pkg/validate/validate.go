// Package validate wraps go-playground/validator to turn struct tag
// failures into the human-readable, per-field message list the write
// operations report. Every failing field contributes a message; nothing
// stops at the first error.
package validate

import (
	"fmt"
	"reflect"

	"github.com/go-playground/validator/v10"
)

type Validator struct {
	v *validator.Validate
}

func New() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		if label := fld.Tag.Get("label"); label != "" {
			return label
		}
		return fld.Name
	})
	return &Validator{v: v}
}

// Messages validates s and returns one message per failing field, in
// declaration order. An empty slice means s is valid.
func (vd *Validator) Messages(s any) []string {
	err := vd.v.Struct(s)
	if err == nil {
		return nil
	}
	vErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{err.Error()}
	}
	msgs := make([]string, 0, len(vErrs))
	for _, fe := range vErrs {
		msgs = append(msgs, message(fe))
	}
	return msgs
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	case "email":
		return "Please provide a valid email address"
	default:
		return fe.Field() + " is invalid"
	}
}

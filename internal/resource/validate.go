package resource

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator checks create requests against their `validate` tags.
type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	return &Validator{validate: validator.New()}
}

// Required validates req and, on any failure, returns a *ValidationError
// naming every required field of the request type in declaration order.
func (v *Validator) Required(req any) error {
	err := v.validate.Struct(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return &ValidationError{Fields: RequiredFields(req)}
	}
	return fmt.Errorf("%w: %v", ErrInvalidInput, err)
}

// RequiredFields lists the JSON names of the fields tagged `validate:"required"`.
func RequiredFields(req any) []string {
	t := reflect.TypeOf(req)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	var fields []string
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !hasRule(f.Tag.Get("validate"), "required") {
			continue
		}
		name := strings.Split(f.Tag.Get("json"), ",")[0]
		if name == "" {
			name = f.Name
		}
		fields = append(fields, name)
	}
	return fields
}

func hasRule(tag, rule string) bool {
	for _, r := range strings.Split(tag, ",") {
		if r == rule {
			return true
		}
	}
	return false
}

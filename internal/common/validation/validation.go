// Package validation wraps go-playground/validator and turns its errors into
// per-field messages that views can show next to the inputs.
package validation

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type FieldErrors []FieldError

// For returns the first message recorded for field, or "".
func (fe FieldErrors) For(field string) string {
	for _, e := range fe {
		if e.Field == field {
			return e.Message
		}
	}
	return ""
}

func (fe FieldErrors) Has(field string) bool { return fe.For(field) != "" }

func (fe FieldErrors) Error() string {
	parts := make([]string, 0, len(fe))
	for _, e := range fe {
		parts = append(parts, e.Field+": "+e.Message)
	}
	return strings.Join(parts, "; ")
}

var ccExpiration = regexp.MustCompile(`^(0[1-9]|1[0-2])/([2-9][0-9])$`)

type Validator struct {
	v        *validator.Validate
	messages map[string]string // "Struct.Field.tag" -> message
}

func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("ccexpiration", func(fl validator.FieldLevel) bool {
		return ccExpiration.MatchString(fl.Field().String())
	})
	return &Validator{v: v, messages: map[string]string{}}
}

// Message overrides the text reported when tag fails on field of the given struct.
func (val *Validator) Message(structName, field, tag, msg string) *Validator {
	val.messages[structName+"."+field+"."+tag] = msg
	return val
}

// Check validates s and returns nil when every rule passes.
func (val *Validator) Check(s any) (FieldErrors, error) {
	err := val.v.Struct(s)
	if err == nil {
		return nil, nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil, fmt.Errorf("validate: %w", err)
	}

	out := make(FieldErrors, 0, len(verrs))
	for _, fe := range verrs {
		field := topField(fe.StructNamespace())
		if out.Has(field) {
			continue
		}
		out = append(out, FieldError{Field: field, Message: val.message(fe, field)})
	}
	return out, nil
}

func (val *Validator) message(fe validator.FieldError, field string) string {
	structName := strings.SplitN(fe.StructNamespace(), ".", 2)[0]
	if m, ok := val.messages[structName+"."+field+"."+fe.Tag()]; ok {
		return m
	}
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "len":
		return fmt.Sprintf("%s must be exactly %s characters", field, fe.Param())
	case "eqfield":
		return fmt.Sprintf("%s must match %s", field, fe.Param())
	default:
		return field + " is invalid"
	}
}

// topField maps "DesignForm.Ingredients[0]" to "Ingredients".
func topField(ns string) string {
	parts := strings.Split(ns, ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	f := parts[0]
	if i := strings.IndexByte(f, '['); i >= 0 {
		f = f[:i]
	}
	return f
}

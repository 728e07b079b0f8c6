// Package validation wraps go-playground/validator with the user-facing
// messages of the public forms.
package validation

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// GetValidator returns the shared validator instance.  Field names in
// errors are taken from json tags so messages can be keyed by them.
func GetValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return validate
}

// Error lists every violation found in one payload.
type Error struct {
	Messages []string
}

// Error joins the messages with ", ", which is what clients display.
func (e *Error) Error() string {
	return strings.Join(e.Messages, ", ")
}

// messageFunc maps a failed field/tag pair to its display message.  An
// empty result falls back to a generic message.
type messageFunc func(field, tag string) string

// validateStruct runs the validator and translates failures through msg.
// It returns nil or an *Error.
func validateStruct(s any, msg messageFunc) error {
	err := GetValidator().Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return &Error{Messages: []string{err.Error()}}
	}
	out := &Error{Messages: make([]string, 0, len(verrs))}
	for _, fe := range verrs {
		m := msg(fe.Field(), fe.Tag())
		if m == "" {
			m = fe.Field() + " is invalid"
		}
		out.Messages = append(out.Messages, m)
	}
	return out
}

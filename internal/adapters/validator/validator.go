// Package validator checks Bot API parameters against their struct tags before they are sent.
package validator

import (
	"reflect"
	"regexp"

	"github.com/go-playground/validator/v10"
	"github.com/go-telegram/bot/models"
)

// commands are 1-32 lowercase letters, digits and underscores, optionally written with the leading slash.
var commandPattern = regexp.MustCompile(`^/?[a-z0-9_]{1,32}$`)

type Validator struct {
	v *validator.Validate
}

func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	_ = v.RegisterValidation("botcommand", func(fl validator.FieldLevel) bool {
		return commandPattern.MatchString(fl.Field().String())
	})
	v.RegisterStructValidationMapRules(map[string]string{
		"Command":     "botcommand",
		"Description": "required,max=256",
	}, models.BotCommand{})

	return &Validator{v: v}
}

// Validate checks a struct or a pointer to one. Nil pointers and non-struct values pass. The returned
// error is a validator.ValidationErrors listing every failed field.
func (val *Validator) Validate(s any) error {
	if s == nil {
		return nil
	}

	rv := reflect.ValueOf(s)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil
	}

	return val.v.Struct(s)
}

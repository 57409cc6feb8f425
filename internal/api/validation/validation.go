// Package validation validates API request models and renders failures as
// RFC7807 field errors.
package validation

import (
	"errors"
	"reflect"
	"strings"
	"unicode"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"

	"github.com/homestash/homestash/internal/api/models"
	"github.com/homestash/homestash/internal/wfh"
)

// Field error codes keyed by validation tag.
var codes = map[string]string{
	"required": "REQUIRED",
	"min":      "TOO_SMALL",
	"max":      "TOO_LARGE",
	"clock":    "INVALID_TIME",
}

// Validator validates structs tagged with `validate`.
type Validator struct {
	validate   *validator.Validate
	translator ut.Translator
}

// New creates a Validator with English messages.
func New() (*Validator, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonName)

	if err := validate.RegisterValidation("clock", func(fl validator.FieldLevel) bool {
		return wfh.IsClock(fl.Field().String())
	}); err != nil {
		return nil, err
	}

	english := en.New()
	uni := ut.New(english, english)
	trans, _ := uni.GetTranslator("en")
	if err := en_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	overrides := []struct {
		tag  string
		text string
		arg  func(fe validator.FieldError) string
	}{
		{tag: "required", text: "{0} is required", arg: func(fe validator.FieldError) string { return Label(fe.Field()) }},
		{tag: "min", text: "Must be {0} or more", arg: validator.FieldError.Param},
		{tag: "max", text: "Must be {0} or less", arg: validator.FieldError.Param},
		{tag: "clock", text: "{0} must be a valid time (HH:MM)", arg: func(fe validator.FieldError) string { return Label(fe.Field()) }},
	}
	for _, o := range overrides {
		err := validate.RegisterTranslation(o.tag, trans,
			func(t ut.Translator) error {
				return t.Add(o.tag, o.text, true)
			},
			func(t ut.Translator, fe validator.FieldError) string {
				msg, err := t.T(o.tag, o.arg(fe))
				if err != nil {
					return fe.Error()
				}
				return msg
			},
		)
		if err != nil {
			return nil, err
		}
	}

	return &Validator{validate: validate, translator: trans}, nil
}

// Struct validates s and returns one field error per failing field.
// A nil result means s is valid.
func (v *Validator) Struct(s interface{}) []models.FieldError {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []models.FieldError{{Field: "body", Message: err.Error(), Code: "INVALID"}}
	}

	fieldErrors := make([]models.FieldError, 0, len(validationErrors))
	for _, fe := range validationErrors {
		code, ok := codes[fe.Tag()]
		if !ok {
			code = "INVALID"
		}
		fieldErrors = append(fieldErrors, models.FieldError{
			Field:   fe.Field(),
			Message: fe.Translate(v.translator),
			Code:    code,
		})
	}
	return fieldErrors
}

// Label turns a camelCase field name into a title such as "Time In".
func Label(field string) string {
	var b strings.Builder
	for i, r := range field {
		switch {
		case i == 0:
			b.WriteRune(unicode.ToUpper(r))
		case unicode.IsUpper(r):
			b.WriteRune(' ')
			b.WriteRune(r)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func jsonName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}

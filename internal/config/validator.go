package config

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
)

// newValidator builds the struct validator for loaded configuration with an
// English translator, so validation failures read as messages about the YAML
// keys users actually write (via the mapstructure tag) rather than Go field
// names.
func newValidator() (*validator.Validate, ut.Translator, error) {
	validate := validator.New()

	enLocale := en.New()
	universalTranslator := ut.New(enLocale, enLocale)
	translator, _ := universalTranslator.GetTranslator("en")
	if err := enTranslations.RegisterDefaultTranslations(validate, translator); err != nil {
		return nil, nil, fmt.Errorf("enTranslations.RegisterDefaultTranslations > %w", err)
	}

	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		tag, _, _ := strings.Cut(field.Tag.Get("mapstructure"), ",")
		if tag == "-" {
			return ""
		}
		return tag
	})

	return validate, translator, nil
}

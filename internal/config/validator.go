package config

import (
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
)

// customRule is a validation tag registered on top of the validator built-ins.
type customRule struct {
	tag     string
	message string
	fn      validator.Func
}

var customRules = []customRule{
	{tag: "file", message: "{0} must be an existing and readable file", fn: isReadableFile},
}

// newValidator returns a validator that reports fields by their mapstructure key
// and translates errors into English.
func newValidator() (*validator.Validate, ut.Translator, error) {
	validate := validator.New()

	enLocale := en.New()
	trans, _ := ut.New(enLocale, enLocale).GetTranslator("en")
	if err := enTranslations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, nil, fmt.Errorf("enTranslations.RegisterDefaultTranslations > %w", err)
	}
	validate.RegisterTagNameFunc(mapstructureName)

	for _, rule := range customRules {
		if err := validate.RegisterValidation(rule.tag, rule.fn); err != nil {
			return nil, nil, fmt.Errorf("register validation %s > %w", rule.tag, err)
		}
		if err := validate.RegisterTranslation(rule.tag, trans, registerMessage(rule.tag, rule.message), translateNamespace(rule.tag)); err != nil {
			return nil, nil, fmt.Errorf("register translation %s > %w", rule.tag, err)
		}
	}
	return validate, trans, nil
}

func mapstructureName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("mapstructure"), ",")
	if name == "-" {
		return ""
	}
	return name
}

func registerMessage(tag, message string) validator.RegisterTranslationsFunc {
	return func(trans ut.Translator) error {
		return trans.Add(tag, message, true)
	}
}

// translateNamespace names the field by its full config key, e.g. templates.quiz_sheet_template.
func translateNamespace(tag string) validator.TranslationFunc {
	return func(trans ut.Translator, fe validator.FieldError) string {
		message, _ := trans.T(tag, strings.TrimPrefix(fe.Namespace(), "Config."))
		return message
	}
}

func isReadableFile(fl validator.FieldLevel) bool {
	path := fl.Field().String()
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return false
	}
	// owner read bit
	return info.Mode().Perm()&0o400 != 0
}

// expandHome replaces a leading $HOME or ~ with the user's home directory.
func expandHome(path string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	switch {
	case strings.HasPrefix(path, "$HOME"):
		return home + strings.TrimPrefix(path, "$HOME")
	case path == "~" || strings.HasPrefix(path, "~/"):
		return home + strings.TrimPrefix(path, "~")
	}
	return path
}

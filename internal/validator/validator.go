package validator

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	govalidator "github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

var (
	// validate checks single form values against rule tags.
	validate *govalidator.Validate
	// trans is the singleton English translator for validation errors.
	trans ut.Translator
	once  sync.Once
)

// Setup registers English translations on Gin's binding engine and uses that
// engine for form values. Safe to call more than once.
func Setup() {
	once.Do(func() {
		v, ok := binding.Validator.Engine().(*govalidator.Validate)
		if !ok {
			v = govalidator.New(govalidator.WithRequiredStructEnabled())
		}

		enLocale := en.New()
		uni := ut.New(enLocale, enLocale)
		trans, _ = uni.GetTranslator("en")
		_ = en_translations.RegisterDefaultTranslations(v, trans)

		validate = v
	})
}

// ValidationError carries one message per rejected form field. Err, when
// set, is the cause the violation stands for (e.g. a credential mismatch).
type ValidationError struct {
	Fields map[string]string
	Err    error
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error { return e.Err }

// FieldError builds a ValidationError anchored to a single field.
func FieldError(field, message string, cause error) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}, Err: cause}
}

// Fields extracts the field messages from err, or nil when err is not a
// validation failure.
func Fields(err error) map[string]string {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Fields
	}
	return nil
}

// check validates one value against a tag and returns the translated
// message of the first failing rule, or "" when the value is valid.
func check(field, value, tag string) string {
	err := validate.Var(value, tag)
	if err == nil {
		return ""
	}

	var ve govalidator.ValidationErrors
	if !errors.As(err, &ve) || len(ve) == 0 {
		return fmt.Sprintf("%s is invalid", field)
	}

	fe := ve[0]
	// Var() errors carry no field name; the registered translations take the
	// field as {0} and the tag parameter as {1}.
	msg, terr := trans.T(fe.Tag(), field, fe.Param())
	if terr != nil || msg == "" {
		return fmt.Sprintf("%s failed on the '%s' rule", field, fe.Tag())
	}
	return msg
}

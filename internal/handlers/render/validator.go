package render

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	configureValidator(v)
	return v
}

func configureValidator(validate *validator.Validate) {
	_ = validate.RegisterValidation("digits", validateHasDigits)
	validate.RegisterTagNameFunc(useJSONTagNames)
}

// Report fields by 'json' tag name instead of struct field name
func useJSONTagNames(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	// skip if tag key says it should be ignored
	if name == "-" {
		return ""
	}
	return name
}

// Field must contain at least one ASCII digit; separators are allowed
func validateHasDigits(fl validator.FieldLevel) bool {
	return strings.ContainsAny(fl.Field().String(), "0123456789")
}

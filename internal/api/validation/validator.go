package validation

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	nameRegex  = regexp.MustCompile(`^[\p{L}0-9\s\-'.]{2,100}$`)
)

// RegisterValidators registers custom validators and configures the
// validator to report JSON field names in errors
func RegisterValidators(v *validator.Validate) {
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	v.RegisterValidation("email", validateEmail)
	v.RegisterValidation("name", validateName)
}

// RegisterBindingValidators wires the custom validators into gin's
// binding engine so `binding` struct tags pick them up
func RegisterBindingValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		RegisterValidators(v)
	}
}

// validateEmail checks if the email is valid
func validateEmail(fl validator.FieldLevel) bool {
	email := fl.Field().String()
	return emailRegex.MatchString(email)
}

// validateName checks if the name is valid
func validateName(fl validator.FieldLevel) bool {
	name := fl.Field().String()
	return nameRegex.MatchString(name)
}

// FormatValidationError formats validation errors into a per-field
// error map keyed by JSON field name. The map covers exactly the
// offending fields.
func FormatValidationError(err error) map[string]string {
	errors := make(map[string]string)
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return errors
	}
	for _, e := range validationErrors {
		field := e.Field()
		if field == "" {
			continue
		}
		if _, seen := errors[field]; seen {
			continue
		}
		errors[field] = messageForTag(e)
	}
	return errors
}

// messageForTag maps a validator tag to a user-facing message
func messageForTag(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Enter a valid email address"
	case "min":
		return fmt.Sprintf("Must be at least %s characters", e.Param())
	case "max":
		return fmt.Sprintf("Must be at most %s characters", e.Param())
	case "name":
		return "Contains invalid characters"
	default:
		return "Invalid value"
	}
}

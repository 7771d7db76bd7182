package shared

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	gstinPattern  = regexp.MustCompile(`^[0-9]{2}[A-Z]{5}[0-9]{4}[A-Z]{1}[1-9A-Z]{1}Z[0-9A-Z]{1}$`)
	nonDigitRunes = regexp.MustCompile(`\D`)
)

// Validator performs form-level validation of request payloads. Services never
// call it; handlers validate before invoking the gateway.
type Validator struct {
	v *validator.Validate
}

// NewValidator builds a Validator with the billing specific rules registered.
func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	// gstin is optional on customers; an empty value passes.
	_ = v.RegisterValidation("gstin", func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		return value == "" || gstinPattern.MatchString(value)
	})
	_ = v.RegisterValidation("phone10", func(fl validator.FieldLevel) bool {
		return len(nonDigitRunes.ReplaceAllString(fl.Field().String(), "")) == 10
	})
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	return &Validator{v: v}
}

// Struct validates s and returns a *ValidationError describing every failing
// field, or nil.
func (v *Validator) Struct(s any) error {
	err := v.v.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		key := fe.Namespace()
		if idx := strings.IndexByte(key, '.'); idx >= 0 {
			key = key[idx+1:]
		}
		if _, seen := fields[key]; !seen {
			fields[key] = message(fe)
		}
	}
	return &ValidationError{Fields: fields}
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return "is required"
	case "email":
		return "must be a valid email"
	case "gstin":
		return "must be a valid GSTIN"
	case "phone10":
		return "must be a valid 10-digit phone number"
	case "gt":
		return "must be greater than " + fe.Param()
	case "gte":
		return "must be at least " + fe.Param()
	case "lte":
		return "must be at most " + fe.Param()
	case "oneof":
		return "must be one of: " + fe.Param()
	case "max":
		return "must be at most " + fe.Param() + " characters"
	case "min":
		return "must contain at least " + fe.Param()
	default:
		return "is invalid"
	}
}

// Package validate holds the custom field rules plugged into the request
// validation pipeline, plus helpers for turning validation failures into
// field-level error maps.
package validate

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	codeRE  = regexp.MustCompile(`^[A-Z]{3}-\d{4}$`)
	phoneRE = regexp.MustCompile(`^\d{3}-\d{2}-\d{2}-\d{2}$`)
)

// IsInstituteCode reports whether s is a well-formed institute business code
// (three uppercase letters, a dash, four digits). Empty strings are rejected;
// the field rule below is the one that lets empty values through.
func IsInstituteCode(s string) bool {
	return codeRE.MatchString(s)
}

// InstituteCode is the "institute_code" field rule. Empty values are valid
// here; required-ness is a separate rule.
func InstituteCode(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if s == "" {
		return true
	}
	return codeRE.MatchString(s)
}

// PhoneDashed is the "phone_dashed" field rule: nine digits grouped as
// 999-99-99-99. Empty values are valid.
func PhoneDashed(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if s == "" {
		return true
	}
	return phoneRE.MatchString(s)
}

// Register installs the custom field rules on a validator instance.
func Register(v *validator.Validate) error {
	if err := v.RegisterValidation("institute_code", InstituteCode); err != nil {
		return err
	}
	return v.RegisterValidation("phone_dashed", PhoneDashed)
}

// FieldErrors converts validator failures into a field -> message map for the
// problem body. Returns nil when err is not a validation error.
func FieldErrors(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			out[field] = fmt.Sprintf("%s is required", field)
		case "email":
			out[field] = "invalid email format"
		case "min":
			out[field] = fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
		case "max":
			out[field] = fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
		case "datetime":
			out[field] = fmt.Sprintf("%s must be a date in the form %s", field, fe.Param())
		case "institute_code":
			out[field] = "institute code must match AAA-0000"
		case "phone_dashed":
			out[field] = "phone must match 999-99-99-99"
		default:
			out[field] = fmt.Sprintf("%s is invalid", field)
		}
	}
	return out
}

// internal/utils/validator.go
package utils

import (
	"errors"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

// Indian mobile numbers: 10 digits starting 6-9.
var mobilePattern = regexp.MustCompile(`^[6-9][0-9]{9}$`)

var pincodePattern = regexp.MustCompile(`^[1-9][0-9]{5}$`)

func init() {
	validate = validator.New()
	validate.RegisterValidation("in_mobile", validateMobile)
	validate.RegisterValidation("in_pincode", validatePincode)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateMobile(fl validator.FieldLevel) bool {
	return mobilePattern.MatchString(fl.Field().String())
}

func validatePincode(fl validator.FieldLevel) bool {
	pin := fl.Field().String()
	if pin == "" {
		return true // optional; pair with `required` to enforce presence
	}
	return pincodePattern.MatchString(pin)
}

// Validation tags for common fields
type ValidationError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

func GetValidationErrors(err error) []ValidationError {
	var validationErrors []ValidationError

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		for _, e := range validationErrs {
			validationErrors = append(validationErrors, ValidationError{
				Field:   strings.ToLower(e.Field()),
				Tag:     e.Tag(),
				Message: getValidationMessage(e),
			})
		}
	}

	return validationErrors
}

func getValidationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "email":
		return "Invalid email format"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case "in_mobile":
		return "Phone must be a valid 10-digit mobile number"
	case "in_pincode":
		return "PIN code must be a valid 6-digit code"
	case "oneof":
		return e.Field() + " must be one of: " + e.Param()
	default:
		return e.Field() + " is invalid"
	}
}

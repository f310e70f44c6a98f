// internal/utils/validator_test.go
package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type contactFixture struct {
	Phone   string `validate:"required,in_mobile"`
	Pincode string `validate:"omitempty,in_pincode"`
}

func TestIndianMobileValidation(t *testing.T) {
	valid := []string{"9876543210", "6000000001", "7123456789", "8765432109"}
	for _, phone := range valid {
		err := ValidateStruct(&contactFixture{Phone: phone})
		assert.NoError(t, err, "phone %s should be valid", phone)
	}

	invalid := []string{"1234567890", "987654321", "98765432101", "98765abc10", ""}
	for _, phone := range invalid {
		err := ValidateStruct(&contactFixture{Phone: phone})
		assert.Error(t, err, "phone %s should be invalid", phone)
	}
}

func TestIndianPincodeValidation(t *testing.T) {
	valid := []string{"110001", "400076", "560034", ""}
	for _, pin := range valid {
		err := ValidateStruct(&contactFixture{Phone: "9876543210", Pincode: pin})
		assert.NoError(t, err, "pincode %q should be valid", pin)
	}

	invalid := []string{"011001", "1100011", "11000", "11000a"}
	for _, pin := range invalid {
		err := ValidateStruct(&contactFixture{Phone: "9876543210", Pincode: pin})
		assert.Error(t, err, "pincode %q should be invalid", pin)
	}
}

func TestGetValidationErrors(t *testing.T) {
	err := ValidateStruct(&contactFixture{Phone: "123"})
	require.Error(t, err)

	validationErrors := GetValidationErrors(err)
	require.Len(t, validationErrors, 1)
	assert.Equal(t, "phone", validationErrors[0].Field)
	assert.Equal(t, "in_mobile", validationErrors[0].Tag)
	assert.NotEmpty(t, validationErrors[0].Message)
}

func TestGetValidationErrorsOnOtherError(t *testing.T) {
	assert.Empty(t, GetValidationErrors(assert.AnError))
	assert.Empty(t, GetValidationErrors(nil))
}

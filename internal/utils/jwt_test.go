// internal/utils/jwt_test.go
package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminJWTRoundTrip(t *testing.T) {
	SetJWTSecret("test-secret")

	adminID := uuid.New()
	token, err := GenerateAdminJWT(adminID, "shopkeeper", 24)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateAdminJWT(token)
	require.NoError(t, err)
	assert.Equal(t, adminID.String(), claims.AdminID)
	assert.Equal(t, "shopkeeper", claims.Username)
}

func TestAdminJWTRejectsTampering(t *testing.T) {
	SetJWTSecret("test-secret")

	token, err := GenerateAdminJWT(uuid.New(), "shopkeeper", 24)
	require.NoError(t, err)

	_, err = ValidateAdminJWT(token + "x")
	assert.Error(t, err)

	_, err = ValidateAdminJWT("not-a-token")
	assert.Error(t, err)
}

func TestAdminJWTRejectsWrongSecret(t *testing.T) {
	SetJWTSecret("secret-one")
	token, err := GenerateAdminJWT(uuid.New(), "shopkeeper", 24)
	require.NoError(t, err)

	SetJWTSecret("secret-two")
	_, err = ValidateAdminJWT(token)
	assert.Error(t, err)

	SetJWTSecret("secret-one")
	_, err = ValidateAdminJWT(token)
	assert.NoError(t, err)
}

package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"teampulse/config"
	"teampulse/models"
)

func TestTokenRoundTrip(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"

	user := models.User{Role: models.RoleManager}
	user.ID = 42

	token, err := GenerateToken(&user)
	require.NoError(t, err)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, models.RoleManager, claims.Role)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"

	_, err := ParseToken("not-a-token")
	assert.Error(t, err)
}

func TestParseTokenRejectsWrongKey(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"

	user := models.User{Role: models.RoleEmployee}
	user.ID = 7
	token, err := GenerateToken(&user)
	require.NoError(t, err)

	config.AppConfig.JWTSecret = "other-secret"
	_, err = ParseToken(token)
	assert.Error(t, err)
}

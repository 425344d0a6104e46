package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseJWT(t *testing.T) {
	secret := "test-secret"
	tokenString, err := GenerateJWT("user-123", secret, time.Hour, "monetario-backend")
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	claims, err := ParseAndValidateJWT(tokenString, secret)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.Subject)
	assert.Equal(t, "monetario-backend", claims.Issuer)
}

func TestParseAndValidateJWT_WrongSecret(t *testing.T) {
	tokenString, err := GenerateJWT("user-123", "right-secret", time.Hour, "monetario-backend")
	require.NoError(t, err)

	_, err = ParseAndValidateJWT(tokenString, "wrong-secret")
	assert.Error(t, err)
}

func TestParseAndValidateJWT_Expired(t *testing.T) {
	tokenString, err := GenerateJWT("user-123", "test-secret", -time.Minute, "monetario-backend")
	require.NoError(t, err)

	_, err = ParseAndValidateJWT(tokenString, "test-secret")
	require.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	assert.True(t, CheckPasswordHash("correct horse battery staple", hash))
	assert.False(t, CheckPasswordHash("wrong password", hash))
}

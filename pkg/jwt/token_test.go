package jwtPkg

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignEmbedsClaimsAndExpiry(t *testing.T) {
	t.Setenv("JWT_ACCESS_TOKEN_SECRET", "test-secret")

	token, expiredAt, err := Sign(map[string]interface{}{
		"id":    "user-1",
		"email": "ada@example.com",
	}, time.Hour)
	require.NoError(t, err)
	assert.Greater(t, expiredAt, time.Now().Unix())

	parsed, err := jwt.Parse(token, func(token *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "user-1", claims["id"])
	assert.Equal(t, "ada@example.com", claims["email"])
	assert.EqualValues(t, expiredAt, claims["exp"])
}

func TestSignRequiresSecret(t *testing.T) {
	t.Setenv("JWT_ACCESS_TOKEN_SECRET", "")

	_, _, err := Sign(map[string]interface{}{"id": "user-1"}, time.Hour)
	assert.Error(t, err)
}

func TestSignRejectsTamperedTokens(t *testing.T) {
	t.Setenv("JWT_ACCESS_TOKEN_SECRET", "test-secret")

	token, _, err := Sign(map[string]interface{}{"id": "user-1"}, time.Hour)
	require.NoError(t, err)

	_, err = jwt.Parse(token, func(token *jwt.Token) (interface{}, error) {
		return []byte("different-secret"), nil
	})
	assert.Error(t, err)
}

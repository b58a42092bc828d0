package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseJWT(t *testing.T) {
	token, expiresAt, err := GenerateJWT("1", "secret", time.Hour, "journal-test")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := ParseAndValidateJWT(token, "secret", "journal-test")
	require.NoError(t, err)
	assert.Equal(t, "1", claims.Subject)
	assert.Equal(t, "journal-test", claims.Issuer)
	assert.Len(t, claims.ID, 2*sessionIDBytes)

	other, _, err := GenerateJWT("1", "secret", time.Hour, "journal-test")
	require.NoError(t, err)
	otherClaims, err := ParseAndValidateJWT(other, "secret", "journal-test")
	require.NoError(t, err)
	assert.NotEqual(t, claims.ID, otherClaims.ID)
}

func TestParseJWT_Rejects(t *testing.T) {
	token, _, err := GenerateJWT("1", "secret", time.Hour, "journal-test")
	require.NoError(t, err)

	_, err = ParseAndValidateJWT(token, "other-secret", "journal-test")
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid, "wrong secret")

	_, err = ParseAndValidateJWT(token, "secret", "someone-else")
	assert.ErrorIs(t, err, jwt.ErrTokenInvalidIssuer, "wrong issuer")

	expired, _, err := GenerateJWT("1", "secret", -time.Minute, "journal-test")
	require.NoError(t, err)
	_, err = ParseAndValidateJWT(expired, "secret", "journal-test")
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)

	_, err = ParseAndValidateJWT("not.a.token", "secret", "")
	assert.Error(t, err)
}

func TestCheckPassword(t *testing.T) {
	assert.True(t, CheckPasswordPlain("hunter2", "hunter2"))
	assert.False(t, CheckPasswordPlain("hunter3", "hunter2"))
	assert.False(t, CheckPasswordPlain("", ""), "an unconfigured secret never matches")

	hash, err := HashPassword("hunter2")
	require.NoError(t, err)
	assert.True(t, CheckPasswordHash("hunter2", hash))
	assert.False(t, CheckPasswordHash("hunter3", hash))
}

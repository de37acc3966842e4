package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testService(expiration time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:   "test-secret",
		Expiration:  expiration,
		TokenIssuer: "mhs-api-test",
	})
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := testService(24 * time.Hour)

	token, err := svc.GenerateToken("64f1c0ffee0000000000abcd", "Budi Santoso")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "64f1c0ffee0000000000abcd", claims.ID)
	assert.Equal(t, "Budi Santoso", claims.Name)
	assert.Equal(t, "mhs-api-test", claims.Issuer)

	// 1-day expiry, give or take clock skew within the test
	remaining := time.Until(claims.ExpiresAt.Time)
	assert.InDelta(t, (24 * time.Hour).Seconds(), remaining.Seconds(), 60)
}

func TestExpiredTokenIsRejected(t *testing.T) {
	svc := testService(-time.Minute)

	token, err := svc.GenerateToken("64f1c0ffee0000000000abcd", "Budi Santoso")
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestTokenSignedWithOtherSecretIsRejected(t *testing.T) {
	token, err := testService(time.Hour).GenerateToken("id", "name")
	require.NoError(t, err)

	other := NewJWTService(JWTConfig{SecretKey: "different-secret", Expiration: time.Hour})
	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestExtractBearerToken(t *testing.T) {
	token, err := ExtractBearerToken("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	token, err = ExtractBearerToken("abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	_, err = ExtractBearerToken("")
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

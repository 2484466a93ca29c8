package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	t.Parallel()

	svc := NewJWTService("test-secret", "15m", "720h")

	token, expiresAt, err := svc.GenerateAccessToken("user-1", "9876543210")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Greater(t, expiresAt, time.Now().Unix())

	decoded, err := svc.JWTAuth().Decode(token)
	require.NoError(t, err)

	userID, _ := decoded.Get("user_id")
	mobile, _ := decoded.Get("mobile")
	tokenType, _ := decoded.Get("type")

	assert.Equal(t, "user-1", userID)
	assert.Equal(t, "9876543210", mobile)
	assert.Equal(t, "access", tokenType)
}

func TestRefreshTokenHasNoMobileClaim(t *testing.T) {
	t.Parallel()

	svc := NewJWTService("test-secret", "15m", "720h")

	token, _, err := svc.GenerateRefreshToken("user-1")
	require.NoError(t, err)

	decoded, err := svc.JWTAuth().Decode(token)
	require.NoError(t, err)

	tokenType, _ := decoded.Get("type")
	assert.Equal(t, "refresh", tokenType)

	_, hasMobile := decoded.Get("mobile")
	assert.False(t, hasMobile)
}

func TestGenerate_InvalidExpirationRejected(t *testing.T) {
	t.Parallel()

	svc := NewJWTService("test-secret", "not-a-duration", "720h")

	_, _, err := svc.GenerateAccessToken("user-1", "9876543210")
	assert.Error(t, err)
}

func TestRevocation(t *testing.T) {
	t.Parallel()

	svc := NewJWTService("test-secret", "15m", "720h")

	token, _, err := svc.GenerateAccessToken("user-1", "9876543210")
	require.NoError(t, err)

	assert.False(t, svc.IsTokenRevoked(token))
	svc.RevokeToken(token)
	assert.True(t, svc.IsTokenRevoked(token))
}

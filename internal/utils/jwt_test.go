package utils_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rosae/theatre-ops/internal/utils"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	const secret = "test-secret"
	tok, err := utils.NewAccessToken(secret, "user-123", "ADMIN", 15)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().UTC().Add(15*time.Minute), tok.Exp, 5*time.Second)

	parsed, err := jwt.Parse(tok.Token, func(*jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	claims := parsed.Claims.(jwt.MapClaims)
	assert.Equal(t, "user-123", claims["sub"])
	assert.Equal(t, "ADMIN", claims["role"])
}

func TestRefreshTokenHashing(t *testing.T) {
	a, err := utils.NewRefreshToken(30)
	require.NoError(t, err)
	b, err := utils.NewRefreshToken(30)
	require.NoError(t, err)

	assert.Len(t, a.Raw, 96)
	assert.NotEqual(t, a.Raw, b.Raw)
	assert.Equal(t, utils.HashRefreshRaw(a.Raw), utils.HashRefreshRaw(a.Raw))
	assert.NotEqual(t, utils.HashRefreshRaw(a.Raw), utils.HashRefreshRaw(b.Raw))
}

func TestPasswordHashVerify(t *testing.T) {
	hash, err := utils.HashPassword("Rosae@spaces", 4)
	require.NoError(t, err)
	assert.True(t, utils.VerifyPassword(hash, "Rosae@spaces"))
	assert.False(t, utils.VerifyPassword(hash, "wrong"))
}

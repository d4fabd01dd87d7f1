package utils_test

import (
	"testing"
	"time"

	"github.com/mprs-garage/repair_shop_app/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignAndVerifyAccessToken(t *testing.T) {
	opts := utils.TokenOptions{
		Secret: "test-secret-key-that-is-long-enough",
		Issuer: "repair-shop-test",
		TTL:    time.Hour,
	}

	token, err := utils.SignAccessToken("user-123", opts)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := utils.VerifyAccessToken(token, opts.Secret)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.Subject)
	assert.Equal(t, "repair-shop-test", claims.Issuer)
}

func TestVerifyAccessToken_WrongSecret(t *testing.T) {
	token, err := utils.SignAccessToken("user-123", utils.TokenOptions{
		Secret: "right-secret", Issuer: "repair-shop-test", TTL: time.Hour,
	})
	require.NoError(t, err)

	_, err = utils.VerifyAccessToken(token, "wrong-secret")
	assert.Error(t, err)
}

func TestVerifyAccessToken_Expired(t *testing.T) {
	token, err := utils.SignAccessToken("user-123", utils.TokenOptions{
		Secret: "secret", Issuer: "repair-shop-test", TTL: -time.Minute,
	})
	require.NoError(t, err)

	_, err = utils.VerifyAccessToken(token, "secret")
	assert.Error(t, err)
}

func TestRandomHex(t *testing.T) {
	raw, err := utils.RandomHex(32)
	require.NoError(t, err)
	assert.Len(t, raw, 64)

	_, err = utils.RandomHex(0)
	assert.Error(t, err)
}

func TestRefreshTokenHashing(t *testing.T) {
	raw, err := utils.RandomHex(32)
	require.NoError(t, err)

	hash, err := utils.HashRefreshToken(raw)
	require.NoError(t, err)
	assert.NotEqual(t, raw, hash)

	assert.True(t, utils.CompareRefreshTokenHash(raw, hash))
	assert.False(t, utils.CompareRefreshTokenHash("some-other-token", hash))
	assert.False(t, utils.CompareRefreshTokenHash(raw, "not-a-bcrypt-hash"))
}

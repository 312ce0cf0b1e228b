package utils

import (
	"testing"
	"time"

	"hiredaily/models"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	m := NewTokenManager("secret", 30*24*time.Hour)

	token, err := m.GenerateToken("w-1", models.KindWorker)
	require.NoError(t, err)

	claims, err := m.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "w-1", claims.AccountID)
	assert.Equal(t, models.KindWorker, claims.Kind)
	assert.InDelta(t, time.Now().Add(30*24*time.Hour).Unix(), claims.ExpiresAt, 5)
}

func TestValidateTokenRejects(t *testing.T) {
	m := NewTokenManager("secret", time.Hour)
	good, err := m.GenerateToken("c-1", models.KindCustomer)
	require.NoError(t, err)

	expired, err := NewTokenManager("secret", -time.Minute).GenerateToken("c-1", models.KindCustomer)
	require.NoError(t, err)

	foreign, err := NewTokenManager("other-secret", time.Hour).GenerateToken("c-1", models.KindCustomer)
	require.NoError(t, err)

	none := jwt.NewWithClaims(jwt.SigningMethodNone, TokenClaims{AccountID: "c-1", Kind: models.KindCustomer})
	unsigned, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	badKind, err := jwt.NewWithClaims(jwt.SigningMethodHS256, TokenClaims{
		AccountID:      "c-1",
		Kind:           "admin",
		StandardClaims: jwt.StandardClaims{ExpiresAt: time.Now().Add(time.Hour).Unix()},
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	tests := map[string]string{
		"malformed":      "not-a-token",
		"tampered":       good + "x",
		"expired":        expired,
		"unknown signer": foreign,
		"alg none":       unsigned,
		"unknown kind":   badKind,
	}
	for name, tok := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := m.ValidateToken(tok)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

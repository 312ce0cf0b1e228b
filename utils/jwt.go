package utils

import (
	"errors"
	"time"

	"hiredaily/models"

	"github.com/golang-jwt/jwt"
)

var ErrInvalidToken = errors.New("invalid token")

// TokenClaims is the signed payload carried by bearer tokens.
type TokenClaims struct {
	AccountID string      `json:"id"`
	Kind      models.Kind `json:"userType"`
	jwt.StandardClaims
}

// TokenManager issues and verifies HS256 tokens with one secret.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	return &TokenManager{secret: []byte(secret), ttl: ttl}
}

// GenerateToken creates a signed token for the account that expires after the manager's TTL.
func (m *TokenManager) GenerateToken(accountID string, kind models.Kind) (string, error) {
	now := time.Now()
	claims := TokenClaims{
		AccountID: accountID,
		Kind:      kind,
		StandardClaims: jwt.StandardClaims{
			Subject:   accountID,
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(m.ttl).Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// ValidateToken checks signature and expiry and returns the claims.
func (m *TokenManager) ValidateToken(tokenString string) (*TokenClaims, error) {
	claims := &TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// Ensure that the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.AccountID == "" {
		return nil, ErrInvalidToken
	}
	kind, ok := models.ParseKind(string(claims.Kind))
	if !ok {
		return nil, ErrInvalidToken
	}
	claims.Kind = kind
	return claims, nil
}

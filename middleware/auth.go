package middleware

import (
	"context"
	"strings"

	"hiredaily/models"
	"hiredaily/utils"

	"github.com/gin-gonic/gin"
)

const principalKey = "principal"

// Authenticator resolves a bearer token to the calling account.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*models.Principal, error)
}

// JWTAuthMiddleware requires a valid bearer token whose account still exists.
func JWTAuthMiddleware(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondError(c, utils.ErrUnauthorized)
			return
		}
		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))

		principal, err := auth.Authenticate(c.Request.Context(), tokenString)
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		c.Set(principalKey, principal)
		c.Next()
	}
}

// GetPrincipal returns the principal stored by JWTAuthMiddleware.
func GetPrincipal(c *gin.Context) (*models.Principal, bool) {
	v, ok := c.Get(principalKey)
	if !ok {
		return nil, false
	}
	p, ok := v.(*models.Principal)
	return p, ok && p != nil
}

// SetPrincipal is used by tests that bypass token handling.
func SetPrincipal(c *gin.Context, p *models.Principal) {
	c.Set(principalKey, p)
}

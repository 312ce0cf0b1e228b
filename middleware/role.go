package middleware

import (
	"hiredaily/models"
	"hiredaily/utils"

	"github.com/gin-gonic/gin"
)

// RequireKind admits only principals of the given kind. It must run after
// JWTAuthMiddleware.
func RequireKind(kind models.Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := GetPrincipal(c)
		if !ok {
			utils.RespondError(c, utils.ErrUnauthorized)
			return
		}
		if p.Kind != kind {
			utils.RespondError(c, utils.ErrForbidden)
			return
		}
		c.Next()
	}
}

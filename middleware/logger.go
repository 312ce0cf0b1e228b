package middleware

import (
	"time"

	"hiredaily/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RequestLogger logs one line per request.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("ip", getClientIP(c)),
		}
		if p, ok := GetPrincipal(c); ok {
			fields = append(fields, zap.String("accountId", p.ID()), zap.String("userType", string(p.Kind)))
		}
		utils.GetLogger().Info("request", fields...)
	}
}

package handlers

import (
	"net/http"

	"hiredaily/utils"

	"github.com/gin-gonic/gin"
)

// RootHandler handles GET /.
func RootHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "HireDaily API is running!"})
}

// HealthHandler reports the last dependency probe. A nil monitor means
// nothing external is wired.
func HealthHandler(monitor *utils.HealthMonitor) gin.HandlerFunc {
	return func(c *gin.Context) {
		if monitor == nil {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
			return
		}
		status := monitor.Status()
		if !status.Healthy() {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "dependencies": status.Dependencies})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "dependencies": status.Dependencies})
	}
}

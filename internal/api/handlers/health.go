package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthCheck returns the health endpoint handler. It reports the storage driver in use and
// how long the process has been serving.
//
//	@Summary		Health check
//	@Description	Check if the service is up and running
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	map[string]string	"API is healthy"
//	@Router			/health [get]
func HealthCheck(storageDriver string) gin.HandlerFunc {
	started := time.Now()
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"storage": storageDriver,
			"uptime":  time.Since(started).Round(time.Second).String(),
		})
	}
}

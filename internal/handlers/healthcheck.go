package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// APIVersion is reported by the health endpoint and attached to traces.
const APIVersion = "1.0.0"

func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now(),
		"version":   APIVersion,
	})
}

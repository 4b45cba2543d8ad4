package routes

import (
	"github.com/gin-gonic/gin"
)

// SetupHealthRoutes configures health check endpoints
func SetupHealthRoutes(router *gin.Engine, h *Handlers) {
	router.GET("/health", h.Health.Check)
}

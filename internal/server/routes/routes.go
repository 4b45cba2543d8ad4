package routes

import (
	"net/http"

	"formgate/internal/api/dto/common"
	"formgate/internal/api/middleware"
	"formgate/internal/config"
	"formgate/internal/logging"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// Setup configures all route groups
func Setup(router *gin.Engine, h *Handlers, m *Middleware) error {
	logger := logging.GetLogger()

	// Create base API v1 group
	v1 := router.Group("/api/v1")

	// Health check (no rate limiting concerns)
	SetupHealthRoutes(router, h)

	// Contact routes (public)
	SetupContactRoutes(v1, m, h)

	// Embedded form page
	if err := SetupWebRoutes(router, h); err != nil {
		return err
	}

	logger.Info("All routes have been set up successfully")
	return nil
}

// SetupGlobalMiddleware configures middleware that applies to all routes
func SetupGlobalMiddleware(router *gin.Engine, cfg *config.Config) {
	router.Use(gin.Recovery())
	router.Use(otelgin.Middleware("formgate"))
	router.Use(middleware.RequestLogger(cfg.LogRequests))
	router.Use(middleware.CORS())
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.PreserveRequestBody())
	router.Use(middleware.RateLimitMiddleware(middleware.RateLimitConfig{
		RPS:   10,
		Burst: 20,
	}))

	// A GET on the submission path must answer 405, not 404
	router.HandleMethodNotAllowed = true
	router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, common.NewErrorResponse("Method not allowed"))
	})
}

package routes

import (
	"net/http"

	"formgate/internal/web"

	"github.com/gin-gonic/gin"
)

// SetupWebRoutes serves the embedded contact form page and its assets
func SetupWebRoutes(router *gin.Engine, h *Handlers) error {
	staticFS, err := web.StaticFS()
	if err != nil {
		return err
	}

	router.GET("/", h.Web.Index)
	router.StaticFS("/static", http.FS(staticFS))
	return nil
}

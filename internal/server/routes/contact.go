package routes

import (
	"formgate/internal/api/middleware"

	"github.com/gin-gonic/gin"
)

// SetupContactRoutes configures contact form routes.
// Stage order on the submission path: per-IP rate limit, captcha
// verification, schema validation, then the handler.
func SetupContactRoutes(router *gin.RouterGroup, m *Middleware, h *Handlers) {
	public := router.Group("/contact")
	{
		// Public endpoint; per-IP fixed window keeps a single client
		// from burning through the inbox (3 requests per minute)
		public.POST("",
			middleware.IPRateLimitMiddleware(m.ContactIP),
			m.Captcha.VerifyCaptcha(),
			m.Validation.ValidateContactRequest(),
			h.Contact.Submit,
		)
	}
}

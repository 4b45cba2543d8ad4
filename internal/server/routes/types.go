package routes

import (
	"formgate/internal/api/handlers"
	"formgate/internal/api/middleware"
)

// Handlers contains all the route handlers
type Handlers struct {
	Contact *handlers.ContactHandler
	Health  *handlers.HealthHandler
	Web     *handlers.WebHandler
}

// Middleware contains all the middleware
type Middleware struct {
	Captcha    *middleware.CaptchaMiddleware
	Validation *middleware.ValidationMiddleware
	ContactIP  *middleware.IPRateLimiter
}

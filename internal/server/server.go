package server

import (
	"html/template"
	"io"
	"time"

	"formgate/internal/api/handlers"
	"formgate/internal/api/middleware"
	"formgate/internal/config"
	"formgate/internal/db"
	"formgate/internal/repository"
	"formgate/internal/server/routes"
	"formgate/internal/service"
	"formgate/internal/web"

	"github.com/gin-gonic/gin"
)

// Server represents the HTTP server
type Server struct {
	router *gin.Engine
	cfg    *config.Config
	db     *db.Database
}

// NewServer creates a new server instance
func NewServer(database *db.Database, cfg *config.Config) *Server {
	// Set release mode for production
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Disable Gin's default logger entirely because we're using our custom logger
	gin.DisableConsoleColor()
	gin.DefaultWriter = io.Discard

	// Create a new engine without default middleware
	router := gin.New()

	return &Server{
		router: router,
		cfg:    cfg,
		db:     database,
	}
}

// Init wires middleware, handlers and routes
func (s *Server) Init() error {
	routes.SetupGlobalMiddleware(s.router, s.cfg)

	// Embedded form templates
	tmpl, err := template.ParseFS(web.Assets, "templates/*.html")
	if err != nil {
		return err
	}
	s.router.SetHTMLTemplate(tmpl)

	// Create repositories
	contactRepo := repository.NewContactRepository(s.db.DB)

	// Create services
	recaptchaService := service.NewRecaptchaService(s.cfg.RecaptchaSecretKey)
	emailService := service.NewEmailService(s.cfg)

	h := &routes.Handlers{
		Contact: handlers.NewContactHandler(contactRepo, emailService),
		Health:  handlers.NewHealthHandler(contactRepo),
		Web:     handlers.NewWebHandler(s.cfg.RecaptchaSiteKey),
	}

	m := &routes.Middleware{
		Captcha:    middleware.NewCaptchaMiddleware(recaptchaService),
		Validation: middleware.NewValidationMiddleware(),
		// 3 submissions per minute per client IP
		ContactIP: middleware.NewIPRateLimiter(3, time.Minute),
	}

	return routes.Setup(s.router, h, m)
}

// Start starts the server
func (s *Server) Start() error {
	return s.router.Run(":" + s.cfg.Port)
}

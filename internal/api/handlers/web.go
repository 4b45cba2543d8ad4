package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// WebHandler serves the embedded contact form page
type WebHandler struct {
	siteKey string
}

// NewWebHandler creates a new web handler. The site key is injected
// into the page so the browser can load reCAPTCHA; an empty key makes
// the client fall back to the sentinel token.
func NewWebHandler(siteKey string) *WebHandler {
	return &WebHandler{siteKey: siteKey}
}

// Index renders the contact form
func (h *WebHandler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"SiteKey": h.siteKey,
	})
}

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newCORSRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(CORS())
	router.POST("/api/v1/contact", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func TestCORSAdvertisesOnlyFormSurface(t *testing.T) {
	router := newCORSRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/contact", nil)
	req.Header.Set("Origin", "https://example.com")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "POST, GET, OPTIONS", w.Header().Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "Content-Type, Accept, Origin, X-Requested-With", w.Header().Get("Access-Control-Allow-Headers"))

	// Anonymous API: no credential or auth headers advertised
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Credentials"))
	assert.NotContains(t, w.Header().Get("Access-Control-Allow-Headers"), "Authorization")
	assert.NotContains(t, w.Header().Get("Access-Control-Allow-Headers"), "X-CSRF-Token")
}

func TestCORSPreflight(t *testing.T) {
	router := newCORSRouter()

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/contact", nil)
	req.Header.Set("Origin", "https://example.com")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://example.com", w.Header().Get("Access-Control-Allow-Origin"))
}

package middleware

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"formgate/internal/api/constants"
)

func TestPreserveRequestBodySharesSingleRead(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var fromContext, fromBody []byte
	router := gin.New()
	router.Use(PreserveRequestBody())
	router.POST("/submit", func(c *gin.Context) {
		// Later stages read the preserved bytes, not the stream
		preserved, err := requestBody(c)
		require.NoError(t, err)
		fromContext = preserved

		// The stream itself is restored for binding
		b, err := io.ReadAll(c.Request.Body)
		require.NoError(t, err)
		fromBody = b

		c.Status(http.StatusOK)
	})

	body := `{"name":"Jane Doe"}`
	req := httptest.NewRequest(http.MethodPost, "/submit", strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, body, string(fromContext))
	assert.Equal(t, body, string(fromBody))
}

func TestPreserveRequestBodyRejectsOversizedBody(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(PreserveRequestBody())
	router.POST("/submit", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	big := bytes.Repeat([]byte("a"), maxBodySize+1)
	req := httptest.NewRequest(http.MethodPost, "/submit", bytes.NewReader(big))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}

func TestRequestBodyReadsDirectlyWithoutPreservation(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.POST("/submit", func(c *gin.Context) {
		b, err := requestBody(c)
		require.NoError(t, err)
		assert.Equal(t, "payload", string(b))

		// Subsequent stages see the same preserved bytes
		again, ok := c.Get(constants.ContextKeyRawBody)
		require.True(t, ok)
		assert.Equal(t, []byte("payload"), again.([]byte))

		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/submit", strings.NewReader("payload"))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

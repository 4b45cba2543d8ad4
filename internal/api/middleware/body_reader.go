package middleware

import (
	"bytes"
	"io"
	"net/http"

	"formgate/internal/api/constants"

	"github.com/gin-gonic/gin"
)

// maxBodySize bounds contact submissions; the largest legal payload is
// well under 1 MB, so 10 MB leaves plenty of headroom
const maxBodySize = 10 * 1024 * 1024

// PreserveRequestBody reads the request body once, bounds its size and
// stores the bytes in the context so later stages share a single read
func PreserveRequestBody() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Only process POST, PUT, PATCH and DELETE requests with request body
		if c.Request.Body == nil || (c.Request.Method != "POST" && c.Request.Method != "PUT" && c.Request.Method != "PATCH" && c.Request.Method != "DELETE") {
			c.Next()
			return
		}

		bodyBytes, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.AbortWithError(http.StatusBadRequest, err)
			return
		}

		// Check for content length or malformed requests
		if (c.Request.ContentLength == 0 && len(bodyBytes) > 0) || (c.Request.ContentLength > 0 && int64(len(bodyBytes)) != c.Request.ContentLength) {
			c.AbortWithStatus(http.StatusBadRequest)
			return
		}

		if int64(len(bodyBytes)) > maxBodySize {
			c.AbortWithStatus(http.StatusRequestEntityTooLarge)
			return
		}

		// Restore the body for subsequent middleware
		c.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))

		c.Set(constants.ContextKeyRawBody, bodyBytes)

		c.Next()
	}
}

// requestBody returns the preserved raw body, reading and preserving it
// itself when the route is not behind PreserveRequestBody
func requestBody(c *gin.Context) ([]byte, error) {
	if raw, ok := c.Get(constants.ContextKeyRawBody); ok {
		if bodyBytes, ok := raw.([]byte); ok {
			return bodyBytes, nil
		}
	}

	bodyBytes, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return nil, err
	}
	c.Set(constants.ContextKeyRawBody, bodyBytes)
	return bodyBytes, nil
}

package utils

import (
	"formgate/internal/api/dto/common"
	"formgate/internal/logging"

	"github.com/gin-gonic/gin"
)

// LogError logs an error with a message using the singleton logger
func LogError(err error, message string) {
	logger := logging.GetLogger()
	logger.Error("%s: %v", message, err)
}

// HandleAPIError is a utility function for consistent error handling across the API.
// Every failure is logged with its error code and mapped to the stable
// response shape; internal error details never reach the client.
func HandleAPIError(c *gin.Context, err error, status int, code common.ErrorCode, message string) {
	logger := logging.GetLogger()
	logger.LogHTTPError(
		c.Request.Method,
		c.Request.URL.Path,
		GetRealIP(c),
		status,
		string(code)+": "+message,
		err,
	)

	c.JSON(status, common.NewErrorResponse(message))
}

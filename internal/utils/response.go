package utils

import (
	"net/http"

	"formgate/internal/api/dto/common"
	"formgate/internal/logging"

	"github.com/gin-gonic/gin"
)

// HandleMessage sends a success response with just a message
func HandleMessage(c *gin.Context, message string) {
	c.JSON(http.StatusOK, common.NewSuccessResponse(message))
}

// HandleCreated sends a created response with the given payload
func HandleCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// HandleValidationError sends a 400 with a per-field error map and
// logs the rejection with its error code
func HandleValidationError(c *gin.Context, message string, errors map[string]string) {
	logger := logging.GetLogger()
	logger.LogHTTPError(
		c.Request.Method,
		c.Request.URL.Path,
		GetRealIP(c),
		http.StatusBadRequest,
		string(common.ErrCodeValidation)+": "+message,
		nil,
	)

	c.JSON(http.StatusBadRequest, common.NewValidationErrorResponse(message, errors))
}

package middleware

import (
	"bytes"
	"io"
	"net/http"

	"formgate/internal/api/constants"
	"formgate/internal/api/dto/common"
	contactdto "formgate/internal/api/dto/v1/contact"
	"formgate/internal/api/validation"
	"formgate/internal/utils"

	"github.com/gin-gonic/gin"
)

// ValidationMiddleware handles request validation
type ValidationMiddleware struct{}

// NewValidationMiddleware creates a new validation middleware and
// registers the custom validators on gin's binding engine
func NewValidationMiddleware() *ValidationMiddleware {
	validation.RegisterBindingValidators()
	return &ValidationMiddleware{}
}

// ValidateContactRequest validates a contact form submission.
// On failure it aborts with 400 and a per-field error map covering
// exactly the missing/invalid fields.
func (m *ValidationMiddleware) ValidateContactRequest() gin.HandlerFunc {
	return func(c *gin.Context) {
		bodyBytes, err := requestBody(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, common.NewErrorResponse("Error reading request body"))
			c.Abort()
			return
		}

		// Restore body for binding
		c.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))

		var req contactdto.ContactRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			fieldErrors := validation.FormatValidationError(err)
			if len(fieldErrors) == 0 {
				utils.HandleAPIError(c, err, http.StatusBadRequest, common.ErrCodeValidation, "Invalid request body")
				c.Abort()
				return
			}
			utils.HandleValidationError(c, "Validation failed", fieldErrors)
			c.Abort()
			return
		}

		// Phone digits depend on the selected country, which binding
		// tags cannot express
		if !validation.IsValidPhone(req.CountryCode, req.Phone) {
			utils.HandleValidationError(c, "Validation failed", map[string]string{
				"phone": "Enter a valid phone number for the selected country",
			})
			c.Abort()
			return
		}

		// Restore body again for downstream readers
		c.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))

		c.Set(constants.ContextKeyContact, &req)
		c.Next()
	}
}

package middleware

import (
	"encoding/json"
	"net/http"

	"formgate/internal/api/constants"
	"formgate/internal/api/dto/common"
	"formgate/internal/service"
	"formgate/internal/utils"

	"github.com/gin-gonic/gin"
)

// CaptchaMiddleware verifies the bot-verification token
type CaptchaMiddleware struct {
	recaptcha *service.RecaptchaService
}

// NewCaptchaMiddleware creates a new captcha middleware
func NewCaptchaMiddleware(recaptcha *service.RecaptchaService) *CaptchaMiddleware {
	return &CaptchaMiddleware{recaptcha: recaptcha}
}

// VerifyCaptcha checks the submission token before schema validation
// runs: a rejected token answers 400 without reporting field errors.
// The risk score, when present, is stored in the context for the
// handler to persist.
func (m *CaptchaMiddleware) VerifyCaptcha() gin.HandlerFunc {
	return func(c *gin.Context) {
		bodyBytes, err := requestBody(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, common.NewErrorResponse("Error reading request body"))
			c.Abort()
			return
		}

		// Only the token is needed at this stage; a malformed body
		// surfaces as a validation error in the next one
		var payload struct {
			CaptchaToken string `json:"captchaToken"`
		}
		_ = json.Unmarshal(bodyBytes, &payload)

		result := m.recaptcha.Verify(payload.CaptchaToken)
		if !result.Allowed {
			utils.HandleAPIError(c, service.ErrVerificationFailed, http.StatusBadRequest, common.ErrCodeVerification, "Captcha verification failed. Please try again.")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyCaptchaScore, result.Score)
		c.Next()
	}
}

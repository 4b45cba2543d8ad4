package constants

// Context keys for validated requests
const (
	// Contact context keys
	ContextKeyContact      = "contact"
	ContextKeyCaptchaScore = "captchaScore"

	// Request body context keys
	ContextKeyRawBody = "rawBody"
)

package common

// APIResponse is the standard wrapper for all API responses.
// The shape is part of the public contract: clients key off `success`,
// show `message`, and render `errors` per field when present.
type APIResponse struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// ErrorCode labels the failure class for logs and metrics.
// It never appears in response bodies.
type ErrorCode string

// Standard error codes
const (
	ErrCodeRateLimit      ErrorCode = "RATE_LIMIT_EXCEEDED"
	ErrCodeVerification   ErrorCode = "VERIFICATION_FAILED"
	ErrCodeValidation     ErrorCode = "SCHEMA_VALIDATION_FAILED"
	ErrCodePersistence    ErrorCode = "PERSISTENCE_FAILURE"
	ErrCodeInternalServer ErrorCode = "UNEXPECTED_FAILURE"
)

// NewSuccessResponse creates a new successful API response
func NewSuccessResponse(message string) APIResponse {
	return APIResponse{
		Success: true,
		Message: message,
	}
}

// NewErrorResponse creates a new error API response
func NewErrorResponse(message string) APIResponse {
	return APIResponse{
		Success: false,
		Message: message,
	}
}

// NewValidationErrorResponse creates an error response carrying a
// per-field error map
func NewValidationErrorResponse(message string, errors map[string]string) APIResponse {
	return APIResponse{
		Success: false,
		Message: message,
		Errors:  errors,
	}
}

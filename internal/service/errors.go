package service

import "errors"

// Sentinel errors for service layer
var (
	ErrRateLimitExceeded  = errors.New("rate limit exceeded")
	ErrVerificationFailed = errors.New("captcha verification failed")
)

package service

import (
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"formgate/internal/logging"
)

// CaptchaTokenUnavailable is the sentinel a client sends when the
// reCAPTCHA script could not be loaded. It is treated as automatic
// success so an outage on Google's side never blocks submissions.
const CaptchaTokenUnavailable = "no-captcha-available"

// MinCaptchaScore is the acceptance threshold for reCAPTCHA v3 risk
// scores
const MinCaptchaScore = 0.5

const recaptchaVerifyURL = "https://www.google.com/recaptcha/api/siteverify"

// RecaptchaService handles reCAPTCHA verification
type RecaptchaService struct {
	secretKey string
	verifyURL string
	client    *http.Client
}

// NewRecaptchaService creates a new reCAPTCHA service. An empty
// secret disables verification.
func NewRecaptchaService(secretKey string) *RecaptchaService {
	return &RecaptchaService{
		secretKey: secretKey,
		verifyURL: recaptchaVerifyURL,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// NewRecaptchaServiceWithClient creates a service verifying against a
// custom endpoint and client
func NewRecaptchaServiceWithClient(secretKey, verifyURL string, client *http.Client) *RecaptchaService {
	return &RecaptchaService{
		secretKey: secretKey,
		verifyURL: verifyURL,
		client:    client,
	}
}

// recaptchaResponse represents the response from Google's reCAPTCHA API
type recaptchaResponse struct {
	Success     bool     `json:"success"`
	Score       *float64 `json:"score,omitempty"`
	Action      string   `json:"action"`
	ChallengeTS string   `json:"challenge_ts"`
	Hostname    string   `json:"hostname"`
	ErrorCodes  []string `json:"error-codes,omitempty"`
}

// CaptchaResult is the interpreted outcome of a verification
type CaptchaResult struct {
	// Allowed reports whether the submission may proceed
	Allowed bool
	// Score is the risk score when the API returned one
	Score *float64
}

// Verify checks a client-supplied token against Google's siteverify
// endpoint. Verification is deliberately best-effort: a missing server
// secret, a sentinel token or any network/parse failure all allow the
// submission through. Only an explicit rejection or a score below
// MinCaptchaScore blocks it.
func (s *RecaptchaService) Verify(token string) CaptchaResult {
	logger := logging.GetLogger()

	if s.secretKey == "" {
		logger.Warn("reCAPTCHA secret key not configured, skipping verification")
		return CaptchaResult{Allowed: true}
	}

	if token == "" || token == CaptchaTokenUnavailable {
		logger.Warn("reCAPTCHA token unavailable on client, skipping verification")
		return CaptchaResult{Allowed: true}
	}

	data := url.Values{}
	data.Set("secret", s.secretKey)
	data.Set("response", token)

	resp, err := s.client.PostForm(s.verifyURL, data)
	if err != nil {
		// fail open: availability over strictness
		logger.Error("reCAPTCHA verification request failed: %v", err)
		return CaptchaResult{Allowed: true}
	}
	defer resp.Body.Close()

	var result recaptchaResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		logger.Error("failed to parse reCAPTCHA response: %v", err)
		return CaptchaResult{Allowed: true}
	}

	if !result.Success {
		logger.Warn("reCAPTCHA rejected token: %v", result.ErrorCodes)
		return CaptchaResult{Allowed: false, Score: result.Score}
	}

	// Score is only present for reCAPTCHA v3
	if result.Score != nil && *result.Score < MinCaptchaScore {
		logger.Warn("reCAPTCHA score too low: %.2f < %.2f", *result.Score, MinCaptchaScore)
		return CaptchaResult{Allowed: false, Score: result.Score}
	}

	return CaptchaResult{Allowed: true, Score: result.Score}
}

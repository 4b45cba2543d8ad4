package service

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"formgate/internal/logging"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "formgate-service-test")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(dir)

	if err := logging.InitLogger(&logging.Config{
		File:       filepath.Join(dir, "test.log"),
		MaxSize:    10,
		MaxBackups: 1,
		MaxAge:     1,
	}); err != nil {
		panic(err)
	}

	os.Exit(m.Run())
}

// verifyStub returns a siteverify endpoint that always answers with the
// given body.
func verifyStub(t *testing.T, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.NotEmpty(t, r.PostForm.Get("secret"))
		assert.NotEmpty(t, r.PostForm.Get("response"))
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newTestRecaptcha(srv *httptest.Server) *RecaptchaService {
	return NewRecaptchaServiceWithClient("test-secret", srv.URL, srv.Client())
}

func TestVerify_ScoreBelowThresholdRejected(t *testing.T) {
	srv := verifyStub(t, `{"success": true, "score": 0.4, "action": "contact"}`)
	s := newTestRecaptcha(srv)

	result := s.Verify("some-token")

	assert.False(t, result.Allowed)
	require.NotNil(t, result.Score)
	assert.InDelta(t, 0.4, *result.Score, 1e-9)
}

func TestVerify_ScoreAboveThresholdAccepted(t *testing.T) {
	srv := verifyStub(t, `{"success": true, "score": 0.6, "action": "contact"}`)
	s := newTestRecaptcha(srv)

	result := s.Verify("some-token")

	assert.True(t, result.Allowed)
	require.NotNil(t, result.Score)
	assert.InDelta(t, 0.6, *result.Score, 1e-9)
}

func TestVerify_ExplicitRejection(t *testing.T) {
	srv := verifyStub(t, `{"success": false, "error-codes": ["invalid-input-response"]}`)
	s := newTestRecaptcha(srv)

	result := s.Verify("bad-token")

	assert.False(t, result.Allowed)
}

func TestVerify_NoScoreAccepted(t *testing.T) {
	// reCAPTCHA v2 responses carry no score at all.
	srv := verifyStub(t, `{"success": true}`)
	s := newTestRecaptcha(srv)

	result := s.Verify("some-token")

	assert.True(t, result.Allowed)
	assert.Nil(t, result.Score)
}

func TestVerify_SentinelTokenSkipsVerification(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	s := NewRecaptchaServiceWithClient("test-secret", srv.URL, srv.Client())

	assert.True(t, s.Verify(CaptchaTokenUnavailable).Allowed)
	assert.True(t, s.Verify("").Allowed)
	assert.False(t, called, "sentinel tokens must not reach the verify endpoint")
}

func TestVerify_MissingSecretSkipsVerification(t *testing.T) {
	s := NewRecaptchaServiceWithClient("", "http://127.0.0.1:0", http.DefaultClient)

	assert.True(t, s.Verify("some-token").Allowed)
}

func TestVerify_NetworkErrorFailsOpen(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	s := NewRecaptchaServiceWithClient("test-secret", srv.URL, http.DefaultClient)

	assert.True(t, s.Verify("some-token").Allowed)
}

func TestVerify_MalformedResponseFailsOpen(t *testing.T) {
	srv := verifyStub(t, `not json`)
	s := newTestRecaptcha(srv)

	assert.True(t, s.Verify("some-token").Allowed)
}

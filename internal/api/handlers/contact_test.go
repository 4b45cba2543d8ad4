package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jordan-wright/email"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"formgate/internal/api/dto/common"
	"formgate/internal/api/middleware"
	"formgate/internal/config"
	"formgate/internal/logging"
	"formgate/internal/models"
	"formgate/internal/service"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)

	dir, err := os.MkdirTemp("", "formgate-handlers-test")
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

// fakeContactRepo is an in-memory ContactRepository for handler tests
type fakeContactRepo struct {
	contacts  []*models.Contact
	createErr error
}

func (r *fakeContactRepo) Create(ctx context.Context, input models.CreateContactInput) (*models.Contact, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	contact := &models.Contact{
		ID:              uint32(len(r.contacts) + 1),
		UUID:            uuid.New(),
		Name:            input.Name,
		Email:           input.Email,
		Phone:           input.Phone,
		CountryCode:     input.CountryCode,
		Company:         input.Company,
		Subject:         input.Subject,
		ServiceInterest: input.ServiceInterest,
		BudgetRange:     input.BudgetRange,
		Message:         input.Message,
		CaptchaScore:    input.CaptchaScore,
		IPAddress:       input.IPAddress,
		UserAgent:       input.UserAgent,
		CreatedAt:       time.Now(),
	}
	r.contacts = append(r.contacts, contact)
	return contact, nil
}

func (r *fakeContactRepo) GetByUUID(ctx context.Context, id uuid.UUID) (*models.Contact, error) {
	for _, c := range r.contacts {
		if c.UUID == id {
			return c, nil
		}
	}
	return nil, errors.New("contact not found")
}

func (r *fakeContactRepo) List(ctx context.Context, offset, limit int) ([]*models.Contact, error) {
	return r.contacts, nil
}

func (r *fakeContactRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.contacts)), nil
}

func (r *fakeContactRepo) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int, error) {
	return 0, nil
}

type routerOptions struct {
	repo      *fakeContactRepo
	recaptcha *service.RecaptchaService
	sent      chan *email.Email
}

// newContactRouter wires the submission route the way the server does:
// body preservation, per-IP limiter, captcha verification, validation,
// then the handler.
func newContactRouter(opts routerOptions) *gin.Engine {
	if opts.repo == nil {
		opts.repo = &fakeContactRepo{}
	}
	if opts.recaptcha == nil {
		opts.recaptcha = service.NewRecaptchaService("")
	}
	if opts.sent == nil {
		opts.sent = make(chan *email.Email, 8)
	}

	emailSvc := service.NewEmailServiceWithSender(&config.Config{
		SMTPHost:     "smtp.example.com",
		FromAddr:     "noreply@example.com",
		ContactInbox: "inbox@example.com",
	}, func(e *email.Email) error {
		opts.sent <- e
		return nil
	})

	handler := NewContactHandler(opts.repo, emailSvc)
	captcha := middleware.NewCaptchaMiddleware(opts.recaptcha)
	validation := middleware.NewValidationMiddleware()
	limiter := middleware.NewIPRateLimiter(3, time.Minute)

	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, common.NewErrorResponse("Method not allowed"))
	})

	router.Use(middleware.PreserveRequestBody())
	router.POST("/api/v1/contact",
		middleware.IPRateLimitMiddleware(limiter),
		captcha.VerifyCaptcha(),
		validation.ValidateContactRequest(),
		handler.Submit,
	)
	return router
}

func validPayload() map[string]any {
	return map[string]any{
		"name":            "Jane Doe",
		"email":           "jane@example.com",
		"phone":           "5551234567",
		"countryCode":     "+1",
		"company":         "Acme",
		"subject":         "Project inquiry",
		"serviceInterest": "web-development",
		"budgetRange":     "10k-25k",
		"message":         "We need a new platform built from scratch.",
		"captchaToken":    service.CaptchaTokenUnavailable,
	}
}

func submit(router *gin.Engine, payload map[string]any, clientIP string) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/contact", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "formgate-test")
	if clientIP != "" {
		req.Header.Set("X-Real-IP", clientIP)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestSubmit_Success(t *testing.T) {
	repo := &fakeContactRepo{}
	sent := make(chan *email.Email, 8)
	router := newContactRouter(routerOptions{repo: repo, sent: sent})

	w := submit(router, validPayload(), "203.0.113.7")

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Success   bool   `json:"success"`
		Message   string `json:"message"`
		ContactID string `json:"contactId"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Message sent successfully. We'll get back to you shortly.", resp.Message)

	require.Len(t, repo.contacts, 1)
	stored := repo.contacts[0]
	assert.Equal(t, stored.UUID.String(), resp.ContactID)
	assert.Equal(t, "Jane Doe", stored.Name)
	assert.Equal(t, "jane@example.com", stored.Email)
	assert.Equal(t, "203.0.113.7", stored.IPAddress)
	assert.Equal(t, "formgate-test", stored.UserAgent)

	// Both emails go out after the record is durable
	for i := 0; i < 2; i++ {
		select {
		case <-sent:
		case <-time.After(2 * time.Second):
			t.Fatal("expected notification and confirmation emails")
		}
	}
}

func TestSubmit_SanitizesStoredFields(t *testing.T) {
	repo := &fakeContactRepo{}
	router := newContactRouter(routerOptions{repo: repo})

	payload := validPayload()
	payload["name"] = "  Jane   Doe "
	payload["email"] = "JANE@Example.COM"
	payload["phone"] = "(555) 123-4567"
	payload["message"] = "Need   a <script>alert(1)</script> site"

	w := submit(router, payload, "203.0.113.8")
	require.Equal(t, http.StatusCreated, w.Code)

	require.Len(t, repo.contacts, 1)
	stored := repo.contacts[0]
	assert.Equal(t, "Jane Doe", stored.Name)
	assert.Equal(t, "jane@example.com", stored.Email)
	assert.Equal(t, "5551234567", stored.Phone)
	assert.NotContains(t, stored.Message, "<script>")
}

func TestSubmit_ValidationErrors(t *testing.T) {
	router := newContactRouter(routerOptions{})

	payload := map[string]any{
		"name":        "J",
		"email":       "not-an-email",
		"countryCode": "+1",
		"subject":     "Hello there",
		"message":     "This message is long enough to pass.",
	}

	w := submit(router, payload, "203.0.113.9")
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp common.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "Validation failed", resp.Message)

	// The map covers exactly the invalid fields, keyed by JSON name
	assert.Len(t, resp.Errors, 3)
	assert.Contains(t, resp.Errors, "name")
	assert.Contains(t, resp.Errors, "email")
	assert.Contains(t, resp.Errors, "phone")
}

func TestSubmit_NameWithInvalidCharactersRejected(t *testing.T) {
	router := newContactRouter(routerOptions{})

	payload := validPayload()
	payload["name"] = "Jane <img> Doe"

	w := submit(router, payload, "203.0.113.13")
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp common.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, map[string]string{"name": "Contains invalid characters"}, resp.Errors)
}

func TestSubmit_PhoneInvalidForCountry(t *testing.T) {
	router := newContactRouter(routerOptions{})

	payload := validPayload()
	payload["phone"] = "12345" // +1 needs exactly 10 digits

	w := submit(router, payload, "203.0.113.10")
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp common.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, map[string]string{
		"phone": "Enter a valid phone number for the selected country",
	}, resp.Errors)
}

func TestSubmit_RateLimited(t *testing.T) {
	router := newContactRouter(routerOptions{})

	for i := 0; i < 3; i++ {
		w := submit(router, validPayload(), "198.51.100.4")
		require.Equal(t, http.StatusCreated, w.Code, "request %d should pass", i+1)
	}

	w := submit(router, validPayload(), "198.51.100.4")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))

	var resp common.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)

	// A different client is unaffected
	w = submit(router, validPayload(), "198.51.100.5")
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestSubmit_CaptchaRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"success": true, "score": 0.1}`)
	}))
	defer srv.Close()

	repo := &fakeContactRepo{}
	router := newContactRouter(routerOptions{
		repo:      repo,
		recaptcha: service.NewRecaptchaServiceWithClient("test-secret", srv.URL, srv.Client()),
	})

	payload := validPayload()
	payload["captchaToken"] = "real-looking-token"

	w := submit(router, payload, "203.0.113.11")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp common.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "Captcha verification failed. Please try again.", resp.Message)
	assert.Empty(t, repo.contacts)
}

func TestSubmit_CaptchaCheckedBeforeValidation(t *testing.T) {
	// A payload failing both verification and schema validation must be
	// answered by verification: the pipeline consults the captcha first.
	var verifyCalls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		verifyCalls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"success": true, "score": 0.1}`)
	}))
	defer srv.Close()

	router := newContactRouter(routerOptions{
		recaptcha: service.NewRecaptchaServiceWithClient("test-secret", srv.URL, srv.Client()),
	})

	payload := map[string]any{
		"name":         "J", // schema-invalid
		"captchaToken": "real-looking-token",
	}

	w := submit(router, payload, "203.0.113.14")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, int32(1), verifyCalls.Load())

	var resp common.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Captcha verification failed. Please try again.", resp.Message)
	assert.Empty(t, resp.Errors)
}

func TestSubmit_CaptchaScorePersisted(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"success": true, "score": 0.9}`)
	}))
	defer srv.Close()

	repo := &fakeContactRepo{}
	router := newContactRouter(routerOptions{
		repo:      repo,
		recaptcha: service.NewRecaptchaServiceWithClient("test-secret", srv.URL, srv.Client()),
	})

	payload := validPayload()
	payload["captchaToken"] = "real-looking-token"

	w := submit(router, payload, "203.0.113.15")
	require.Equal(t, http.StatusCreated, w.Code)

	require.Len(t, repo.contacts, 1)
	require.NotNil(t, repo.contacts[0].CaptchaScore)
	assert.InDelta(t, 0.9, *repo.contacts[0].CaptchaScore, 1e-9)
}

func TestSubmit_PersistenceFailure(t *testing.T) {
	repo := &fakeContactRepo{createErr: errors.New("connection refused")}
	sent := make(chan *email.Email, 8)
	router := newContactRouter(routerOptions{repo: repo, sent: sent})

	w := submit(router, validPayload(), "203.0.113.12")
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp common.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "Could not save your message. Please try again later.", resp.Message)

	// No email leaves the building when the record was never stored
	select {
	case e := <-sent:
		t.Fatalf("unexpected email sent: %s", e.Subject)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestSubmit_GetMethodNotAllowed(t *testing.T) {
	router := newContactRouter(routerOptions{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/contact", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)

	var resp common.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "Method not allowed", resp.Message)
}

func TestSubmit_TrailingSlashRedirects(t *testing.T) {
	router := newContactRouter(routerOptions{})

	body, _ := json.Marshal(validPayload())
	req := httptest.NewRequest(http.MethodPost, "/api/v1/contact/", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusTemporaryRedirect, w.Code)
	assert.Equal(t, "/api/v1/contact", w.Header().Get("Location"))
}

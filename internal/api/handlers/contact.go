package handlers

import (
	"net/http"

	"formgate/internal/api/constants"
	"formgate/internal/api/dto/common"
	contactdto "formgate/internal/api/dto/v1/contact"
	"formgate/internal/api/sanitization"
	"formgate/internal/models"
	"formgate/internal/repository"
	"formgate/internal/service"
	"formgate/internal/utils"

	"github.com/gin-gonic/gin"
)

// ContactHandler processes contact form submissions
type ContactHandler struct {
	contacts repository.ContactRepository
	email    *service.EmailService
}

// NewContactHandler creates a new contact handler
func NewContactHandler(contacts repository.ContactRepository, email *service.EmailService) *ContactHandler {
	return &ContactHandler{
		contacts: contacts,
		email:    email,
	}
}

// Submit handles a verified, validated contact submission.
// The captcha and validation middleware have already run; what remains
// is sanitization, persistence and fire-and-forget email dispatch.
func (h *ContactHandler) Submit(c *gin.Context) {
	// Get contact data from context (set by validation middleware)
	contactData, exists := c.Get(constants.ContextKeyContact)
	if !exists {
		utils.HandleAPIError(c, nil, http.StatusInternalServerError, common.ErrCodeInternalServer, "Contact data not found in context")
		return
	}

	req, ok := contactData.(*contactdto.ContactRequest)
	if !ok {
		utils.HandleAPIError(c, nil, http.StatusInternalServerError, common.ErrCodeInternalServer, "Invalid contact data format")
		return
	}

	// Risk score recorded by the captcha middleware, when the API
	// returned one
	var score *float64
	if v, exists := c.Get(constants.ContextKeyCaptchaScore); exists {
		if s, ok := v.(*float64); ok {
			score = s
		}
	}

	input := models.CreateContactInput{
		Name:            sanitization.SanitizeName(req.Name),
		Email:           sanitization.SanitizeEmail(req.Email),
		Phone:           sanitization.SanitizePhone(req.Phone),
		CountryCode:     sanitization.SanitizePhone(req.CountryCode),
		Company:         sanitization.SanitizeString(req.Company),
		Subject:         sanitization.SanitizeString(req.Subject),
		ServiceInterest: sanitization.SanitizeString(req.ServiceInterest),
		BudgetRange:     sanitization.SanitizeString(req.BudgetRange),
		Message:         sanitization.SanitizeString(req.Message),
		CaptchaScore:    score,
		IPAddress:       utils.GetRealIP(c),
		UserAgent:       c.Request.UserAgent(),
	}

	contact, err := h.contacts.Create(c.Request.Context(), input)
	if err != nil {
		utils.HandleAPIError(c, err, http.StatusInternalServerError, common.ErrCodePersistence, "Could not save your message. Please try again later.")
		return
	}

	// Emails are best-effort side effects after the record is durable
	h.email.DispatchContactEmails(contact)

	utils.HandleCreated(c, contactdto.ContactResponse{
		Success:   true,
		Message:   "Message sent successfully. We'll get back to you shortly.",
		ContactID: contact.UUID.String(),
	})
}

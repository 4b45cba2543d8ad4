package service

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jordan-wright/email"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"formgate/internal/config"
	"formgate/internal/models"
)

func smtpTestConfig() *config.Config {
	return &config.Config{
		SMTPHost:     "smtp.example.com",
		SMTPPort:     587,
		SMTPUser:     "mailer@example.com",
		FromAddr:     "noreply@example.com",
		ContactInbox: "inbox@example.com",
	}
}

func testContact() *models.Contact {
	return &models.Contact{
		UUID:        uuid.MustParse("6d3cbe7e-9a1f-4a8e-92c4-0d3a9b1f2c55"),
		Name:        "Jane Doe",
		Email:       "jane@example.com",
		Phone:       "5551234567",
		CountryCode: "+1",
		Company:     "Acme",
		Subject:     "Project inquiry",
		Message:     "We need a new platform.",
	}
}

func TestSendContactNotification(t *testing.T) {
	var got *email.Email
	s := NewEmailServiceWithSender(smtpTestConfig(), func(e *email.Email) error {
		got = e
		return nil
	})

	require.NoError(t, s.SendContactNotification(testContact()))
	require.NotNil(t, got)

	assert.Equal(t, "noreply@example.com", got.From)
	assert.Equal(t, []string{"inbox@example.com"}, got.To)
	assert.Equal(t, []string{"Jane Doe <jane@example.com>"}, got.ReplyTo)
	assert.Equal(t, "[Contact] Project inquiry", got.Subject)
	assert.Contains(t, string(got.Text), "We need a new platform.")
	assert.Contains(t, string(got.Text), "+1 5551234567")
}

func TestSendContactConfirmation(t *testing.T) {
	var got *email.Email
	s := NewEmailServiceWithSender(smtpTestConfig(), func(e *email.Email) error {
		got = e
		return nil
	})

	contact := testContact()
	require.NoError(t, s.SendContactConfirmation(contact))
	require.NotNil(t, got)

	assert.Equal(t, []string{"jane@example.com"}, got.To)
	assert.Equal(t, "We received your message", got.Subject)
	assert.Contains(t, string(got.Text), contact.UUID.String())
}

func TestFromFallsBackToSMTPUser(t *testing.T) {
	cfg := smtpTestConfig()
	cfg.FromAddr = ""

	var got *email.Email
	s := NewEmailServiceWithSender(cfg, func(e *email.Email) error {
		got = e
		return nil
	})

	require.NoError(t, s.SendContactNotification(testContact()))
	assert.Equal(t, "mailer@example.com", got.From)
}

func TestDispatchContactEmails(t *testing.T) {
	sent := make(chan *email.Email, 2)
	s := NewEmailServiceWithSender(smtpTestConfig(), func(e *email.Email) error {
		sent <- e
		return nil
	})

	s.DispatchContactEmails(testContact())

	var subjects []string
	for i := 0; i < 2; i++ {
		select {
		case e := <-sent:
			subjects = append(subjects, e.Subject)
		case <-time.After(2 * time.Second):
			t.Fatalf("expected 2 emails, got %d", len(subjects))
		}
	}

	assert.True(t, strings.HasPrefix(subjects[0], "[Contact]"))
	assert.Equal(t, "We received your message", subjects[1])
}

func TestDispatchSkipsWhenUnconfigured(t *testing.T) {
	cfg := smtpTestConfig()
	cfg.SMTPHost = ""

	sent := make(chan *email.Email, 2)
	s := NewEmailServiceWithSender(cfg, func(e *email.Email) error {
		sent <- e
		return nil
	})

	assert.False(t, s.Configured())
	s.DispatchContactEmails(testContact())

	select {
	case e := <-sent:
		t.Fatalf("unexpected email sent: %s", e.Subject)
	case <-time.After(100 * time.Millisecond):
	}
}

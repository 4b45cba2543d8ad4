package service

import (
	"crypto/tls"
	"fmt"
	"net"
	"net/smtp"
	"strconv"

	"formgate/internal/config"
	"formgate/internal/logging"
	"formgate/internal/models"

	"github.com/jordan-wright/email"
)

// EmailService sends contact notification and confirmation emails
// over SMTP
type EmailService struct {
	host  string
	port  int
	user  string
	pass  string
	ssl   bool
	from  string
	inbox string

	// send is swappable for tests
	send func(e *email.Email) error
}

// NewEmailService creates a new email service from configuration
func NewEmailService(cfg *config.Config) *EmailService {
	s := &EmailService{
		host:  cfg.SMTPHost,
		port:  cfg.SMTPPort,
		user:  cfg.SMTPUser,
		pass:  cfg.SMTPPass,
		ssl:   cfg.SMTPSSL,
		from:  cfg.FromAddr,
		inbox: cfg.ContactInbox,
	}
	if s.from == "" {
		s.from = s.user
	}
	s.send = s.sendSMTP
	return s
}

// NewEmailServiceWithSender creates an email service that delivers
// through a custom send function instead of SMTP
func NewEmailServiceWithSender(cfg *config.Config, send func(e *email.Email) error) *EmailService {
	s := NewEmailService(cfg)
	s.send = send
	return s
}

// Configured reports whether the service can actually deliver mail
func (s *EmailService) Configured() bool {
	return s.host != "" && s.inbox != ""
}

func (s *EmailService) sendSMTP(e *email.Email) error {
	addr := net.JoinHostPort(s.host, strconv.Itoa(s.port))
	auth := smtp.PlainAuth("", s.user, s.pass, s.host)

	if s.ssl {
		return e.SendWithTLS(addr, auth, &tls.Config{ServerName: s.host})
	}
	return e.Send(addr, auth)
}

// SendContactNotification delivers the submission to the configured
// inbox with Reply-To set to the submitter
func (s *EmailService) SendContactNotification(contact *models.Contact) error {
	body := fmt.Sprintf(
		"New contact form submission\n\n"+
			"Name: %s\nEmail: %s\nPhone: %s %s\nCompany: %s\n"+
			"Service: %s\nBudget: %s\nIP: %s\n\n%s\n",
		contact.Name, contact.Email, contact.CountryCode, contact.Phone,
		contact.Company, contact.ServiceInterest, contact.BudgetRange,
		contact.IPAddress, contact.Message,
	)

	e := email.NewEmail()
	e.From = s.from
	e.To = []string{s.inbox}
	e.ReplyTo = []string{fmt.Sprintf("%s <%s>", contact.Name, contact.Email)}
	e.Subject = "[Contact] " + contact.Subject
	e.Text = []byte(body)

	return s.send(e)
}

// SendContactConfirmation acknowledges receipt to the submitter
func (s *EmailService) SendContactConfirmation(contact *models.Contact) error {
	body := fmt.Sprintf(
		"Hi %s,\n\n"+
			"Thanks for getting in touch. We received your message about %q "+
			"and will get back to you shortly.\n\n"+
			"Your reference: %s\n",
		contact.Name, contact.Subject, contact.UUID,
	)

	e := email.NewEmail()
	e.From = s.from
	e.To = []string{contact.Email}
	e.Subject = "We received your message"
	e.Text = []byte(body)

	return s.send(e)
}

// DispatchContactEmails sends both emails without blocking the
// request. The record is already persisted; delivery failures are
// logged and never surfaced to the client.
func (s *EmailService) DispatchContactEmails(contact *models.Contact) {
	logger := logging.GetLogger()

	if !s.Configured() {
		logger.Warn("SMTP not configured, skipping contact emails for %s", contact.UUID)
		return
	}

	go func() {
		if err := s.SendContactNotification(contact); err != nil {
			logger.Error("failed to send contact notification for %s: %v", contact.UUID, err)
		}
		if err := s.SendContactConfirmation(contact); err != nil {
			logger.Error("failed to send contact confirmation for %s: %v", contact.UUID, err)
		}
	}()
}

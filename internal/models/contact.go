package models

import (
	"time"

	"github.com/google/uuid"
)

// Contact is the domain representation of a stored submission.
// It decouples handlers, tasks and the CLI from the generated ent types.
type Contact struct {
	ID              uint32     `json:"id"`
	UUID            uuid.UUID  `json:"uuid"`
	Name            string     `json:"name"`
	Email           string     `json:"email"`
	Phone           string     `json:"phone"`
	CountryCode     string     `json:"country_code"`
	Company         string     `json:"company,omitempty"`
	Subject         string     `json:"subject"`
	ServiceInterest string     `json:"service_interest,omitempty"`
	BudgetRange     string     `json:"budget_range,omitempty"`
	Message         string     `json:"message"`
	CaptchaScore    *float64   `json:"captcha_score,omitempty"`
	IPAddress       string     `json:"ip_address,omitempty"`
	UserAgent       string     `json:"user_agent,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

// CreateContactInput carries the sanitized fields for a new contact record.
type CreateContactInput struct {
	Name            string
	Email           string
	Phone           string
	CountryCode     string
	Company         string
	Subject         string
	ServiceInterest string
	BudgetRange     string
	Message         string
	CaptchaScore    *float64
	IPAddress       string
	UserAgent       string
}

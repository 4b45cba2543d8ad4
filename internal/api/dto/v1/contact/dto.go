package contact

// ContactRequest represents a contact form submission
type ContactRequest struct {
	Name            string `json:"name" binding:"required,min=2,max=100,name"`
	Email           string `json:"email" binding:"required,email,max=255"`
	Phone           string `json:"phone" binding:"required"`
	CountryCode     string `json:"countryCode" binding:"required"`
	Company         string `json:"company" binding:"omitempty,max=150"`
	Subject         string `json:"subject" binding:"required,min=3,max=150"`
	ServiceInterest string `json:"serviceInterest" binding:"omitempty,max=100"`
	BudgetRange     string `json:"budgetRange" binding:"omitempty,max=50"`
	Message         string `json:"message" binding:"required,min=10,max=2000"`
	CaptchaToken    string `json:"captchaToken"`
}

// ContactResponse represents the response after submitting a contact form
type ContactResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	ContactID string `json:"contactId,omitempty"`
}

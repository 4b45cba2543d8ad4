package sanitization

import (
	"html/template"
	"regexp"
	"strings"
)

var (
	multiSpaceRegex = regexp.MustCompile(`\s+`)
	nameCharsRegex  = regexp.MustCompile(`[^\p{L}0-9\s\-'.]`)
	phoneCharsRegex = regexp.MustCompile(`[^0-9+]`)
)

// SanitizeString removes potentially dangerous characters from a string
func SanitizeString(input string) string {
	// Remove HTML tags
	safe := template.HTMLEscapeString(input)

	// Remove multiple spaces
	safe = multiSpaceRegex.ReplaceAllString(safe, " ")

	// Trim whitespace
	return strings.TrimSpace(safe)
}

// SanitizeEmail normalizes an email address for storage
func SanitizeEmail(input string) string {
	email := strings.ToLower(input)
	email = strings.TrimSpace(email)
	return template.HTMLEscapeString(email)
}

// SanitizeName removes potentially dangerous characters from a name
func SanitizeName(input string) string {
	// Keep letters, digits, spaces and common name punctuation.
	// The charset filter already removes every HTML-significant
	// character, so no escaping pass is needed on top.
	safe := nameCharsRegex.ReplaceAllString(input, "")

	safe = multiSpaceRegex.ReplaceAllString(safe, " ")
	return strings.TrimSpace(safe)
}

// SanitizePhone strips formatting so only digits and a leading plus
// survive
func SanitizePhone(input string) string {
	phone := phoneCharsRegex.ReplaceAllString(input, "")

	// a plus is only meaningful as a prefix
	hasPrefix := strings.HasPrefix(phone, "+")
	phone = strings.ReplaceAll(phone, "+", "")
	if hasPrefix {
		phone = "+" + phone
	}
	return phone
}

package validation

import (
	"strings"
	"unicode"
)

// digitRule bounds the national-number digit count for a dial code
type digitRule struct {
	min int
	max int
}

// phoneDigitRules maps a dial code to the digit-length rule for its
// national numbers. Dial codes not listed fall back to defaultDigitRule.
var phoneDigitRules = map[string]digitRule{
	"+1":   {10, 10}, // US/Canada
	"+7":   {10, 10}, // Russia/Kazakhstan
	"+27":  {9, 9},   // South Africa
	"+31":  {9, 9},   // Netherlands
	"+33":  {9, 9},   // France
	"+34":  {9, 9},   // Spain
	"+39":  {9, 10},  // Italy
	"+41":  {9, 9},   // Switzerland
	"+44":  {10, 10}, // United Kingdom
	"+46":  {7, 9},   // Sweden
	"+49":  {10, 11}, // Germany
	"+55":  {10, 11}, // Brazil
	"+61":  {9, 9},   // Australia
	"+65":  {8, 8},   // Singapore
	"+81":  {10, 10}, // Japan
	"+82":  {9, 10},  // South Korea
	"+86":  {11, 11}, // China
	"+91":  {10, 10}, // India
	"+852": {8, 8},   // Hong Kong
	"+971": {9, 9},   // UAE
}

// defaultDigitRule covers dial codes without an explicit rule,
// matching the ITU-T E.164 national-number bounds
var defaultDigitRule = digitRule{6, 14}

// IsValidPhone reports whether the phone number has an acceptable
// digit count for the given dial code. Formatting characters
// (spaces, dashes, parentheses) are ignored; a leading country prefix
// matching the dial code is stripped before counting.
func IsValidPhone(countryCode, phone string) bool {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return false
	}

	// Strip an explicit dial-code prefix so "+49 170..." and "170..."
	// validate the same way.
	if countryCode != "" && strings.HasPrefix(phone, countryCode) {
		phone = phone[len(countryCode):]
	}

	digits := 0
	for _, r := range phone {
		switch {
		case unicode.IsDigit(r):
			digits++
		case r == ' ' || r == '-' || r == '(' || r == ')' || r == '.':
			// formatting, ignore
		default:
			return false
		}
	}

	rule, ok := phoneDigitRules[countryCode]
	if !ok {
		rule = defaultDigitRule
	}
	return digits >= rule.min && digits <= rule.max
}

package validation

import "testing"

func TestIsValidPhone(t *testing.T) {
	tests := []struct {
		countryCode string
		phone       string
		want        bool
	}{
		{"+1", "2125551234", true},
		{"+1", "212555123", false},      // 9 digits, US needs 10
		{"+1", "21255512345", false},    // 11 digits
		{"+1", "(212) 555-1234", true},  // formatting ignored
		{"+1", "+1 212 555 1234", true}, // dial-code prefix stripped
		{"+44", "7911123456", true},
		{"+44", "791112345", false},
		{"+49", "1701234567", true},  // 10 digits
		{"+49", "17012345678", true}, // 11 digits
		{"+49", "170123456", false},  // 9 digits
		{"+65", "81234567", true},
		{"+65", "8123456", false},
		{"+86", "13812345678", true},
		{"+86", "1381234567", false},
		{"+999", "123456", true},        // unknown code, generic bounds
		{"+999", "12345", false},        // below generic minimum
		{"+1", "", false},               // empty
		{"+1", "212555abcd", false},     // letters
		{"", "12345678", true},          // no country selected, generic bounds
	}

	for _, tt := range tests {
		t.Run(tt.countryCode+"/"+tt.phone, func(t *testing.T) {
			if got := IsValidPhone(tt.countryCode, tt.phone); got != tt.want {
				t.Errorf("IsValidPhone(%q, %q) = %v, want %v", tt.countryCode, tt.phone, got, tt.want)
			}
		})
	}
}

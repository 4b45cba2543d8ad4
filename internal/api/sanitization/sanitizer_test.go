package sanitization

import "testing"

func TestSanitizeString(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"  hello   world  ", "hello world"},
		{"<script>alert(1)</script>", "&lt;script&gt;alert(1)&lt;/script&gt;"},
		{"line\nbreaks\tand   spaces", "line breaks and spaces"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := SanitizeString(tt.input); got != tt.want {
			t.Errorf("SanitizeString(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestSanitizeEmail(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"  Jane@Example.COM ", "jane@example.com"},
		{"jane@example.com", "jane@example.com"},
	}

	for _, tt := range tests {
		if got := SanitizeEmail(tt.input); got != tt.want {
			t.Errorf("SanitizeEmail(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Jane Doe", "Jane Doe"},
		{"  Jane   Doe  ", "Jane Doe"},
		{"Jane <img> Doe", "Jane img Doe"},
		{"O'Brien-Smith Jr.", "O'Brien-Smith Jr."},
	}

	for _, tt := range tests {
		if got := SanitizeName(tt.input); got != tt.want {
			t.Errorf("SanitizeName(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestSanitizePhone(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"(212) 555-1234", "2125551234"},
		{"+1 212 555 1234", "+12125551234"},
		{"212+555+1234", "2125551234"},
		{"+44 7911 123456", "+447911123456"},
	}

	for _, tt := range tests {
		if got := SanitizePhone(tt.input); got != tt.want {
			t.Errorf("SanitizePhone(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

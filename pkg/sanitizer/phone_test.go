package sanitizer

import "testing"

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"already E164 US", "+14155550100", "+14155550100"},
		{"US national format", "(415) 555-0100", "+14155550100"},
		{"US with spaces", " 415 555 0100 ", "+14155550100"},
		{"israeli mobile", "+972541234567", "+972541234567"},
		{"empty", "", ""},
		{"garbage", "hello", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizePhone(tt.input); got != tt.expected {
				t.Errorf("NormalizePhone(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

package sealer

import "testing"

func TestShareToken_RoundTrip(t *testing.T) {
	token, err := CreateShareToken("+14155550100", "507f1f77bcf86cd799439011")
	if err != nil {
		t.Fatalf("unexpected error creating token: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}

	phone, listingID, err := ParseShareToken(token)
	if err != nil {
		t.Fatalf("unexpected error parsing token: %v", err)
	}
	if phone != "+14155550100" {
		t.Errorf("expected phone %q, got %q", "+14155550100", phone)
	}
	if listingID != "507f1f77bcf86cd799439011" {
		t.Errorf("expected listing ID %q, got %q", "507f1f77bcf86cd799439011", listingID)
	}
}

func TestShareToken_TokensAreOpaqueAndUnique(t *testing.T) {
	first, err := CreateShareToken("+14155550100", "abc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := CreateShareToken("+14155550100", "abc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Random nonces mean the same payload never seals to the same token.
	if first == second {
		t.Error("expected distinct tokens for identical payloads")
	}
}

func TestParseShareToken_Garbage(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{"not base64", "!!!"},
		{"valid base64 but too short", "YWJj"},
		{"tampered ciphertext", "AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA"},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := ParseShareToken(tt.token); err == nil {
				t.Errorf("expected error for token %q", tt.token)
			}
		})
	}
}

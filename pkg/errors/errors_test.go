package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestConstructorsSetCodeAndStatus(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		wantCode   string
		wantStatus int
	}{
		{"not found", NotFound("Listing"), CodeNotFound, http.StatusNotFound},
		{"validation", Validation("bad", nil), CodeValidation, http.StatusUnprocessableEntity},
		{"invalid input", InvalidInput("bad"), CodeInvalidInput, http.StatusBadRequest},
		{"conflict", Conflict("dupe"), CodeConflict, http.StatusConflict},
		{"internal", Internal("boom", nil), CodeInternal, http.StatusInternalServerError},
		{"timeout", Timeout("slow"), CodeTimeout, http.StatusGatewayTimeout},
		{"unavailable", Unavailable("listings"), CodeUnavailable, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code != tt.wantCode {
				t.Errorf("expected code %q, got %q", tt.wantCode, tt.err.Code)
			}
			if tt.err.StatusCode() != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, tt.err.StatusCode())
			}
		})
	}
}

func TestErrorStringIncludesCause(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	err := Internal("Failed to create listing", cause)

	msg := err.Error()
	if msg != "INTERNAL_ERROR: Failed to create listing (caused by: connection refused)" {
		t.Errorf("unexpected error string: %q", msg)
	}

	if !errors.Is(err, cause) {
		t.Error("expected errors.Is to find the wrapped cause")
	}
}

func TestNotFoundWithID_Details(t *testing.T) {
	err := NotFoundWithID("Listing", "abc-123")

	if err.Details["resource"] != "Listing" {
		t.Errorf("expected resource detail, got %v", err.Details["resource"])
	}
	if err.Details["id"] != "abc-123" {
		t.Errorf("expected id detail, got %v", err.Details["id"])
	}
}

func TestAsAppError(t *testing.T) {
	original := Conflict("dupe")
	if got := AsAppError(original); got != original {
		t.Error("expected AppError passed through unchanged")
	}

	plain := fmt.Errorf("boom")
	wrapped := AsAppError(plain)
	if wrapped.Code != CodeInternal {
		t.Errorf("expected plain errors wrapped as internal, got %q", wrapped.Code)
	}
	if !errors.Is(wrapped, plain) {
		t.Error("expected the original error preserved as cause")
	}
}

func TestIsAppError(t *testing.T) {
	if !IsAppError(Conflict("dupe")) {
		t.Error("expected true for AppError")
	}
	if IsAppError(fmt.Errorf("boom")) {
		t.Error("expected false for plain error")
	}
}

package validator

import (
	"strings"
	"testing"
)

type phoneOnly struct {
	Phone string `validate:"required,phone"`
}

func TestPhoneRule(t *testing.T) {
	cv := NewValidator()

	valid := []string{
		"771234567",
		"77 123 45 67",
		"+221771234567",
		"+221 77 123 45 67",
	}
	for _, phone := range valid {
		if err := cv.Validate(&phoneOnly{Phone: phone}); err != nil {
			t.Errorf("phone %q should be valid, got %v", phone, err)
		}
	}

	invalid := []string{
		"12345678",      // too short
		"77-123-45-67",  // dashes not allowed
		"seven-seven",   // not numeric
		"771234567a",    // trailing letter
	}
	for _, phone := range invalid {
		if err := cv.Validate(&phoneOnly{Phone: phone}); err == nil {
			t.Errorf("phone %q should be rejected", phone)
		}
	}
}

type loginShape struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=8"`
}

func TestFormatValidationErrors(t *testing.T) {
	cv := NewValidator()

	err := cv.Validate(&loginShape{Email: "not-an-email", Password: "short"})
	if err == nil {
		t.Fatal("expected validation failure")
	}

	fields := cv.FormatValidationErrors(err)
	if msg := fields["Email"]; !strings.Contains(msg, "valid email") {
		t.Errorf("Email message = %q, want an email hint", msg)
	}
	if msg := fields["Password"]; !strings.Contains(msg, "at least 8") {
		t.Errorf("Password message = %q, want a min-length hint", msg)
	}
}

func TestMessageFlattensToOneLine(t *testing.T) {
	cv := NewValidator()

	err := cv.Validate(&loginShape{})
	if err == nil {
		t.Fatal("expected validation failure")
	}

	msg := cv.Message(err)
	if strings.Contains(msg, "\n") {
		t.Errorf("Message() should be one line, got %q", msg)
	}
	if !strings.Contains(msg, "Email is required") {
		t.Errorf("Message() = %q, want it to mention Email is required", msg)
	}
	if !strings.Contains(msg, "Password is required") {
		t.Errorf("Message() = %q, want it to mention Password is required", msg)
	}
}

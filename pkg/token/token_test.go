package token

import (
	"testing"
	"time"

	"clinic-manager/config"
)

func newTestService(expiry time.Duration) *Service {
	return NewService(config.SessionConfig{
		Secret: "test-secret",
		Expiry: expiry,
	})
}

func TestGenerateAndValidate(t *testing.T) {
	service := newTestService(time.Hour)

	tokenString, expiresAt, err := service.Generate(42, "secretary@clinic.example", "secretary")
	if err != nil {
		t.Fatalf("Generate() returned error: %v", err)
	}
	if tokenString == "" {
		t.Fatal("Generate() returned an empty token")
	}
	if remaining := time.Until(expiresAt); remaining < 59*time.Minute || remaining > time.Hour {
		t.Errorf("expiresAt %v is not about one hour away", expiresAt)
	}

	claims, err := service.Validate(tokenString)
	if err != nil {
		t.Fatalf("Validate() returned error: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("claims.UserID = %d, want 42", claims.UserID)
	}
	if claims.Email != "secretary@clinic.example" {
		t.Errorf("claims.Email = %q, want secretary@clinic.example", claims.Email)
	}
	if claims.Role != "secretary" {
		t.Errorf("claims.Role = %q, want secretary", claims.Role)
	}
	if claims.TokenID == "" {
		t.Error("claims.TokenID should not be empty")
	}
}

func TestValidateWrongSecret(t *testing.T) {
	tokenString, _, err := newTestService(time.Hour).Generate(1, "dr.diop@clinic.example", "practitioner")
	if err != nil {
		t.Fatalf("Generate() returned error: %v", err)
	}

	other := NewService(config.SessionConfig{Secret: "another-secret", Expiry: time.Hour})
	if _, err := other.Validate(tokenString); err == nil {
		t.Error("Validate() with a different secret should fail")
	}
}

func TestValidateExpired(t *testing.T) {
	service := newTestService(-time.Minute)

	tokenString, _, err := service.Generate(1, "dr.diop@clinic.example", "practitioner")
	if err != nil {
		t.Fatalf("Generate() returned error: %v", err)
	}

	if _, err := service.Validate(tokenString); err == nil {
		t.Error("Validate() on an expired token should fail")
	}
}

func TestValidateGarbage(t *testing.T) {
	if _, err := newTestService(time.Hour).Validate("not-a-token"); err == nil {
		t.Error("Validate() on garbage input should fail")
	}
}

func TestExpiry(t *testing.T) {
	if got := newTestService(8 * time.Hour).Expiry(); got != 8*time.Hour {
		t.Errorf("Expiry() = %v, want 8h", got)
	}
}

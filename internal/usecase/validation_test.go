package usecase

import (
	"errors"
	"testing"

	domainErrors "github.com/polkiloo/marketingapi/internal/domain/errors"
)

func TestNormalizePhone(t *testing.T) {
	valid := map[string]string{
		"+18777804236":     "+18777804236",
		"8777804236":       "+18777804236",
		"18777804236":      "+18777804236",
		"(218) 839-3625":   "+12188393625",
		"+44 20 7946 0958": "+442079460958",
		"218.839.3626":     "+12188393626",
	}
	for input, want := range valid {
		got, err := NormalizePhone(input)
		if err != nil {
			t.Fatalf("NormalizePhone(%q) returned error: %v", input, err)
		}
		if got != want {
			t.Fatalf("NormalizePhone(%q) = %q, want %q", input, got, want)
		}
	}

	invalid := []string{"", "   ", "call me", "12+34", "123", "+1234567890123456"}
	for _, input := range invalid {
		if _, err := NormalizePhone(input); !errors.Is(err, domainErrors.ErrInvalidInput) {
			t.Fatalf("expected invalid input for %q, got %v", input, err)
		}
	}
}

func TestValidateEmail(t *testing.T) {
	if !ValidateEmail("test@email.com") {
		t.Fatal("expected email to be valid")
	}
	for _, email := range []string{"", "not-an-email", "a@"} {
		if ValidateEmail(email) {
			t.Fatalf("expected %q to be invalid", email)
		}
	}
}

package usecase

import (
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	domainErrors "github.com/polkiloo/marketingapi/internal/domain/errors"
)

var validate = validator.New()

// ValidateEmail reports whether email is a syntactically valid address.
func ValidateEmail(email string) bool {
	return validate.Var(email, "required,email") == nil
}

// NormalizePhone converts a user supplied phone number into E.164.
// Ten digit numbers are treated as North American and get the +1 prefix.
func NormalizePhone(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", domainErrors.InvalidInput("phone number is required")
	}

	var digits strings.Builder
	for i, r := range raw {
		switch {
		case unicode.IsDigit(r):
			digits.WriteRune(r)
		case r == '+' && i == 0:
		case r == ' ', r == '-', r == '.', r == '(', r == ')':
		default:
			return "", domainErrors.InvalidInput("phone number contains invalid characters")
		}
	}

	d := digits.String()
	phone := "+" + d
	if !strings.HasPrefix(raw, "+") && len(d) == 10 {
		phone = "+1" + d
	}

	if err := validate.Var(phone, "e164"); err != nil {
		return "", domainErrors.InvalidInput("phone number is not a valid E.164 number")
	}
	return phone, nil
}

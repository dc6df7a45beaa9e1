package auth

import (
	"errors"
	"time"
)

var ErrInvalidToken = errors.New("invalid auth token")

// Claims is the identity carried inside an auth token.
type Claims struct {
	UserID   int64
	Username string
}

type Strategy interface {
	IssueToken(claims Claims) (string, error)
	ParseToken(token string) (Claims, error)
	Name() string
}

type Options struct {
	TTL    time.Duration
	Issuer string
	// Now overrides the clock, mostly for tests.
	Now func() time.Time
	// NewID generates the token id claim.
	NewID func() string
}

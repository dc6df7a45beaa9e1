package model

import (
	"strings"
	"time"
)

// User represents a registered operator of the marketing backend.
type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// UsernamePolicy decides how usernames are compared for uniqueness and login.
type UsernamePolicy struct {
	CaseInsensitive bool
}

// Key returns the value stored in the username index.
func (p UsernamePolicy) Key(username string) string {
	if p.CaseInsensitive {
		return strings.ToLower(username)
	}
	return username
}

// EmailKey returns the value stored in email indexes.
func EmailKey(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

package model

import "time"

// Customer is a marketing contact collected through the public sign-up form.
type Customer struct {
	ID          int64
	Name        string
	Email       string
	PhoneNumber string
	Birthday    time.Time
	Interest    string
	AgreeToSms  bool
	CreatedAt   time.Time
}

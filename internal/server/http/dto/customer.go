package dto

import (
	"time"

	"github.com/polkiloo/marketingapi/internal/domain/model"
)

// CustomerRequest is the public sign-up form payload.
type CustomerRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	PhoneNumber string `json:"phoneNumber" binding:"required"`
	Birthday    Date   `json:"birthday"`
	Interest    string `json:"interest"`
	AgreeToSms  bool   `json:"agreeToSms"`
}

func (r CustomerRequest) Model() model.Customer {
	return model.Customer{
		Name:        r.Name,
		Email:       r.Email,
		PhoneNumber: r.PhoneNumber,
		Birthday:    r.Birthday.Time,
		Interest:    r.Interest,
		AgreeToSms:  r.AgreeToSms,
	}
}

type CustomerResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phoneNumber"`
	Birthday    Date      `json:"birthday"`
	Interest    string    `json:"interest"`
	AgreeToSms  bool      `json:"agreeToSms"`
	CreatedAt   time.Time `json:"createdAt"`
}

func NewCustomerResponse(c model.Customer) CustomerResponse {
	return CustomerResponse{
		ID:          c.ID,
		Name:        c.Name,
		Email:       c.Email,
		PhoneNumber: c.PhoneNumber,
		Birthday:    Date{Time: c.Birthday},
		Interest:    c.Interest,
		AgreeToSms:  c.AgreeToSms,
		CreatedAt:   c.CreatedAt,
	}
}

func NewCustomerList(customers []model.Customer) []CustomerResponse {
	out := make([]CustomerResponse, 0, len(customers))
	for _, c := range customers {
		out = append(out, NewCustomerResponse(c))
	}
	return out
}

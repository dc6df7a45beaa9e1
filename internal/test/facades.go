package test

import (
	"context"
	"time"

	domainErrors "github.com/polkiloo/marketingapi/internal/domain/errors"
	"github.com/polkiloo/marketingapi/internal/domain/model"
)

// AuthFacadeStub provides controllable behaviour for auth endpoints.
type AuthFacadeStub struct {
	RegisterFn     func(context.Context, string, string, string) (*model.User, error)
	AuthenticateFn func(context.Context, string, string) (string, error)
}

// Register delegates to RegisterFn or echoes the input back as user 1.
func (s AuthFacadeStub) Register(ctx context.Context, username, password, email string) (*model.User, error) {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, username, password, email)
	}
	return &model.User{ID: 1, Username: username, Email: email, CreatedAt: time.Unix(0, 0).UTC()}, nil
}

func (s AuthFacadeStub) Authenticate(ctx context.Context, username, password string) (string, error) {
	if s.AuthenticateFn != nil {
		return s.AuthenticateFn(ctx, username, password)
	}
	return "token", nil
}

// UserFacadeStub simulates account lookups.
type UserFacadeStub struct {
	UsersFn  func(context.Context) ([]model.User, error)
	UserFn   func(context.Context, int64) (*model.User, error)
	DeleteFn func(context.Context, int64) error
}

func (s UserFacadeStub) Users(ctx context.Context) ([]model.User, error) {
	if s.UsersFn != nil {
		return s.UsersFn(ctx)
	}
	return []model.User{{ID: 1, Username: "test", Email: "test@email.com"}}, nil
}

func (s UserFacadeStub) User(ctx context.Context, id int64) (*model.User, error) {
	if s.UserFn != nil {
		return s.UserFn(ctx, id)
	}
	return &model.User{ID: id, Username: "test", Email: "test@email.com"}, nil
}

func (s UserFacadeStub) DeleteUser(ctx context.Context, id int64) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	return nil
}

// CustomerFacadeStub simulates the customer list.
type CustomerFacadeStub struct {
	AddFn           func(context.Context, model.Customer) (*model.Customer, error)
	CustomersFn     func(context.Context) ([]model.Customer, error)
	CustomerFn      func(context.Context, int64) (*model.Customer, error)
	ByEmailFn       func(context.Context, string) (*model.Customer, error)
	DeleteFn        func(context.Context, int64) error
	DeleteByEmailFn func(context.Context, string) error
}

func (s CustomerFacadeStub) AddCustomer(ctx context.Context, c model.Customer) (*model.Customer, error) {
	if s.AddFn != nil {
		return s.AddFn(ctx, c)
	}
	c.ID = 1
	return &c, nil
}

func (s CustomerFacadeStub) Customers(ctx context.Context) ([]model.Customer, error) {
	if s.CustomersFn != nil {
		return s.CustomersFn(ctx)
	}
	return []model.Customer{{ID: 1, Name: "Jane", Email: "jane@example.com", PhoneNumber: "+15551234567"}}, nil
}

func (s CustomerFacadeStub) Customer(ctx context.Context, id int64) (*model.Customer, error) {
	if s.CustomerFn != nil {
		return s.CustomerFn(ctx, id)
	}
	return &model.Customer{ID: id, Name: "Jane", Email: "jane@example.com", PhoneNumber: "+15551234567"}, nil
}

func (s CustomerFacadeStub) CustomerByEmail(ctx context.Context, email string) (*model.Customer, error) {
	if s.ByEmailFn != nil {
		return s.ByEmailFn(ctx, email)
	}
	return &model.Customer{ID: 1, Name: "Jane", Email: email, PhoneNumber: "+15551234567"}, nil
}

func (s CustomerFacadeStub) DeleteCustomer(ctx context.Context, id int64) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	return nil
}

func (s CustomerFacadeStub) DeleteCustomerByEmail(ctx context.Context, email string) error {
	if s.DeleteByEmailFn != nil {
		return s.DeleteByEmailFn(ctx, email)
	}
	return nil
}

// SmsFacadeStub simulates message delivery.
type SmsFacadeStub struct {
	SendFn func(context.Context, string, string) (string, error)
	BulkFn func(context.Context, string, string) (model.DispatchReport, error)
}

func (s SmsFacadeStub) SendSms(ctx context.Context, recipient, message string) (string, error) {
	if s.SendFn != nil {
		return s.SendFn(ctx, recipient, message)
	}
	return recipient, nil
}

func (s SmsFacadeStub) SendBulkSms(ctx context.Context, template, tag string) (model.DispatchReport, error) {
	if s.BulkFn != nil {
		return s.BulkFn(ctx, template, tag)
	}
	return model.DispatchReport{Requested: 2, Sent: 2}, nil
}

// HealthFacadeStub reports Err from Health.
type HealthFacadeStub struct {
	Err error
}

func (s HealthFacadeStub) Health(context.Context) error { return s.Err }

// MarketingFacadeStub combines every handler facade with a token resolver.
// Tokens equal to ValidToken resolve to user 1; anything else is rejected.
type MarketingFacadeStub struct {
	AuthFacadeStub
	UserFacadeStub
	CustomerFacadeStub
	SmsFacadeStub
	HealthFacadeStub
	ValidToken string
}

func (s MarketingFacadeStub) ResolveToken(_ context.Context, token string) (*model.User, error) {
	valid := s.ValidToken
	if valid == "" {
		valid = "token"
	}
	if token != valid {
		return nil, domainErrors.ErrUnauthorized
	}
	return &model.User{ID: 1, Username: "test", Email: "test@email.com"}, nil
}

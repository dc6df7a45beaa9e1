package handlers

import (
	"context"

	"github.com/polkiloo/marketingapi/internal/domain/model"
	"github.com/polkiloo/marketingapi/internal/server/http/middleware"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, username, password, email string) (*model.User, error)
	Authenticate(ctx context.Context, username, password string) (string, error)
}

// UserFacade exposes read and delete access to registered accounts.
type UserFacade interface {
	Users(ctx context.Context) ([]model.User, error)
	User(ctx context.Context, id int64) (*model.User, error)
	DeleteUser(ctx context.Context, id int64) error
}

// CustomerFacade manages the marketing contact list.
type CustomerFacade interface {
	AddCustomer(ctx context.Context, customer model.Customer) (*model.Customer, error)
	Customers(ctx context.Context) ([]model.Customer, error)
	Customer(ctx context.Context, id int64) (*model.Customer, error)
	CustomerByEmail(ctx context.Context, email string) (*model.Customer, error)
	DeleteCustomer(ctx context.Context, id int64) error
	DeleteCustomerByEmail(ctx context.Context, email string) error
}

// SmsFacade sends single and templated bulk messages.
type SmsFacade interface {
	SendSms(ctx context.Context, recipient, message string) (string, error)
	SendBulkSms(ctx context.Context, template, tag string) (model.DispatchReport, error)
}

type HealthFacade interface {
	Health(ctx context.Context) error
}

// MarketingFacade aggregates the full set of operations used across handlers.
type MarketingFacade interface {
	middleware.TokenResolver
	AuthFacade
	UserFacade
	CustomerFacade
	SmsFacade
	HealthFacade
}

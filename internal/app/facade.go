package app

import (
	"context"

	"github.com/polkiloo/marketingapi/internal/domain/model"
	"github.com/polkiloo/marketingapi/internal/domain/repository"
	"github.com/polkiloo/marketingapi/internal/usecase"
)

// MarketingFacade adapts the use cases to the operations the HTTP layer consumes.
type MarketingFacade struct {
	auth      *usecase.AuthUseCase
	users     *usecase.UserUseCase
	customers *usecase.CustomerUseCase
	sms       *usecase.SmsUseCase
	storage   repository.Factory
}

func NewMarketingFacade(
	auth *usecase.AuthUseCase,
	users *usecase.UserUseCase,
	customers *usecase.CustomerUseCase,
	sms *usecase.SmsUseCase,
	storage repository.Factory,
) *MarketingFacade {
	return &MarketingFacade{auth: auth, users: users, customers: customers, sms: sms, storage: storage}
}

func (f *MarketingFacade) Register(ctx context.Context, username, password, email string) (*model.User, error) {
	return f.auth.Register(ctx, username, password, email)
}

func (f *MarketingFacade) Authenticate(ctx context.Context, username, password string) (string, error) {
	_, token, err := f.auth.Authenticate(ctx, username, password)
	return token, err
}

func (f *MarketingFacade) ResolveToken(ctx context.Context, token string) (*model.User, error) {
	return f.auth.ResolveToken(ctx, token)
}

func (f *MarketingFacade) Users(ctx context.Context) ([]model.User, error) {
	return f.users.List(ctx)
}

func (f *MarketingFacade) User(ctx context.Context, id int64) (*model.User, error) {
	return f.users.Get(ctx, id)
}

func (f *MarketingFacade) DeleteUser(ctx context.Context, id int64) error {
	return f.users.Delete(ctx, id)
}

func (f *MarketingFacade) AddCustomer(ctx context.Context, customer model.Customer) (*model.Customer, error) {
	return f.customers.Create(ctx, customer)
}

func (f *MarketingFacade) Customers(ctx context.Context) ([]model.Customer, error) {
	return f.customers.List(ctx)
}

func (f *MarketingFacade) Customer(ctx context.Context, id int64) (*model.Customer, error) {
	return f.customers.Get(ctx, id)
}

func (f *MarketingFacade) CustomerByEmail(ctx context.Context, email string) (*model.Customer, error) {
	return f.customers.GetByEmail(ctx, email)
}

func (f *MarketingFacade) DeleteCustomer(ctx context.Context, id int64) error {
	return f.customers.Delete(ctx, id)
}

func (f *MarketingFacade) DeleteCustomerByEmail(ctx context.Context, email string) error {
	return f.customers.DeleteByEmail(ctx, email)
}

func (f *MarketingFacade) SendSms(ctx context.Context, recipient, message string) (string, error) {
	return f.sms.Send(ctx, recipient, message)
}

func (f *MarketingFacade) SendBulkSms(ctx context.Context, template, tag string) (model.DispatchReport, error) {
	return f.sms.SendBulk(ctx, template, tag)
}

// Health reports whether the storage backend is reachable.
func (f *MarketingFacade) Health(ctx context.Context) error {
	return f.storage.HealthCheck(ctx)
}

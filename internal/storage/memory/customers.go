package memory

import (
	"context"
	"fmt"

	domainErrors "github.com/polkiloo/marketingapi/internal/domain/errors"
	"github.com/polkiloo/marketingapi/internal/domain/model"
)

type customerRepo struct {
	storage *Storage
}

func (r *customerRepo) Create(ctx context.Context, customer model.Customer) (*model.Customer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if customer.CreatedAt.IsZero() {
		customer.CreatedAt = r.storage.now().UTC()
	}
	created, err := r.storage.customers.insertIfUnique(customer)
	if err != nil {
		return nil, fmt.Errorf("insert customer: %w", err)
	}
	return &created, nil
}

func (r *customerRepo) GetByID(_ context.Context, id int64) (*model.Customer, error) {
	customer, ok := r.storage.customers.get(id)
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	return &customer, nil
}

func (r *customerRepo) GetByEmail(_ context.Context, email string) (*model.Customer, error) {
	return r.lookup(domainErrors.FieldEmail, model.EmailKey(email))
}

func (r *customerRepo) GetByPhone(_ context.Context, phone string) (*model.Customer, error) {
	return r.lookup(domainErrors.FieldPhone, phone)
}

func (r *customerRepo) List(context.Context) ([]model.Customer, error) {
	return r.storage.customers.list(), nil
}

func (r *customerRepo) Delete(_ context.Context, id int64) error {
	if !r.storage.customers.delete(id) {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *customerRepo) lookup(field, key string) (*model.Customer, error) {
	customer, ok := r.storage.customers.lookup(field, key)
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	return &customer, nil
}

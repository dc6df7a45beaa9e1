package memory

import (
	"context"
	"fmt"

	domainErrors "github.com/polkiloo/marketingapi/internal/domain/errors"
	"github.com/polkiloo/marketingapi/internal/domain/model"
)

type userRepo struct {
	storage *Storage
}

func (r *userRepo) Create(ctx context.Context, user model.User) (*model.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = r.storage.now().UTC()
	}
	created, err := r.storage.users.insertIfUnique(user)
	if err != nil {
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return &created, nil
}

func (r *userRepo) GetByUsername(_ context.Context, username string) (*model.User, error) {
	return r.lookup(domainErrors.FieldUsername, r.storage.policy.Key(username))
}

func (r *userRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	return r.lookup(domainErrors.FieldEmail, model.EmailKey(email))
}

func (r *userRepo) GetByID(_ context.Context, id int64) (*model.User, error) {
	user, ok := r.storage.users.get(id)
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	return &user, nil
}

func (r *userRepo) List(context.Context) ([]model.User, error) {
	return r.storage.users.list(), nil
}

func (r *userRepo) Delete(_ context.Context, id int64) error {
	if !r.storage.users.delete(id) {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *userRepo) lookup(field, key string) (*model.User, error) {
	user, ok := r.storage.users.lookup(field, key)
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	return &user, nil
}

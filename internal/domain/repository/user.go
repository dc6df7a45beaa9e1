package repository

import (
	"context"

	"github.com/polkiloo/marketingapi/internal/domain/model"
)

// UserRepository describes persistence operations for users.
//
// Create must check both unique indexes and insert atomically, failing with
// a ConflictError naming the index that already holds the value.
type UserRepository interface {
	Create(ctx context.Context, user model.User) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	Delete(ctx context.Context, id int64) error
}

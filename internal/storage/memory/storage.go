package memory

import (
	"context"
	"log/slog"
	"time"

	domainErrors "github.com/polkiloo/marketingapi/internal/domain/errors"
	"github.com/polkiloo/marketingapi/internal/domain/model"
	"github.com/polkiloo/marketingapi/internal/domain/repository"
)

// Storage keeps users and customers in process memory.
type Storage struct {
	users     *table[model.User]
	customers *table[model.Customer]
	policy    model.UsernamePolicy
	logger    *slog.Logger
	now       func() time.Time
}

var _ repository.Factory = (*Storage)(nil)

// New creates an empty in-memory storage.
func New(policy model.UsernamePolicy, logger *slog.Logger) *Storage {
	users := newTable(func(u *model.User, id int64) { u.ID = id })
	users.addIndex(domainErrors.FieldUsername, func(u model.User) string { return policy.Key(u.Username) })
	users.addIndex(domainErrors.FieldEmail, func(u model.User) string { return model.EmailKey(u.Email) })

	customers := newTable(func(c *model.Customer, id int64) { c.ID = id })
	customers.addIndex(domainErrors.FieldEmail, func(c model.Customer) string { return model.EmailKey(c.Email) })
	customers.addIndex(domainErrors.FieldPhone, func(c model.Customer) string { return c.PhoneNumber })

	return &Storage{
		users:     users,
		customers: customers,
		policy:    policy,
		logger:    logger,
		now:       time.Now,
	}
}

func (s *Storage) Users() repository.UserRepository {
	return &userRepo{storage: s}
}

func (s *Storage) Customers() repository.CustomerRepository {
	return &customerRepo{storage: s}
}

// HealthCheck always succeeds for in-memory storage.
func (s *Storage) HealthCheck(context.Context) error { return nil }

func (s *Storage) Close() {
	s.logger.Info("in-memory storage released")
}

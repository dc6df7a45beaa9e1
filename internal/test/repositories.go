package test

import (
	"context"
	"sort"

	domainErrors "github.com/polkiloo/marketingapi/internal/domain/errors"
	"github.com/polkiloo/marketingapi/internal/domain/model"
	"github.com/polkiloo/marketingapi/internal/domain/repository"
)

// UserRepositoryStub stores users in maps and lets tests force failures.
// CreateErr only affects Create, which makes racing-registration paths reachable.
type UserRepositoryStub struct {
	ByUsername map[string]*model.User
	ByEmail    map[string]*model.User
	ByID       map[int64]*model.User
	Next       int64
	Err        error
	CreateErr  error
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		ByUsername: make(map[string]*model.User),
		ByEmail:    make(map[string]*model.User),
		ByID:       make(map[int64]*model.User),
		Next:       1,
	}
}

func (s *UserRepositoryStub) Create(_ context.Context, user model.User) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.CreateErr != nil {
		return nil, s.CreateErr
	}
	if _, exists := s.ByUsername[user.Username]; exists {
		return nil, domainErrors.NewConflict(domainErrors.FieldUsername)
	}
	if _, exists := s.ByEmail[model.EmailKey(user.Email)]; exists {
		return nil, domainErrors.NewConflict(domainErrors.FieldEmail)
	}
	if s.Next == 0 {
		s.Next = 1
	}
	user.ID = s.Next
	s.Next++
	stored := user
	s.ByUsername[user.Username] = &stored
	s.ByEmail[model.EmailKey(user.Email)] = &stored
	s.ByID[user.ID] = &stored
	return &user, nil
}

func (s *UserRepositoryStub) GetByUsername(_ context.Context, username string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByUsername[username]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

func (s *UserRepositoryStub) GetByEmail(_ context.Context, email string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByEmail[model.EmailKey(email)]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

func (s *UserRepositoryStub) GetByID(_ context.Context, id int64) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

func (s *UserRepositoryStub) List(context.Context) ([]model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	out := make([]model.User, 0, len(s.ByID))
	for _, u := range s.ByID {
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *UserRepositoryStub) Delete(_ context.Context, id int64) error {
	if s.Err != nil {
		return s.Err
	}
	user, ok := s.ByID[id]
	if !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.ByID, id)
	delete(s.ByUsername, user.Username)
	delete(s.ByEmail, model.EmailKey(user.Email))
	return nil
}

// CustomerRepositoryStub keeps customers in a slice; lookups scan it.
type CustomerRepositoryStub struct {
	Items     []model.Customer
	Err       error
	CreateErr error
}

func (s *CustomerRepositoryStub) Create(_ context.Context, c model.Customer) (*model.Customer, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.CreateErr != nil {
		return nil, s.CreateErr
	}
	for _, existing := range s.Items {
		if model.EmailKey(existing.Email) == model.EmailKey(c.Email) {
			return nil, domainErrors.NewConflict(domainErrors.FieldEmail)
		}
		if existing.PhoneNumber == c.PhoneNumber {
			return nil, domainErrors.NewConflict(domainErrors.FieldPhone)
		}
	}
	c.ID = int64(len(s.Items) + 1)
	s.Items = append(s.Items, c)
	return &c, nil
}

func (s *CustomerRepositoryStub) GetByID(_ context.Context, id int64) (*model.Customer, error) {
	return s.find(func(c model.Customer) bool { return c.ID == id })
}

func (s *CustomerRepositoryStub) GetByEmail(_ context.Context, email string) (*model.Customer, error) {
	return s.find(func(c model.Customer) bool { return model.EmailKey(c.Email) == model.EmailKey(email) })
}

func (s *CustomerRepositoryStub) GetByPhone(_ context.Context, phone string) (*model.Customer, error) {
	return s.find(func(c model.Customer) bool { return c.PhoneNumber == phone })
}

func (s *CustomerRepositoryStub) List(context.Context) ([]model.Customer, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return append([]model.Customer(nil), s.Items...), nil
}

func (s *CustomerRepositoryStub) Delete(_ context.Context, id int64) error {
	if s.Err != nil {
		return s.Err
	}
	for i, c := range s.Items {
		if c.ID == id {
			s.Items = append(s.Items[:i], s.Items[i+1:]...)
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

func (s *CustomerRepositoryStub) find(match func(model.Customer) bool) (*model.Customer, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for _, c := range s.Items {
		if match(c) {
			found := c
			return &found, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

var _ repository.UserRepository = (*UserRepositoryStub)(nil)
var _ repository.CustomerRepository = (*CustomerRepositoryStub)(nil)

package usecase

import (
	"context"
	"errors"
	"strings"

	domainErrors "github.com/polkiloo/marketingapi/internal/domain/errors"
	"github.com/polkiloo/marketingapi/internal/domain/model"
	"github.com/polkiloo/marketingapi/internal/domain/repository"
)

// CustomerUseCase manages marketing contacts.
type CustomerUseCase struct {
	customers repository.CustomerRepository
}

func NewCustomerUseCase(customers repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{customers: customers}
}

// Create validates and stores a customer. Email and phone number must be unused.
func (u *CustomerUseCase) Create(ctx context.Context, c model.Customer) (*model.Customer, error) {
	c.Name = strings.TrimSpace(c.Name)
	c.Email = strings.TrimSpace(c.Email)
	c.Interest = strings.TrimSpace(c.Interest)
	if c.Name == "" {
		return nil, domainErrors.InvalidInput("name is required")
	}
	if !ValidateEmail(c.Email) {
		return nil, domainErrors.InvalidInput("a valid email is required")
	}
	phone, err := NormalizePhone(c.PhoneNumber)
	if err != nil {
		return nil, err
	}
	c.PhoneNumber = phone

	if _, err := u.customers.GetByEmail(ctx, c.Email); err == nil {
		return nil, domainErrors.ErrDuplicateEmail
	} else if !errors.Is(err, domainErrors.ErrNotFound) {
		return nil, err
	}
	if _, err := u.customers.GetByPhone(ctx, c.PhoneNumber); err == nil {
		return nil, domainErrors.ErrDuplicatePhone
	} else if !errors.Is(err, domainErrors.ErrNotFound) {
		return nil, err
	}

	created, err := u.customers.Create(ctx, c)
	if err != nil {
		return nil, translateConflict(err)
	}
	return created, nil
}

func (u *CustomerUseCase) List(ctx context.Context) ([]model.Customer, error) {
	return u.customers.List(ctx)
}

func (u *CustomerUseCase) Get(ctx context.Context, id int64) (*model.Customer, error) {
	return u.customers.GetByID(ctx, id)
}

func (u *CustomerUseCase) GetByEmail(ctx context.Context, email string) (*model.Customer, error) {
	return u.customers.GetByEmail(ctx, email)
}

func (u *CustomerUseCase) Delete(ctx context.Context, id int64) error {
	return u.customers.Delete(ctx, id)
}

func (u *CustomerUseCase) DeleteByEmail(ctx context.Context, email string) error {
	c, err := u.customers.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	return u.customers.Delete(ctx, c.ID)
}

// Recipients returns the SMS opted-in customers selected by tag.
//
// Accepted tags: "all", "event:<interest>" and "interest:<interest>".
func (u *CustomerUseCase) Recipients(ctx context.Context, tag string) ([]model.Customer, error) {
	match, err := parseRecipientTag(tag)
	if err != nil {
		return nil, err
	}

	all, err := u.customers.List(ctx)
	if err != nil {
		return nil, err
	}

	var selected []model.Customer
	for _, c := range all {
		if c.AgreeToSms && match(c) {
			selected = append(selected, c)
		}
	}
	return selected, nil
}

func parseRecipientTag(tag string) (func(model.Customer) bool, error) {
	tag = strings.TrimSpace(tag)
	if strings.EqualFold(tag, "all") {
		return func(model.Customer) bool { return true }, nil
	}

	kind, value, ok := strings.Cut(tag, ":")
	value = strings.TrimSpace(value)
	if !ok || value == "" {
		return nil, domainErrors.InvalidInput("recipient tag must be \"all\" or \"event:<interest>\"")
	}

	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "event", "interest":
		return func(c model.Customer) bool { return strings.EqualFold(c.Interest, value) }, nil
	default:
		return nil, domainErrors.InvalidInput("unknown recipient tag " + kind)
	}
}

package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	domainErrors "github.com/polkiloo/marketingapi/internal/domain/errors"
	"github.com/polkiloo/marketingapi/internal/domain/model"
	"github.com/polkiloo/marketingapi/internal/domain/repository"
	"github.com/polkiloo/marketingapi/internal/observability/metrics"
	pkgAuth "github.com/polkiloo/marketingapi/internal/pkg/auth"
)

// AuthUseCase registers users, authenticates them and resolves bearer tokens.
type AuthUseCase struct {
	users  repository.UserRepository
	hasher pkgAuth.PasswordHasher
	tokens pkgAuth.Strategy

	dummyOnce sync.Once
	dummyHash string
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(users repository.UserRepository, hasher pkgAuth.PasswordHasher, strategy pkgAuth.Strategy) *AuthUseCase {
	return &AuthUseCase{users: users, hasher: hasher, tokens: strategy}
}

// Register creates a new user. Username and email must both be unused.
func (u *AuthUseCase) Register(ctx context.Context, username, password, email string) (*model.User, error) {
	usr, err := u.register(ctx, username, password, email)
	metrics.RegistrationsTotal.WithLabelValues(resultLabel(err)).Inc()
	return usr, err
}

func (u *AuthUseCase) register(ctx context.Context, username, password, email string) (*model.User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	switch {
	case username == "":
		return nil, domainErrors.InvalidInput("username is required")
	case password == "":
		return nil, domainErrors.InvalidInput("password is required")
	case !ValidateEmail(email):
		return nil, domainErrors.InvalidInput("a valid email is required")
	}

	if _, err := u.users.GetByUsername(ctx, username); err == nil {
		return nil, domainErrors.ErrDuplicateUsername
	} else if !errors.Is(err, domainErrors.ErrNotFound) {
		return nil, err
	}
	if _, err := u.users.GetByEmail(ctx, email); err == nil {
		return nil, domainErrors.ErrDuplicateEmail
	} else if !errors.Is(err, domainErrors.ErrNotFound) {
		return nil, err
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		if errors.Is(err, pkgAuth.ErrPasswordTooLong) {
			return nil, domainErrors.InvalidInput(err.Error())
		}
		return nil, fmt.Errorf("hash password: %w", err)
	}

	// the store re-checks both indexes atomically, a concurrent winner surfaces here
	usr, err := u.users.Create(ctx, model.User{Username: username, Email: email, PasswordHash: hash})
	if err != nil {
		return nil, translateConflict(err)
	}
	return usr, nil
}

// Authenticate validates credentials and returns the user with a fresh token.
// Unknown usernames and wrong passwords are indistinguishable to the caller.
func (u *AuthUseCase) Authenticate(ctx context.Context, username, password string) (*model.User, string, error) {
	usr, token, err := u.authenticate(ctx, username, password)
	metrics.LoginsTotal.WithLabelValues(resultLabel(err)).Inc()
	return usr, token, err
}

func (u *AuthUseCase) authenticate(ctx context.Context, username, password string) (*model.User, string, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	usr, err := u.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			_ = u.hasher.Compare(u.timingHash(), password)
			return nil, "", domainErrors.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := u.hasher.Compare(usr.PasswordHash, password); err != nil {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	token, err := u.tokens.IssueToken(pkgAuth.Claims{UserID: usr.ID, Username: usr.Username})
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}

	return usr, token, nil
}

// ResolveToken validates a bearer token and loads the user it names.
func (u *AuthUseCase) ResolveToken(ctx context.Context, token string) (*model.User, error) {
	usr, err := u.resolveToken(ctx, token)
	metrics.TokenValidationsTotal.WithLabelValues(resultLabel(err)).Inc()
	return usr, err
}

func (u *AuthUseCase) resolveToken(ctx context.Context, token string) (*model.User, error) {
	if token == "" {
		return nil, domainErrors.ErrUnauthorized
	}

	claims, err := u.tokens.ParseToken(token)
	if err != nil {
		if errors.Is(err, pkgAuth.ErrInvalidToken) {
			return nil, fmt.Errorf("%w: %v", domainErrors.ErrUnauthorized, err)
		}
		return nil, err
	}

	usr, err := u.users.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: user no longer exists", domainErrors.ErrUnauthorized)
		}
		return nil, err
	}
	return usr, nil
}

// timingHash is compared against when the username is unknown so that
// both failure paths cost one hash comparison.
func (u *AuthUseCase) timingHash() string {
	u.dummyOnce.Do(func() {
		u.dummyHash, _ = u.hasher.Hash("timing-equalizer")
	})
	return u.dummyHash
}

func translateConflict(err error) error {
	field, ok := domainErrors.ConflictField(err)
	if !ok {
		return err
	}
	switch field {
	case domainErrors.FieldUsername:
		return domainErrors.ErrDuplicateUsername
	case domainErrors.FieldEmail:
		return domainErrors.ErrDuplicateEmail
	case domainErrors.FieldPhone:
		return domainErrors.ErrDuplicatePhone
	default:
		return err
	}
}

func resultLabel(err error) string {
	if err != nil {
		return "failure"
	}
	return "success"
}

package memory

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainErrors "github.com/polkiloo/marketingapi/internal/domain/errors"
	"github.com/polkiloo/marketingapi/internal/domain/model"
)

func newTestStorage(policy model.UsernamePolicy) *Storage {
	return New(policy, slog.New(slog.NewJSONHandler(io.Discard, nil)))
}

func TestUserRepoCreateAssignsSequentialIDs(t *testing.T) {
	users := newTestStorage(model.UsernamePolicy{}).Users()
	ctx := context.Background()

	first, err := users.Create(ctx, model.User{Username: "test", Email: "test@email.com", PasswordHash: "h"})
	require.NoError(t, err)
	second, err := users.Create(ctx, model.User{Username: "other", Email: "other@email.com", PasswordHash: "h"})
	require.NoError(t, err)

	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)
	assert.False(t, first.CreatedAt.IsZero())

	list, err := users.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "test", list[0].Username)
	assert.Equal(t, "other", list[1].Username)
}

func TestUserRepoRejectsDuplicatesPerIndex(t *testing.T) {
	users := newTestStorage(model.UsernamePolicy{}).Users()
	ctx := context.Background()

	_, err := users.Create(ctx, model.User{Username: "test", Email: "test@email.com"})
	require.NoError(t, err)

	_, err = users.Create(ctx, model.User{Username: "test", Email: "other@email.com"})
	require.ErrorIs(t, err, domainErrors.ErrConflict)
	field, _ := domainErrors.ConflictField(err)
	assert.Equal(t, domainErrors.FieldUsername, field)

	_, err = users.Create(ctx, model.User{Username: "fresh", Email: "TEST@email.com"})
	require.ErrorIs(t, err, domainErrors.ErrConflict)
	field, _ = domainErrors.ConflictField(err)
	assert.Equal(t, domainErrors.FieldEmail, field)

	// a rejected insert must not leave a partial entry in the other index
	_, err = users.GetByUsername(ctx, "fresh")
	assert.ErrorIs(t, err, domainErrors.ErrNotFound)
}

func TestUserRepoUsernameCasePolicy(t *testing.T) {
	ctx := context.Background()

	sensitive := newTestStorage(model.UsernamePolicy{}).Users()
	_, err := sensitive.Create(ctx, model.User{Username: "Test", Email: "a@email.com"})
	require.NoError(t, err)
	_, err = sensitive.Create(ctx, model.User{Username: "test", Email: "b@email.com"})
	require.NoError(t, err)
	_, err = sensitive.GetByUsername(ctx, "TEST")
	assert.ErrorIs(t, err, domainErrors.ErrNotFound)

	insensitive := newTestStorage(model.UsernamePolicy{CaseInsensitive: true}).Users()
	_, err = insensitive.Create(ctx, model.User{Username: "Test", Email: "a@email.com"})
	require.NoError(t, err)
	_, err = insensitive.Create(ctx, model.User{Username: "test", Email: "b@email.com"})
	require.ErrorIs(t, err, domainErrors.ErrConflict)
	found, err := insensitive.GetByUsername(ctx, "TEST")
	require.NoError(t, err)
	assert.Equal(t, "Test", found.Username)
}

func TestUserRepoDeleteReleasesBothIndexes(t *testing.T) {
	users := newTestStorage(model.UsernamePolicy{}).Users()
	ctx := context.Background()

	created, err := users.Create(ctx, model.User{Username: "test", Email: "test@email.com"})
	require.NoError(t, err)

	require.NoError(t, users.Delete(ctx, created.ID))
	assert.ErrorIs(t, users.Delete(ctx, created.ID), domainErrors.ErrNotFound)

	_, err = users.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, domainErrors.ErrNotFound)
	_, err = users.GetByEmail(ctx, "test@email.com")
	assert.ErrorIs(t, err, domainErrors.ErrNotFound)

	again, err := users.Create(ctx, model.User{Username: "test", Email: "test@email.com"})
	require.NoError(t, err)
	assert.NotEqual(t, created.ID, again.ID)
}

func TestUserRepoConcurrentRegistrationSingleWinner(t *testing.T) {
	users := newTestStorage(model.UsernamePolicy{}).Users()
	ctx := context.Background()

	const attempts = 32
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
		conflicts int
	)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := users.Create(ctx, model.User{Username: "race", Email: fmt.Sprintf("race%d@email.com", i)})
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				successes++
			} else if assert.ErrorIs(t, err, domainErrors.ErrConflict) {
				conflicts++
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, successes)
	assert.Equal(t, attempts-1, conflicts)
}

func TestUserRepoCreateHonoursCancelledContext(t *testing.T) {
	users := newTestStorage(model.UsernamePolicy{}).Users()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := users.Create(ctx, model.User{Username: "test", Email: "test@email.com"})
	require.ErrorIs(t, err, context.Canceled)
}

func TestCustomerRepoIndexes(t *testing.T) {
	customers := newTestStorage(model.UsernamePolicy{}).Customers()
	ctx := context.Background()

	created, err := customers.Create(ctx, model.Customer{
		Name:        "Namey McNameFace",
		Email:       "McNameFace@email.com",
		PhoneNumber: "+18777804236",
		Interest:    "EDM",
		AgreeToSms:  true,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)

	_, err = customers.Create(ctx, model.Customer{Name: "x", Email: "mcnameface@email.com", PhoneNumber: "+12188393625"})
	field, _ := domainErrors.ConflictField(err)
	assert.Equal(t, domainErrors.FieldEmail, field)

	_, err = customers.Create(ctx, model.Customer{Name: "x", Email: "x@email.com", PhoneNumber: "+18777804236"})
	field, _ = domainErrors.ConflictField(err)
	assert.Equal(t, domainErrors.FieldPhone, field)

	byEmail, err := customers.GetByEmail(ctx, "MCNAMEFACE@email.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byEmail.ID)

	byPhone, err := customers.GetByPhone(ctx, "+18777804236")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byPhone.ID)

	require.NoError(t, customers.Delete(ctx, created.ID))
	_, err = customers.GetByPhone(ctx, "+18777804236")
	assert.ErrorIs(t, err, domainErrors.ErrNotFound)
	list, err := customers.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestStorageHealthCheck(t *testing.T) {
	s := newTestStorage(model.UsernamePolicy{})
	assert.NoError(t, s.HealthCheck(context.Background()))
	s.Close()
}

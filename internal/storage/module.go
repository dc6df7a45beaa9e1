package storage

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/marketingapi/internal/config"
	"github.com/polkiloo/marketingapi/internal/domain/model"
	"github.com/polkiloo/marketingapi/internal/domain/repository"
	"github.com/polkiloo/marketingapi/internal/storage/memory"
	"github.com/polkiloo/marketingapi/internal/storage/postgres"
)

// Module wires the configured storage backend and its repositories.
var Module = fx.Options(
	fx.Provide(newFactory),
	fx.Provide(
		func(f repository.Factory) repository.UserRepository { return f.Users() },
		func(f repository.Factory) repository.CustomerRepository { return f.Customers() },
	),
	fx.Invoke(registerLifecycle),
)

type factoryParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

func newFactory(p factoryParams) (repository.Factory, error) {
	policy := model.UsernamePolicy{CaseInsensitive: p.Config.UsernameCaseInsensitive}
	if p.Config.DatabaseURI == "" {
		p.Logger.Warn("DATABASE_URI is empty, data will not survive restarts")
		return memory.New(policy, p.Logger), nil
	}

	s, err := postgres.New(p.Ctx, p.Config.DatabaseURI, policy, p.Logger)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func registerLifecycle(lc fx.Lifecycle, factory repository.Factory) {
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			factory.Close()
			return nil
		},
	})
}

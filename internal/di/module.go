package di

import (
	"go.uber.org/fx"

	"github.com/polkiloo/marketingapi/internal/adapter/sms"
	"github.com/polkiloo/marketingapi/internal/app"
	"github.com/polkiloo/marketingapi/internal/config"
	"github.com/polkiloo/marketingapi/internal/logger"
	"github.com/polkiloo/marketingapi/internal/pkg/auth"
	"github.com/polkiloo/marketingapi/internal/server/http/handlers"
	"github.com/polkiloo/marketingapi/internal/server/http/router"
	"github.com/polkiloo/marketingapi/internal/storage"
	"github.com/polkiloo/marketingapi/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		storage.Module,
		sms.Module,
		usecase.Module,
		fx.Provide(func(f *app.MarketingFacade) handlers.MarketingFacade { return f }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}

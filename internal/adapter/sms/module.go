package sms

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/marketingapi/internal/config"
	"github.com/polkiloo/marketingapi/internal/usecase"
)

// Module exposes the SMS sender implementation to fx graph.
var Module = fx.Provide(newSender)

type senderParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newSender(p senderParams) (usecase.SmsSender, error) {
	if p.Config.SMSProviderURL == "" {
		p.Logger.Warn("sms provider url not configured, messages will only be logged")
		return NewLogSender(p.Logger), nil
	}
	return NewHTTPSender(p.Config.SMSProviderURL, p.Config.SMSProviderToken, p.Config.SMSSenderID, p.Logger)
}

package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	domainErrors "github.com/polkiloo/marketingapi/internal/domain/errors"
	"github.com/polkiloo/marketingapi/internal/domain/model"
	"github.com/polkiloo/marketingapi/internal/observability/metrics"
)

// SmsSender delivers one message to the provider.
type SmsSender interface {
	Send(ctx context.Context, msg model.SmsMessage) error
}

// BulkDispatcher fans a batch of messages out to delivery workers.
type BulkDispatcher interface {
	Dispatch(ctx context.Context, msgs []model.SmsMessage) (model.DispatchReport, error)
}

// SmsUseCase sends single and templated bulk messages.
type SmsUseCase struct {
	customers  *CustomerUseCase
	sender     SmsSender
	dispatcher BulkDispatcher
	logger     *slog.Logger
}

func NewSmsUseCase(customers *CustomerUseCase, sender SmsSender, dispatcher BulkDispatcher, logger *slog.Logger) *SmsUseCase {
	return &SmsUseCase{customers: customers, sender: sender, dispatcher: dispatcher, logger: logger}
}

// Send delivers message to a single recipient synchronously.
func (u *SmsUseCase) Send(ctx context.Context, recipient, message string) (string, error) {
	phone, err := NormalizePhone(recipient)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(message) == "" {
		return "", domainErrors.InvalidInput("message is required")
	}

	if err := u.sender.Send(ctx, model.SmsMessage{Recipient: phone, Body: message}); err != nil {
		metrics.SmsMessagesTotal.WithLabelValues("single", "failed").Inc()
		u.logger.Warn("sms delivery failed", slog.String("recipient", phone), slog.String("error", err.Error()))
		return "", fmt.Errorf("%w: %v", domainErrors.ErrDeliveryFailed, err)
	}
	metrics.SmsMessagesTotal.WithLabelValues("single", "sent").Inc()
	return phone, nil
}

// SendBulk renders template for every customer selected by tag and dispatches the batch.
func (u *SmsUseCase) SendBulk(ctx context.Context, template, tag string) (model.DispatchReport, error) {
	if strings.TrimSpace(template) == "" {
		return model.DispatchReport{}, domainErrors.InvalidInput("message template is required")
	}

	recipients, err := u.customers.Recipients(ctx, tag)
	if err != nil {
		return model.DispatchReport{}, err
	}
	if len(recipients) == 0 {
		return model.DispatchReport{}, nil
	}

	msgs := make([]model.SmsMessage, 0, len(recipients))
	for _, c := range recipients {
		msgs = append(msgs, model.SmsMessage{Recipient: c.PhoneNumber, Body: RenderTemplate(template, c)})
	}

	report, err := u.dispatcher.Dispatch(ctx, msgs)
	if err != nil {
		return report, err
	}
	u.logger.Info("bulk sms dispatched",
		slog.String("tag", tag),
		slog.Int("requested", report.Requested),
		slog.Int("sent", report.Sent),
		slog.Int("failed", report.Failed),
	)
	return report, nil
}

// RenderTemplate substitutes {name}, {email} and {interest} placeholders.
func RenderTemplate(template string, c model.Customer) string {
	return strings.NewReplacer(
		"{name}", c.Name,
		"{email}", c.Email,
		"{interest}", c.Interest,
	).Replace(template)
}

package test

import (
	"context"
	"sync"

	"github.com/polkiloo/marketingapi/internal/domain/model"
)

// SenderStub records delivered messages. SendFn overrides the default success.
type SenderStub struct {
	mu     sync.Mutex
	Sent   []model.SmsMessage
	SendFn func(context.Context, model.SmsMessage) error
}

func (s *SenderStub) Send(ctx context.Context, msg model.SmsMessage) error {
	if s.SendFn != nil {
		if err := s.SendFn(ctx, msg); err != nil {
			return err
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Sent = append(s.Sent, msg)
	return nil
}

// Messages returns a copy of everything sent so far.
func (s *SenderStub) Messages() []model.SmsMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.SmsMessage(nil), s.Sent...)
}

// DispatcherStub delivers batches inline through Sender.
type DispatcherStub struct {
	Sender *SenderStub
	Err    error
}

func (d *DispatcherStub) Dispatch(ctx context.Context, msgs []model.SmsMessage) (model.DispatchReport, error) {
	report := model.DispatchReport{Requested: len(msgs)}
	if d.Err != nil {
		return report, d.Err
	}
	for _, msg := range msgs {
		if err := d.Sender.Send(ctx, msg); err != nil {
			report.Failed++
			continue
		}
		report.Sent++
	}
	return report, nil
}

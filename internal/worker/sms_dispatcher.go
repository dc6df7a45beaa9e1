package worker

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/polkiloo/marketingapi/internal/adapter/sms"
	"github.com/polkiloo/marketingapi/internal/domain/model"
	"github.com/polkiloo/marketingapi/internal/observability/metrics"
	"github.com/polkiloo/marketingapi/internal/usecase"
)

// ErrDispatcherStopped is returned by Dispatch when the pool is not running.
var ErrDispatcherStopped = errors.New("sms dispatcher is not running")

const defaultMaxAttempts = 3

type job struct {
	ctx    context.Context
	msg    model.SmsMessage
	result chan<- error
}

// SmsDispatcher delivers bulk batches over a fixed pool of workers.
type SmsDispatcher struct {
	sender      usecase.SmsSender
	workers     int
	maxAttempts int
	logger      *slog.Logger

	jobs   chan job
	wg     sync.WaitGroup
	runCtx context.Context
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewSmsDispatcher constructs the worker pool. It delivers nothing until Start.
func NewSmsDispatcher(sender usecase.SmsSender, workers int, logger *slog.Logger) *SmsDispatcher {
	if workers <= 0 {
		workers = 1
	}
	return &SmsDispatcher{
		sender:      sender,
		workers:     workers,
		maxAttempts: defaultMaxAttempts,
		logger:      logger,
		jobs:        make(chan job),
	}
}

// Start launches background workers. Cancellation of ctx is not inherited:
// the pool runs until Stop.
func (d *SmsDispatcher) Start(ctx context.Context) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.cancel != nil {
		return
	}

	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	d.runCtx = runCtx
	d.cancel = cancel

	for i := 0; i < d.workers; i++ {
		d.wg.Add(1)
		go d.worker(runCtx)
	}
}

// Stop waits for all workers to finish their current message.
func (d *SmsDispatcher) Stop() {
	d.mu.Lock()
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
		d.runCtx = nil
	}
	d.mu.Unlock()

	d.wg.Wait()
}

// Dispatch hands msgs to the pool and waits for every accepted message.
// Messages not accepted before ctx ends or the pool stops count as failed.
func (d *SmsDispatcher) Dispatch(ctx context.Context, msgs []model.SmsMessage) (model.DispatchReport, error) {
	report := model.DispatchReport{Requested: len(msgs)}

	d.mu.Lock()
	runCtx := d.runCtx
	d.mu.Unlock()
	if runCtx == nil {
		return report, ErrDispatcherStopped
	}

	results := make(chan error, len(msgs))
	submitted := 0
submit:
	for _, msg := range msgs {
		metrics.SmsQueueDepth.Inc()
		select {
		case d.jobs <- job{ctx: ctx, msg: msg, result: results}:
			submitted++
		case <-ctx.Done():
			metrics.SmsQueueDepth.Dec()
			break submit
		case <-runCtx.Done():
			metrics.SmsQueueDepth.Dec()
			break submit
		}
	}

	for i := 0; i < submitted; i++ {
		if err := <-results; err != nil {
			report.Failed++
			continue
		}
		report.Sent++
	}

	if skipped := len(msgs) - submitted; skipped > 0 {
		report.Failed += skipped
		metrics.SmsMessagesTotal.WithLabelValues("bulk", "failed").Add(float64(skipped))
		d.logger.Warn("bulk sms dispatch interrupted", slog.Int("skipped", skipped))
	}
	return report, nil
}

func (d *SmsDispatcher) worker(runCtx context.Context) {
	defer d.wg.Done()
	for {
		select {
		case <-runCtx.Done():
			return
		case j := <-d.jobs:
			metrics.SmsQueueDepth.Dec()
			err := d.deliver(runCtx, j)
			if err != nil {
				metrics.SmsMessagesTotal.WithLabelValues("bulk", "failed").Inc()
				d.logger.Warn("sms delivery failed", slog.String("recipient", j.msg.Recipient), slog.String("error", err.Error()))
			} else {
				metrics.SmsMessagesTotal.WithLabelValues("bulk", "sent").Inc()
			}
			j.result <- err
		}
	}
}

func (d *SmsDispatcher) deliver(runCtx context.Context, j job) error {
	for attempt := 1; ; attempt++ {
		err := d.sender.Send(j.ctx, j.msg)
		var tooMany sms.TooManyRequestsError
		if err == nil || !errors.As(err, &tooMany) || attempt >= d.maxAttempts {
			return err
		}

		d.logger.Warn("sms provider rate limited",
			slog.Duration("retry_after", tooMany.RetryAfter),
			slog.Int("attempt", attempt),
		)
		timer := time.NewTimer(tooMany.RetryAfter)
		select {
		case <-j.ctx.Done():
			timer.Stop()
			return j.ctx.Err()
		case <-runCtx.Done():
			timer.Stop()
			return err
		case <-timer.C:
		}
	}
}

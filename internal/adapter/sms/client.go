package sms

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/polkiloo/marketingapi/internal/domain/model"
)

const defaultRetryAfter = 5 * time.Second

// TooManyRequestsError represents rate limiting signal from the SMS provider.
type TooManyRequestsError struct {
	RetryAfter time.Duration
}

func (e TooManyRequestsError) Error() string {
	return fmt.Sprintf("too many requests, retry after %s", e.RetryAfter)
}

// HTTPSender delivers messages through a provider speaking a small JSON API.
type HTTPSender struct {
	endpoint   *url.URL
	token      string
	senderID   string
	httpClient *http.Client
	logger     *slog.Logger
}

// request mirrors the JSON payload accepted by the provider.
type request struct {
	To   string `json:"to"`
	From string `json:"from,omitempty"`
	Body string `json:"body"`
}

// NewHTTPSender creates HTTP provider client with default timeout.
func NewHTTPSender(endpoint, token, senderID string, logger *slog.Logger) (*HTTPSender, error) {
	parsed, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("parse sms provider url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("sms provider url must be absolute")
	}
	return &HTTPSender{
		endpoint: parsed,
		token:    token,
		senderID: senderID,
		logger:   logger,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}, nil
}

// Send posts one message to the provider.
func (s *HTTPSender) Send(ctx context.Context, msg model.SmsMessage) error {
	payload, err := json.Marshal(request{To: msg.Recipient, From: s.senderID, Body: msg.Body})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint.String(), bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	case resp.StatusCode == http.StatusTooManyRequests:
		return TooManyRequestsError{RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After"))}
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		s.logger.Error("sms provider request failed", slog.Int("status", resp.StatusCode), slog.String("body", string(body)))
		return fmt.Errorf("sms provider error: %s", resp.Status)
	}
}

func parseRetryAfter(header string) time.Duration {
	if header == "" {
		return defaultRetryAfter
	}
	if seconds, err := strconv.Atoi(header); err == nil {
		return time.Duration(seconds) * time.Second
	}
	if t, err := http.ParseTime(header); err == nil {
		return time.Until(t)
	}
	return defaultRetryAfter
}

// LogSender only records messages. It stands in when no provider is configured.
type LogSender struct {
	logger *slog.Logger
}

func NewLogSender(logger *slog.Logger) *LogSender {
	return &LogSender{logger: logger}
}

func (s *LogSender) Send(ctx context.Context, msg model.SmsMessage) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.logger.Info("sms message",
		slog.String("recipient", msg.Recipient),
		slog.Int("length", len(msg.Body)),
	)
	return nil
}

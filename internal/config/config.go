package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress              string
	DatabaseURI             string
	JWTSecret               string
	JWTIssuer               string
	TokenTTL                time.Duration
	ShutdownTimeout         time.Duration
	SMSProviderURL          string
	SMSProviderToken        string
	SMSSenderID             string
	SMSWorkers              int
	LogLevel                string
	LogFile                 string
	UsernameCaseInsensitive bool
}

const (
	defaultRunAddress      = ":8080"
	defaultJWTSecret       = "change-me-in-production"
	defaultJWTIssuer       = "marketing-api"
	defaultTokenTTL        = 24 * time.Hour
	defaultShutdownTimeout = 10 * time.Second
	defaultSMSSenderID     = "MARKETING"
	defaultSMSWorkers      = 4
	defaultLogLevel        = "info"
)

// Load parses configuration from flags and environment variables.
func Load() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:              getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:             getString(lookup, "DATABASE_URI", ""),
		JWTSecret:               getString(lookup, "JWT_SECRET", defaultJWTSecret),
		JWTIssuer:               getString(lookup, "JWT_ISSUER", defaultJWTIssuer),
		TokenTTL:                getDuration(lookup, "TOKEN_TTL", defaultTokenTTL),
		ShutdownTimeout:         getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
		SMSProviderURL:          getString(lookup, "SMS_PROVIDER_URL", ""),
		SMSProviderToken:        getString(lookup, "SMS_PROVIDER_TOKEN", ""),
		SMSSenderID:             getString(lookup, "SMS_SENDER_ID", defaultSMSSenderID),
		SMSWorkers:              getInt(lookup, "SMS_WORKERS", defaultSMSWorkers),
		LogLevel:                getString(lookup, "LOG_LEVEL", defaultLogLevel),
		LogFile:                 getString(lookup, "LOG_FILE", ""),
		UsernameCaseInsensitive: getBool(lookup, "USERNAME_CASE_INSENSITIVE", false),
	}

	fs := flag.NewFlagSet("marketing", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		tokenTTLStr        = cfg.TokenTTL.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN, in-memory storage when empty")
	fs.StringVar(&cfg.SMSProviderURL, "s", cfg.SMSProviderURL, "SMS provider endpoint, log-only delivery when empty")
	fs.StringVar(&cfg.JWTSecret, "jwt-secret", cfg.JWTSecret, "Secret for signing auth tokens")
	fs.StringVar(&cfg.JWTIssuer, "jwt-issuer", cfg.JWTIssuer, "Issuer claim of auth tokens")
	fs.StringVar(&tokenTTLStr, "token-ttl", tokenTTLStr, "Lifetime of issued auth tokens")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")
	fs.IntVar(&cfg.SMSWorkers, "sms-workers", cfg.SMSWorkers, "Number of concurrent SMS delivery workers")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn, error")
	fs.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "Optional rotating log file")
	fs.BoolVar(&cfg.UsernameCaseInsensitive, "username-case-insensitive", cfg.UsernameCaseInsensitive, "Compare usernames ignoring case")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.TokenTTL, err = time.ParseDuration(tokenTTLStr); err != nil {
		return nil, fmt.Errorf("invalid token ttl: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if secretFile, ok := lookup("JWT_SECRET_FILE"); ok && secretFile != "" {
		content, err := os.ReadFile(secretFile)
		if err != nil {
			return nil, fmt.Errorf("read jwt secret file: %w", err)
		}
		cfg.JWTSecret = strings.TrimSpace(string(content))
	}

	if cfg.SMSWorkers <= 0 {
		cfg.SMSWorkers = defaultSMSWorkers
	}

	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = defaultTokenTTL
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("jwt secret must not be empty")
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(lookup envLookup, key string, def int) int {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getBool(lookup envLookup, key string, def bool) bool {
	if v, ok := lookup(key); ok && v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

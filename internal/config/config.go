package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/AlenaMolokova/masterdata/internal/constants"
	"github.com/caarlos0/env/v11"
)

var (
	ErrDatabaseURIRequired   = errors.New("DATABASE_URI is required")
	ErrSessionSecretRequired = errors.New("SESSION_SECRET is required")
	ErrSessionSecretTooShort = fmt.Errorf("SESSION_SECRET must be at least %d bytes", constants.MinSessionSecretLen)
	ErrAccountingKeyRequired = errors.New("ACCOUNTING_API_KEY is required when ACCOUNTING_API_URL is set")
)

type Config struct {
	RunAddr        string        `env:"RUN_ADDRESS"`
	DatabaseURI    string        `env:"DATABASE_URI"`
	MigrationsPath string        `env:"MIGRATIONS_PATH"`
	SessionSecret  string        `env:"SESSION_SECRET"`
	SessionTTL     time.Duration `env:"SESSION_TTL"`
	SecureCookie   bool          `env:"SESSION_COOKIE_SECURE"`
	RedisURL       string        `env:"REDIS_URL"`

	AccountingAPIURL    string        `env:"ACCOUNTING_API_URL"`
	AccountingAPIKey    string        `env:"ACCOUNTING_API_KEY"`
	AccountingRateLimit float64       `env:"ACCOUNTING_RATE_LIMIT"`
	AccountingTimeout   time.Duration `env:"ACCOUNTING_TIMEOUT"`

	LogLevel  string `env:"LOG_LEVEL"`
	LogFormat string `env:"LOG_FORMAT"`
}

// NewConfig reads flags from os.Args and lets environment variables override them.
func NewConfig() (*Config, error) {
	return Load(os.Args[1:], env.ToMap(os.Environ()))
}

func Load(args []string, environ map[string]string) (*Config, error) {
	cfg := &Config{
		RunAddr:             ":8080",
		MigrationsPath:      "file://migrations",
		SessionTTL:          constants.DefaultSessionTTL,
		AccountingRateLimit: constants.DefaultAccountingRateLimit,
		AccountingTimeout:   constants.DefaultAccountingTimeout,
		LogLevel:            "info",
		LogFormat:           "json",
	}

	fs := flag.NewFlagSet("masterdata", flag.ContinueOnError)
	fs.StringVar(&cfg.RunAddr, "a", cfg.RunAddr, "server address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "database URI")
	fs.StringVar(&cfg.SessionSecret, "s", cfg.SessionSecret, "session signing secret")
	fs.StringVar(&cfg.AccountingAPIURL, "r", cfg.AccountingAPIURL, "accounting API base URL")
	fs.StringVar(&cfg.RedisURL, "redis", cfg.RedisURL, "redis URL for session revocation")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("failed to parse flags: %w", err)
	}

	if err := env.ParseWithOptions(cfg, env.Options{Environment: environ}); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.DatabaseURI == "" {
		return ErrDatabaseURIRequired
	}
	if c.SessionSecret == "" {
		return ErrSessionSecretRequired
	}
	if len(c.SessionSecret) < constants.MinSessionSecretLen {
		return ErrSessionSecretTooShort
	}
	if c.AccountingAPIURL != "" && c.AccountingAPIKey == "" {
		return ErrAccountingKeyRequired
	}
	if c.SessionTTL <= 0 {
		c.SessionTTL = constants.DefaultSessionTTL
	}
	if c.AccountingRateLimit <= 0 {
		c.AccountingRateLimit = constants.DefaultAccountingRateLimit
	}
	return nil
}

// AccountingEnabled reports whether the accounting API client should be built.
func (c *Config) AccountingEnabled() bool {
	return c.AccountingAPIURL != ""
}

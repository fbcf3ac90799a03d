// Package config loads berapi settings from BERAPI_* environment variables.
package config

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/MCBE-Utilities/BeRAPI/internal/factory"
	"github.com/MCBE-Utilities/BeRAPI/internal/model"
	redisstorage "github.com/MCBE-Utilities/BeRAPI/internal/storage/redis"
)

// Config holds everything needed to build a factory.Client
type Config struct {
	SessionTicket string    `env:"BERAPI_SESSION_TICKET"`
	AccountHash   string    `env:"BERAPI_ACCOUNT_HASH"`
	ExpiresAt     time.Time `env:"BERAPI_EXPIRES_AT"` // RFC 3339

	XboxSessionTicket string `env:"BERAPI_XBOX_SESSION_TICKET"`
	XboxAccountHash   string `env:"BERAPI_XBOX_ACCOUNT_HASH"`

	RealmsURL string `env:"BERAPI_REALMS_URL"`
	XboxURL   string `env:"BERAPI_XBOX_URL"`

	RedisURL    string        `env:"BERAPI_REDIS_URL"`
	IdentityTTL time.Duration `env:"BERAPI_IDENTITY_TTL" envDefault:"16h"`

	Timeout  time.Duration `env:"BERAPI_TIMEOUT"   envDefault:"30s"`
	LogLevel slog.Level    `env:"BERAPI_LOG_LEVEL" envDefault:"WARN"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load reads Config from the process environment
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadFrom reads Config from the given variables instead of the process environment
func LoadFrom(environ map[string]string) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environ}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Identity returns the realms identity
func (c Config) Identity() model.Identity {
	return model.Identity{
		SessionTicket: c.SessionTicket,
		AccountHash:   c.AccountHash,
		ExpiresAt:     c.ExpiresAt,
	}
}

// XboxIdentity returns the Xbox profile identity, zero when none is configured
func (c Config) XboxIdentity() model.Identity {
	if c.XboxSessionTicket == "" && c.XboxAccountHash == "" {
		return model.Identity{}
	}
	hash := c.XboxAccountHash
	if hash == "" {
		hash = c.AccountHash
	}
	return model.Identity{
		SessionTicket: c.XboxSessionTicket,
		AccountHash:   hash,
		ExpiresAt:     c.ExpiresAt,
	}
}

// Factory converts the configuration into factory settings
func (c Config) Factory(logger *slog.Logger) factory.Config {
	fc := factory.Config{
		Logger:       logger,
		StorageType:  factory.StorageTypeMemory,
		RealmsURL:    c.RealmsURL,
		XboxURL:      c.XboxURL,
		HTTPClient:   &http.Client{Timeout: c.Timeout},
		Identity:     c.Identity(),
		XboxIdentity: c.XboxIdentity(),
	}

	if c.RedisURL != "" {
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = c.RedisURL
		redisCfg.IdentityTTL = c.IdentityTTL
		fc.StorageType = factory.StorageTypeRedis
		fc.RedisConfig = &redisCfg
	}

	return fc
}

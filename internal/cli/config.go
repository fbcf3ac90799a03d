package cli

import (
	"io"
	"log/slog"

	"github.com/MCBE-Utilities/BeRAPI/internal/config"
)

// Config holds CLI configuration
type Config struct {
	Env       config.Config
	RealmsURL string
	XboxURL   string
	Output    string
	Verbose   bool
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		Output:  "text",
		Verbose: false,
	}
}

// Load reads BERAPI_* variables and applies flag overrides on top
func (c *Config) Load() error {
	env, err := config.Load()
	if err != nil {
		return err
	}
	if c.RealmsURL != "" {
		env.RealmsURL = c.RealmsURL
	}
	if c.XboxURL != "" {
		env.XboxURL = c.XboxURL
	}
	if c.Verbose {
		env.LogLevel = slog.LevelDebug
	}
	c.Env = env
	return nil
}

// Logger builds the CLI logger writing to w
func (c *Config) Logger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: c.Env.LogLevel}))
}

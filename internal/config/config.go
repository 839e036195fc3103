package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds runtime settings. Every field has a default so the dashboard
// starts without any environment or flags.
type Config struct {
	// LogFile receives structured logs. Empty disables logging, since the
	// terminal UI owns stdout.
	LogFile string `env:"ISOTOPES_LOG_FILE"`

	// LogLevel is a logrus level name.
	LogLevel string `env:"ISOTOPES_LOG_LEVEL" envDefault:"info"`

	// AssetsDir is searched for optional images such as industrial_apps.jpg.
	AssetsDir string `env:"ISOTOPES_ASSETS_DIR" envDefault:"assets"`

	// FeedbackDelay is how long quiz feedback stays up before advancing.
	FeedbackDelay time.Duration `env:"ISOTOPES_FEEDBACK_DELAY" envDefault:"1500ms"`
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		LogLevel:      "info",
		AssetsDir:     "assets",
		FeedbackDelay: 1500 * time.Millisecond,
	}
}

// FromEnv loads configuration from ISOTOPES_* environment variables.
func FromEnv() (Config, error) {
	cfg := Default()
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks values that env parsing alone cannot.
func (c Config) Validate() error {
	if c.FeedbackDelay < 0 {
		return fmt.Errorf("feedback delay must not be negative, got %s", c.FeedbackDelay)
	}
	return nil
}

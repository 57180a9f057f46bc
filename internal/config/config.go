package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
)

// LogOff disables file logging when used as LogFile.
const LogOff = "off"

// Config holds runtime settings for the quiz.
type Config struct {
	// BankPath points at a YAML or JSON question bank. Empty means the
	// bank compiled into the binary.
	BankPath string `env:"CONSULTQUEST_BANK"`

	// CertDir is where exported certificates are written.
	CertDir string `env:"CONSULTQUEST_CERT_DIR"`

	// CertFormat selects the certificate file format: "md" or "json".
	CertFormat string `env:"CONSULTQUEST_CERT_FORMAT"`

	// Seed makes option shuffling reproducible. Nil means a random seed.
	Seed *uint64 `env:"CONSULTQUEST_SEED"`

	// Recipient pre-fills the name printed on the certificate.
	Recipient string `env:"CONSULTQUEST_NAME"`

	// LogFile is the JSON log destination, or LogOff.
	LogFile string `env:"CONSULTQUEST_LOG_FILE"`
	Debug   bool   `env:"CONSULTQUEST_DEBUG"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		CertDir:    ".",
		CertFormat: "md",
		LogFile:    DefaultLogFile(),
	}
}

// FromEnv builds a Config from environment variables, falling back to
// defaults for unset values.
func FromEnv() (Config, error) {
	cfg := DefaultConfig()
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, cfg.Validate()
}

// Validate checks values that cannot be expressed as env types.
func (c Config) Validate() error {
	switch strings.ToLower(c.CertFormat) {
	case "md", "markdown", "json":
	default:
		return fmt.Errorf("unknown certificate format: %q (want md or json)", c.CertFormat)
	}
	if c.CertDir == "" {
		return fmt.Errorf("certificate directory must not be empty")
	}
	return nil
}

// LoggingEnabled reports whether a log file should be opened.
func (c Config) LoggingEnabled() bool {
	return c.LogFile != "" && c.LogFile != LogOff
}

// DefaultLogFile returns $XDG_STATE_HOME/consultquest/consultquest.log,
// falling back to ~/.local/state when XDG_STATE_HOME is unset.
func DefaultLogFile() string {
	dir := os.Getenv("XDG_STATE_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return LogOff
		}
		dir = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(dir, "consultquest", "consultquest.log")
}

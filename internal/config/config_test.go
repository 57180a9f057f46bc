package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv_Defaults(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", "/tmp/state")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "", cfg.BankPath)
	assert.Equal(t, ".", cfg.CertDir)
	assert.Equal(t, "md", cfg.CertFormat)
	assert.Nil(t, cfg.Seed)
	assert.False(t, cfg.Debug)
	assert.Equal(t, filepath.Join("/tmp/state", "consultquest", "consultquest.log"), cfg.LogFile)
	assert.True(t, cfg.LoggingEnabled())
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("CONSULTQUEST_BANK", "/banks/custom.yaml")
	t.Setenv("CONSULTQUEST_CERT_DIR", "/out")
	t.Setenv("CONSULTQUEST_CERT_FORMAT", "json")
	t.Setenv("CONSULTQUEST_SEED", "42")
	t.Setenv("CONSULTQUEST_NAME", "Robin")
	t.Setenv("CONSULTQUEST_LOG_FILE", LogOff)
	t.Setenv("CONSULTQUEST_DEBUG", "true")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "/banks/custom.yaml", cfg.BankPath)
	assert.Equal(t, "/out", cfg.CertDir)
	assert.Equal(t, "json", cfg.CertFormat)
	require.NotNil(t, cfg.Seed)
	assert.Equal(t, uint64(42), *cfg.Seed)
	assert.Equal(t, "Robin", cfg.Recipient)
	assert.True(t, cfg.Debug)
	assert.False(t, cfg.LoggingEnabled())
}

func TestFromEnv_BadSeed(t *testing.T) {
	t.Setenv("CONSULTQUEST_SEED", "not-a-number")

	_, err := FromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env:")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"json", func(c *Config) { c.CertFormat = "json" }, ""},
		{"markdown alias", func(c *Config) { c.CertFormat = "Markdown" }, ""},
		{"pdf", func(c *Config) { c.CertFormat = "pdf" }, "unknown certificate format"},
		{"empty dir", func(c *Config) { c.CertDir = "" }, "directory"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Session.TimeoutSeconds = 120
	cfg.Loan.Delay = 500 * time.Millisecond
	cfg.Display.DefaultLocale = "pt-PT"

	path := filepath.Join(t.TempDir(), "bankist.yaml")
	require.NoError(t, Save(path, cfg))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestDefaults(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 300, cfg.Session.TimeoutSeconds)
	assert.Equal(t, time.Second, cfg.Session.TickInterval)
	assert.Equal(t, 2500*time.Millisecond, cfg.Loan.Delay)
	assert.Equal(t, "0.1", cfg.Loan.MinDepositRatio)
	assert.Equal(t, "en-US", cfg.Display.DefaultLocale)
	require.NoError(t, cfg.Validate())
}

func TestLoadWithoutFileUsesDefaults(t *testing.T) {
	got, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), got)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("BANKIST_SESSION_TIMEOUT_SECONDS", "60")
	t.Setenv("BANKIST_LOAN_DELAY", "10ms")

	got, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 60, got.Session.TimeoutSeconds)
	assert.Equal(t, 10*time.Millisecond, got.Loan.Delay)
}

func TestLoadPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bankist.yaml")
	require.NoError(t, os.WriteFile(path, []byte("loan:\n  min_deposit_ratio: \"0.25\"\n"), 0o644))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "0.25", got.Loan.MinDepositRatio)
	assert.Equal(t, 300, got.Session.TimeoutSeconds, "unset keys keep defaults")
}

func TestLoadNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bankist.yaml")
	require.NoError(t, os.WriteFile(path, []byte("session:\n  timeout_seconds: 0\n"), 0o644))

	_, err := Load(path)
	assert.ErrorContains(t, err, "timeout_seconds")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"zero tick", func(c *Config) { c.Session.TickInterval = 0 }},
		{"negative delay", func(c *Config) { c.Loan.Delay = -time.Second }},
		{"bad ratio", func(c *Config) { c.Loan.MinDepositRatio = "ten percent" }},
		{"negative ratio", func(c *Config) { c.Loan.MinDepositRatio = "-0.1" }},
		{"ratio exponent too small", func(c *Config) { c.Loan.MinDepositRatio = "1e-900000000" }},
		{"ratio exponent too large", func(c *Config) { c.Loan.MinDepositRatio = "1e900000000" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestLoanRatio(t *testing.T) {
	r, err := Default().LoanRatio()
	require.NoError(t, err)
	assert.Equal(t, "0.1", r.String())
}

func TestYAMLFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bankist.yaml")
	require.NoError(t, Save(path, Default()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	contents := string(data)

	assert.Contains(t, contents, "timeout_seconds: 300")
	assert.Contains(t, contents, "delay: 2.5s")
	assert.Contains(t, contents, "default_locale: en-US")
}

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes environment overrides, e.g. BANKIST_SESSION_TIMEOUT_SECONDS.
const EnvPrefix = "BANKIST"

// Config represents the top-level bankist.yaml configuration.
type Config struct {
	Session SessionConfig `yaml:"session" mapstructure:"session"`
	Loan    LoanConfig    `yaml:"loan" mapstructure:"loan"`
	Display DisplayConfig `yaml:"display" mapstructure:"display"`
	Log     LogConfig     `yaml:"log" mapstructure:"log"`
}

// SessionConfig controls the inactivity logout timer.
type SessionConfig struct {
	TimeoutSeconds int           `yaml:"timeout_seconds" mapstructure:"timeout_seconds"`
	TickInterval   time.Duration `yaml:"tick_interval" mapstructure:"tick_interval"`
}

// LoanConfig controls loan approval and the simulated processing delay.
type LoanConfig struct {
	Delay           time.Duration `yaml:"delay" mapstructure:"delay"`
	MinDepositRatio string        `yaml:"min_deposit_ratio" mapstructure:"min_deposit_ratio"` // decimal, e.g. "0.1"
}

// DisplayConfig holds fallbacks for statements without an owning account.
type DisplayConfig struct {
	DefaultLocale   string `yaml:"default_locale" mapstructure:"default_locale"`
	DefaultCurrency string `yaml:"default_currency" mapstructure:"default_currency"`
}

// LogConfig selects the log level.
type LogConfig struct {
	Level string `yaml:"level" mapstructure:"level"`
}

// Default returns a Config matching the demo's behavior.
func Default() *Config {
	return &Config{
		Session: SessionConfig{
			TimeoutSeconds: 300,
			TickInterval:   time.Second,
		},
		Loan: LoanConfig{
			Delay:           2500 * time.Millisecond,
			MinDepositRatio: "0.1",
		},
		Display: DisplayConfig{
			DefaultLocale:   "en-US",
			DefaultCurrency: "USD",
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}

// Load reads configuration from path (optional) with environment overrides.
// A .env file in the working directory is loaded first when present.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	v := viper.New()
	setDefaults(v, Default())
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("parsing config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("session.timeout_seconds", d.Session.TimeoutSeconds)
	v.SetDefault("session.tick_interval", d.Session.TickInterval)
	v.SetDefault("loan.delay", d.Loan.Delay)
	v.SetDefault("loan.min_deposit_ratio", d.Loan.MinDepositRatio)
	v.SetDefault("display.default_locale", d.Display.DefaultLocale)
	v.SetDefault("display.default_currency", d.Display.DefaultCurrency)
	v.SetDefault("log.level", d.Log.Level)
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.Session.TimeoutSeconds <= 0 {
		return fmt.Errorf("invalid config: session.timeout_seconds must be positive, got %d", c.Session.TimeoutSeconds)
	}
	if c.Session.TickInterval <= 0 {
		return fmt.Errorf("invalid config: session.tick_interval must be positive, got %s", c.Session.TickInterval)
	}
	if c.Loan.Delay < 0 {
		return fmt.Errorf("invalid config: loan.delay must not be negative, got %s", c.Loan.Delay)
	}
	if _, err := c.LoanRatio(); err != nil {
		return err
	}
	return nil
}

// maxRatioScale bounds the exponent of loan.min_deposit_ratio.
const maxRatioScale = 8

// LoanRatio returns the minimum deposit a loan needs, as a fraction of the loan.
func (c *Config) LoanRatio() (decimal.Decimal, error) {
	r, err := decimal.NewFromString(c.Loan.MinDepositRatio)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid config: loan.min_deposit_ratio %q: %w", c.Loan.MinDepositRatio, err)
	}
	if exp := r.Exponent(); exp < -maxRatioScale || exp > maxRatioScale {
		return decimal.Zero, fmt.Errorf("invalid config: loan.min_deposit_ratio %q is out of range", c.Loan.MinDepositRatio)
	}
	if r.IsNegative() {
		return decimal.Zero, fmt.Errorf("invalid config: loan.min_deposit_ratio must not be negative, got %s", r)
	}
	return r, nil
}

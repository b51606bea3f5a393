package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

const (
	dirName  = ".show-scout"
	fileName = "config.json"

	DefaultLogLevel         = "info"
	DefaultLogRetentionDays = 30
	DefaultRateRequests     = 20
	DefaultRateWindow       = 10 * time.Second
	DefaultCacheTTL         = 10 * time.Minute
	DefaultSummaryWidth     = 160
)

// Config holds the user settings read from ~/.show-scout/config.json.
type Config struct {
	LogLevel         string `mapstructure:"log_level"`
	EnableLogging    bool   `mapstructure:"enable_logging"`
	LogRetentionDays int    `mapstructure:"log_retention_days"`
	UserAgent        string `mapstructure:"user_agent"`
	RateLimit        struct {
		Requests int    `mapstructure:"requests"`
		Window   string `mapstructure:"window"` // Go duration string like "10s"
	} `mapstructure:"rate_limit"`
	Cache struct {
		Enabled bool   `mapstructure:"enabled"`
		TTL     string `mapstructure:"ttl"` // Go duration string like "10m"
	} `mapstructure:"cache"`
	SummaryWidth int `mapstructure:"summary_width"`

	// Warnings lists values that were invalid and replaced by defaults.
	Warnings []string `mapstructure:"-"`

	rateWindow time.Duration
	cacheTTL   time.Duration
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	cfg := &Config{
		LogLevel:         DefaultLogLevel,
		EnableLogging:    true,
		LogRetentionDays: DefaultLogRetentionDays,
		SummaryWidth:     DefaultSummaryWidth,
		rateWindow:       DefaultRateWindow,
		cacheTTL:         DefaultCacheTTL,
	}
	cfg.RateLimit.Requests = DefaultRateRequests
	cfg.RateLimit.Window = DefaultRateWindow.String()
	cfg.Cache.TTL = DefaultCacheTTL.String()
	return cfg
}

// ConfigPath returns the path to the config file
func ConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, dirName, fileName), nil
}

// Load reads the configuration from the default location.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFile(path)
}

// LoadFile reads the configuration from path. A missing file yields defaults.
func LoadFile(path string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	cfg.normalize()
	return &cfg, nil
}

// Save writes the configuration to path, creating the directory if needed.
func (cfg *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	v := viper.New()
	v.SetConfigType("json")
	v.Set("log_level", cfg.LogLevel)
	v.Set("enable_logging", cfg.EnableLogging)
	v.Set("log_retention_days", cfg.LogRetentionDays)
	v.Set("user_agent", cfg.UserAgent)
	v.Set("rate_limit.requests", cfg.RateLimit.Requests)
	v.Set("rate_limit.window", cfg.RateLimit.Window)
	v.Set("cache.enabled", cfg.Cache.Enabled)
	v.Set("cache.ttl", cfg.Cache.TTL)
	v.Set("summary_width", cfg.SummaryWidth)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// RateWindow is the parsed rate limit window.
func (cfg *Config) RateWindow() time.Duration {
	return cfg.rateWindow
}

// CacheTTL is the parsed cache expiry.
func (cfg *Config) CacheTTL() time.Duration {
	return cfg.cacheTTL
}

func newViper() *viper.Viper {
	defaults := DefaultConfig()
	v := viper.New()
	v.SetConfigType("json")
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("enable_logging", defaults.EnableLogging)
	v.SetDefault("log_retention_days", defaults.LogRetentionDays)
	v.SetDefault("user_agent", "")
	v.SetDefault("rate_limit.requests", defaults.RateLimit.Requests)
	v.SetDefault("rate_limit.window", defaults.RateLimit.Window)
	v.SetDefault("cache.enabled", defaults.Cache.Enabled)
	v.SetDefault("cache.ttl", defaults.Cache.TTL)
	v.SetDefault("summary_width", defaults.SummaryWidth)
	return v
}

// normalize parses durations and replaces out of range values with defaults.
func (cfg *Config) normalize() {
	cfg.rateWindow = cfg.parseDuration("rate_limit.window", &cfg.RateLimit.Window, DefaultRateWindow)
	cfg.cacheTTL = cfg.parseDuration("cache.ttl", &cfg.Cache.TTL, DefaultCacheTTL)

	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
	if cfg.LogRetentionDays <= 0 {
		cfg.warn("log_retention_days", fmt.Sprint(cfg.LogRetentionDays))
		cfg.LogRetentionDays = DefaultLogRetentionDays
	}
	if cfg.RateLimit.Requests < 0 {
		cfg.warn("rate_limit.requests", fmt.Sprint(cfg.RateLimit.Requests))
		cfg.RateLimit.Requests = DefaultRateRequests
	}
	if cfg.SummaryWidth <= 0 {
		cfg.warn("summary_width", fmt.Sprint(cfg.SummaryWidth))
		cfg.SummaryWidth = DefaultSummaryWidth
	}
}

func (cfg *Config) parseDuration(key string, raw *string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(*raw)
	if err != nil || d <= 0 {
		cfg.warn(key, *raw)
		*raw = fallback.String()
		return fallback
	}
	return d
}

func (cfg *Config) warn(key, value string) {
	cfg.Warnings = append(cfg.Warnings, fmt.Sprintf("invalid %s %q, using default", key, value))
}

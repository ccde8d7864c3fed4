// Package config loads and validates the storefront configuration.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/Veraticus/axox-storefront/internal/common"
	"github.com/robfig/cron/v3"
	"github.com/spf13/viper"
)

// Defaults.
const (
	DefaultServerAddress  = ":8080"
	DefaultRequestTimeout = 30 * time.Second
	DefaultAdvisorTimeout = 10 * time.Second
	DefaultMaxRetries     = 1
	DefaultRateLimit      = 60
	DefaultCacheTTL       = 15 * time.Minute
	DefaultSessionTTL     = 2 * time.Hour
	DefaultSweepSchedule  = "*/5 * * * *"
	maxSnowflakeNode      = 1023
)

// Config is the fully resolved application configuration.
type Config struct {
	Logging LoggingConfig
	Server  ServerConfig
	Advisor AdvisorConfig
	Catalog CatalogConfig
	Session SessionConfig
}

// LoggingConfig selects the slog handler.
type LoggingConfig struct {
	Level  string
	Format string
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Address        string
	RequestTimeout time.Duration
	NodeID         int64
}

// AdvisorConfig configures the recommendation backend.
type AdvisorConfig struct {
	BackendURL string
	Timeout    time.Duration
	MaxRetries int
	RateLimit  int
	CacheTTL   time.Duration
}

// CatalogConfig selects the product source. An empty Database means the
// built-in dataset.
type CatalogConfig struct {
	Database string
}

// SessionConfig controls idle session expiry.
type SessionConfig struct {
	TTL           time.Duration
	SweepSchedule string
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("server.address", DefaultServerAddress)
	v.SetDefault("server.request_timeout", DefaultRequestTimeout)
	v.SetDefault("server.node_id", 1)
	v.SetDefault("advisor.timeout", DefaultAdvisorTimeout)
	v.SetDefault("advisor.max_retries", DefaultMaxRetries)
	v.SetDefault("advisor.rate_limit", DefaultRateLimit)
	v.SetDefault("advisor.cache_ttl", DefaultCacheTTL)
	v.SetDefault("session.ttl", DefaultSessionTTL)
	v.SetDefault("session.sweep_schedule", DefaultSweepSchedule)
}

// Load reads configuration from v and validates it.
func Load(v *viper.Viper) (*Config, error) {
	SetDefaults(v)

	cfg := &Config{
		Logging: LoggingConfig{
			Level:  v.GetString("logging.level"),
			Format: v.GetString("logging.format"),
		},
		Server: ServerConfig{
			Address:        v.GetString("server.address"),
			RequestTimeout: v.GetDuration("server.request_timeout"),
			NodeID:         v.GetInt64("server.node_id"),
		},
		Advisor: AdvisorConfig{
			BackendURL: v.GetString("advisor.backend_url"),
			Timeout:    v.GetDuration("advisor.timeout"),
			MaxRetries: v.GetInt("advisor.max_retries"),
			RateLimit:  v.GetInt("advisor.rate_limit"),
			CacheTTL:   v.GetDuration("advisor.cache_ttl"),
		},
		Catalog: CatalogConfig{
			Database: ExpandPath(v.GetString("catalog.database")),
		},
		Session: SessionConfig{
			TTL:           v.GetDuration("session.ttl"),
			SweepSchedule: v.GetString("session.sweep_schedule"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if _, err := common.ParseLevel(c.Logging.Level); err != nil {
		return err
	}
	if c.Logging.Format != "console" && c.Logging.Format != "json" {
		return fmt.Errorf("%w: logging.format must be console or json, got %q", common.ErrInvalidConfig, c.Logging.Format)
	}

	if c.Server.Address == "" {
		return fmt.Errorf("%w: server.address", common.ErrMissingConfig)
	}
	if c.Server.RequestTimeout < 0 {
		return fmt.Errorf("%w: server.request_timeout must not be negative", common.ErrInvalidConfig)
	}
	if c.Server.NodeID < 0 || c.Server.NodeID > maxSnowflakeNode {
		return fmt.Errorf("%w: server.node_id must be between 0 and %d", common.ErrInvalidConfig, maxSnowflakeNode)
	}

	if c.Advisor.BackendURL != "" {
		u, err := url.Parse(c.Advisor.BackendURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("%w: advisor.backend_url %q must be an http(s) URL", common.ErrInvalidConfig, c.Advisor.BackendURL)
		}
	}
	if c.Advisor.MaxRetries < 1 {
		return fmt.Errorf("%w: advisor.max_retries must be at least 1", common.ErrInvalidConfig)
	}
	if c.Advisor.RateLimit < 0 {
		return fmt.Errorf("%w: advisor.rate_limit must not be negative", common.ErrInvalidConfig)
	}
	if c.Advisor.Timeout < 0 || c.Advisor.CacheTTL < 0 {
		return fmt.Errorf("%w: advisor durations must not be negative", common.ErrInvalidConfig)
	}
	// Retries must leave room inside the request deadline for the local answer.
	if budget := c.Advisor.Timeout * time.Duration(c.Advisor.MaxRetries); c.Server.RequestTimeout > 0 && budget >= c.Server.RequestTimeout {
		return fmt.Errorf("%w: advisor.timeout x advisor.max_retries (%s) must be below server.request_timeout (%s)",
			common.ErrInvalidConfig, budget, c.Server.RequestTimeout)
	}

	if c.Session.TTL <= 0 {
		return fmt.Errorf("%w: session.ttl must be positive", common.ErrInvalidConfig)
	}
	if _, err := cron.ParseStandard(c.Session.SweepSchedule); err != nil {
		return fmt.Errorf("%w: session.sweep_schedule: %w", common.ErrInvalidConfig, err)
	}

	return nil
}

// ExpandPath resolves $VAR references and a leading ~ in a catalog or config
// path. Paths without either are returned unchanged.
func ExpandPath(path string) string {
	path = os.ExpandEnv(path)
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return home + strings.TrimPrefix(path, "~")
}

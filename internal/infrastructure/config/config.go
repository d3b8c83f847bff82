package config

import (
	"net"
	"net/url"
	"time"

	"github.com/caarlos0/env/v10"
)

// Config holds all application configuration.
type Config struct {
	// Core backend. An empty or loopback URL selects the built-in simulator.
	ByteURL     string        `env:"BYTE_URL"     envDefault:""`
	ByteTimeout time.Duration `env:"BYTE_TIMEOUT" envDefault:"30s"`

	// Simulator
	SimulateLatency bool `env:"SIMULATE_LATENCY" envDefault:"true"`

	// Redis (optional; empty disables boundary idempotency)
	RedisURL       string        `env:"REDIS_URL"       envDefault:""`
	IdempotencyTTL time.Duration `env:"IDEMPOTENCY_TTL" envDefault:"24h"`

	// HTTP Server
	HTTPPort            string        `env:"HTTP_PORT"             envDefault:"8080"`
	HTTPReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT"     envDefault:"30s"`
	HTTPWriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT"    envDefault:"60s"`
	HTTPIdleTimeout     time.Duration `env:"HTTP_IDLE_TIMEOUT"     envDefault:"60s"`
	HTTPShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`

	// Rate limiting (0 disables)
	RateLimitRPS   float64 `env:"RATE_LIMIT_RPS"   envDefault:"0"`
	RateLimitBurst int     `env:"RATE_LIMIT_BURST" envDefault:"20"`

	// Logging
	LogLevel  string `env:"LOG_LEVEL"  envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// UseSimulator reports whether the process should run the built-in simulator
// instead of calling a remote Core. Unset and loopback URLs both mean
// simulator, so the selection in main stays a single branch.
func (c *Config) UseSimulator() bool {
	if c.ByteURL == "" {
		return true
	}

	u, err := url.Parse(c.ByteURL)
	if err != nil {
		return true
	}

	host := u.Hostname()
	if host == "" || host == "localhost" {
		return true
	}
	if ip := net.ParseIP(host); ip != nil && ip.IsLoopback() {
		return true
	}

	return false
}

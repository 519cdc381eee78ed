// Package config loads service configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Store backends.
const (
	StoreMemory = "memory"
	StoreRedis  = "redis"
)

// Config holds the runtime configuration of the USSD service.
type Config struct {
	// HTTPAddr is the gateway listen address.
	HTTPAddr string `env:"USSD_HTTP_ADDR" envDefault:":8080"`

	// Store selects the session backend: memory or redis.
	Store string `env:"USSD_STORE" envDefault:"memory"`

	RedisAddr     string `env:"USSD_REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"USSD_REDIS_PASSWORD"`
	RedisDB       int    `env:"USSD_REDIS_DB" envDefault:"0"`

	// SessionTTL expires abandoned sessions in the redis backend. Gateways
	// drop silent sessions after a couple of minutes; keeping ours a bit
	// longer aids inspection.
	SessionTTL time.Duration `env:"USSD_SESSION_TTL" envDefault:"10m"`

	// ApprovalRate is the loan approval probability, 0 < rate <= 1.
	ApprovalRate float64 `env:"USSD_APPROVAL_RATE" envDefault:"0.70"`

	// FlowPackDir optionally points at a directory of YAML flow packs
	// registered alongside the built-in flows.
	FlowPackDir string `env:"USSD_FLOW_PACK_DIR"`

	LogLevel string `env:"USSD_LOG_LEVEL" envDefault:"info"`
}

// Load reads .env (if present) and parses the environment.
func Load() (*Config, error) {
	// Missing .env is the normal case outside local development.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Store {
	case StoreMemory, StoreRedis:
	default:
		return fmt.Errorf("unknown store backend %q (want %s or %s)", c.Store, StoreMemory, StoreRedis)
	}
	if c.ApprovalRate <= 0 || c.ApprovalRate > 1 {
		return fmt.Errorf("approval rate %v out of range (0, 1]", c.ApprovalRate)
	}
	return nil
}

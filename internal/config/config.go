// Package config loads the immutable startup configuration from the
// environment. Everything here is read once at process start and passed
// by reference; nothing is mutated afterwards.
package config

import (
	"fmt"
	"runtime"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Gate      GateConfig
	Logging   LogConfig
	RateLimit RateLimitConfig
}

// ServerConfig holds the local broker listener configuration. The
// broker serves only the application shell, so it binds loopback.
type ServerConfig struct {
	Port string `envconfig:"PORT" default:"8053"`
	Host string `envconfig:"HOST" default:"127.0.0.1"`
}

// GateConfig holds the protocol gate's collaborator inputs: the two
// base roots the allow list is derived from, the platform flag, and
// whether outbound network schemes stay enabled.
type GateConfig struct {
	UserDataDir          string `envconfig:"USER_DATA_DIR"`
	InstallDir           string `envconfig:"INSTALL_DIR"`
	Windows              bool   `envconfig:"PLATFORM_WINDOWS"`
	AllowExternalNetwork bool   `envconfig:"ALLOW_EXTERNAL_NETWORK" default:"false"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
}

// RateLimitConfig holds broker rate limiting configuration.
type RateLimitConfig struct {
	RequestsPerSecond int  `envconfig:"RATE_LIMIT_RPS" default:"500"`
	Burst             int  `envconfig:"RATE_LIMIT_BURST" default:"1000"`
	Enabled           bool `envconfig:"RATE_LIMIT_ENABLED" default:"true"`
}

// Load loads configuration from environment variables. The platform
// flag defaults to the running OS; envconfig only overwrites it when
// PLATFORM_WINDOWS is set explicitly.
func Load() (*Config, error) {
	cfg := Config{
		Gate: GateConfig{Windows: runtime.GOOS == "windows"},
	}
	if err := envconfig.Process("EMBER", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// Default returns default configuration for the running OS.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port: "8053",
			Host: "127.0.0.1",
		},
		Gate: GateConfig{
			Windows:              runtime.GOOS == "windows",
			AllowExternalNetwork: false,
		},
		Logging: LogConfig{
			Level:       "info",
			Development: false,
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 500,
			Burst:             1000,
			Enabled:           true,
		},
	}
}

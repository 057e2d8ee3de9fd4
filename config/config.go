package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the server
type Config struct {
	// Address the HTTP server listens on
	Addr string

	// Cron expression controlling how often the featured palette rotates
	FeaturedCron string

	// Maximum accepted upload size for image extraction, in bytes
	MaxUploadBytes int64

	// Log level (trace, debug, info, warn, error)
	LogLevel string
}

// DefaultConfig returns a new Config with default values
func DefaultConfig() *Config {
	return &Config{
		Addr:           ":8080",
		FeaturedCron:   "0 0 * * *",
		MaxUploadBytes: 8 << 20,
		LogLevel:       "info",
	}
}

// WithAddr sets the listen address
func (c *Config) WithAddr(addr string) *Config {
	c.Addr = addr
	return c
}

// WithFeaturedCron sets the featured palette rotation schedule
func (c *Config) WithFeaturedCron(spec string) *Config {
	c.FeaturedCron = spec
	return c
}

// WithMaxUploadBytes sets the upload size limit
func (c *Config) WithMaxUploadBytes(n int64) *Config {
	c.MaxUploadBytes = n
	return c
}

// WithLogLevel sets the log level
func (c *Config) WithLogLevel(level string) *Config {
	c.LogLevel = level
	return c
}

// Load reads configuration from the environment, loading a .env file
// first if one is present. Unset variables keep their defaults.
func Load() *Config {
	_ = godotenv.Load()

	cfg := DefaultConfig()
	if v := os.Getenv("HUEBLOOM_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("HUEBLOOM_FEATURED_CRON"); v != "" {
		cfg.FeaturedCron = v
	}
	if v := os.Getenv("HUEBLOOM_MAX_UPLOAD_BYTES"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			cfg.MaxUploadBytes = n
		}
	}
	if v := os.Getenv("HUEBLOOM_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	return cfg
}

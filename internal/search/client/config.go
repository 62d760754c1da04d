package client

import (
	"errors"
	"time"
)

// Config holds the backend API connection settings.
type Config struct {
	// BaseURL is the backend aggregation API base address.
	BaseURL string `mapstructure:"base_url" yaml:"base_url"`

	// Timeout bounds one search round trip.
	Timeout time.Duration `mapstructure:"timeout" yaml:"timeout"`

	// UserAgent is sent with every backend request.
	UserAgent string `mapstructure:"user_agent" yaml:"user_agent"`
}

// Validate checks the configuration and fills defaults.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return errors.New("search: base_url is required")
	}

	if c.Timeout <= 0 {
		c.Timeout = 30 * time.Second
	}

	if c.UserAgent == "" {
		c.UserAgent = defaultUserAgent
	}

	return nil
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		BaseURL:   "http://localhost:5000",
		Timeout:   30 * time.Second,
		UserAgent: defaultUserAgent,
	}
}

package main

import (
	"fmt"
	"net/url"
	"time"
)

// Config is the container for app configuration
type Config struct {
	// APIAddress - address for github rest api, must use https
	APIAddress string `split_words:"true" default:"https://api.github.com"`

	// Timeout - timeout for the whole github api call
	Timeout time.Duration `default:"5s"`

	// UserAgent - value of User-Agent header, github rejects requests without it
	UserAgent string `split_words:"true" default:"ghuser"`

	// LogLevel - logrus level name, logs are written to stderr
	LogLevel string `split_words:"true" default:"info"`
}

// Validate checks values that envconfig can't.
func (c Config) Validate() error {
	u, err := url.Parse(c.APIAddress)
	if err != nil {
		return fmt.Errorf("parsing api address: %w", err)
	}
	if u.Scheme != "https" || u.Host == "" {
		return fmt.Errorf("api address must be an https url, got %q", c.APIAddress)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", c.Timeout)
	}

	return nil
}

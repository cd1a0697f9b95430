// Package config defines the typed connector settings and their validation.
package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/caarlos0/env/v11"
)

// DefaultTimeoutSeconds is used when no timeout is configured.
const DefaultTimeoutSeconds = 10

// Settings holds the configuration for a single connector instance.
// It is treated as immutable once the connector is constructed.
type Settings struct {
	// Name identifies the connector and scopes its cache keys.
	Name string `env:"CONNECTOR_NAME"`

	// APIURL is the base URL of the remote API.
	APIURL string `env:"CONNECTOR_API_URL"`

	// TimeoutSeconds is the HTTP timeout in seconds.
	TimeoutSeconds int `env:"CONNECTOR_TIMEOUT" envDefault:"10"`

	// Parameters are default query parameters merged into every request.
	Parameters map[string]string `env:"CONNECTOR_PARAMETERS"`

	// Actions maps action names to URL path suffixes.
	Actions map[string]string `env:"CONNECTOR_ACTIONS"`

	// Username and Password enable Basic auth when both are set.
	Username string `env:"CONNECTOR_USERNAME"`
	Password string `env:"CONNECTOR_PASSWORD"`

	// UseFallbackCache enables serving cached response bodies instead of
	// performing live requests.
	UseFallbackCache bool `env:"CONNECTOR_USE_FALLBACK_CACHE"`
}

// FromEnv loads Settings from CONNECTOR_* environment variables.
// Map-valued variables use "key:value,key:value" notation.
func FromEnv() (Settings, error) {
	var s Settings
	if err := env.Parse(&s); err != nil {
		return Settings{}, fmt.Errorf("parse connector environment: %w", err)
	}

	if err := s.Validate(); err != nil {
		return Settings{}, err
	}

	return s, nil
}

// Validate checks that the settings are usable and fails fast otherwise.
func (s *Settings) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("connector name is required")
	}

	if s.APIURL == "" {
		return fmt.Errorf("api url is required")
	}

	u, err := url.Parse(s.APIURL)
	if err != nil {
		return fmt.Errorf("invalid api url %q: %w", s.APIURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("api url %q must be absolute", s.APIURL)
	}

	if len(s.Actions) == 0 {
		return fmt.Errorf("at least one action is required")
	}

	if s.TimeoutSeconds < 0 {
		return fmt.Errorf("timeout must not be negative (got %d)", s.TimeoutSeconds)
	}
	if s.TimeoutSeconds == 0 {
		s.TimeoutSeconds = DefaultTimeoutSeconds
	}

	return nil
}

// Timeout returns the configured HTTP timeout as a duration.
func (s Settings) Timeout() time.Duration {
	return time.Duration(s.TimeoutSeconds) * time.Second
}

// HasBasicAuth reports whether Basic auth credentials are configured.
// Both values must be non-empty, a lone username is ignored.
func (s Settings) HasBasicAuth() bool {
	return s.Username != "" && s.Password != ""
}

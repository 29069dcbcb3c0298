// pkg/config/registry.go
package config

import (
	"errors"
	"net/url"
	"time"
)

// DefaultRegistryURL is the FAA aircraft inquiry endpoint the lookups post to.
const DefaultRegistryURL = "https://registry.faa.gov/aircraftinquiry/Search/NNumberResult"

// DefaultUserAgent mimics a desktop browser; the registry rejects requests
// that arrive without one.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/119.0.0.0 Safari/537.36"

// RegistryConfig holds registry lookup parameters
type RegistryConfig struct {
	URL       string
	UserAgent string

	// Per-request timeout
	Timeout time.Duration
}

// LoadRegistryConfig loads registry lookup configuration from environment variables
func LoadRegistryConfig() *RegistryConfig {
	return &RegistryConfig{
		URL:       getEnv("REGISTRY_URL", DefaultRegistryURL),
		UserAgent: getEnv("REGISTRY_USER_AGENT", DefaultUserAgent),
		Timeout:   time.Duration(getEnvAsInt("REGISTRY_TIMEOUT_SECONDS", 30)) * time.Second,
	}
}

// Validate ensures the lookup endpoint is usable
func (c *RegistryConfig) Validate() error {
	if c.URL == "" {
		return errors.New("registry URL is required")
	}

	if _, err := url.ParseRequestURI(c.URL); err != nil {
		return errors.New("registry URL is not a valid URL: " + err.Error())
	}

	if c.UserAgent == "" {
		return errors.New("registry user agent is required")
	}

	if c.Timeout <= 0 {
		return errors.New("registry timeout must be positive")
	}

	return nil
}

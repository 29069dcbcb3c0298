// pkg/config/config.go
package config

import (
	"errors"
	"os"
	"strconv"
)

// Config represents the application configuration
type Config struct {
	// CSV file read and written in place
	InputFile string

	// Registry lookup settings
	Registry *RegistryConfig

	// Enrichment settings
	CheckpointRows int
	Resume         bool

	// Logging
	LogLevel  string
	LogFormat string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	cfg := &Config{
		// Default values
		InputFile:      getEnv("INPUT_FILE", "data/aircraft.csv"),
		CheckpointRows: getEnvAsInt("CHECKPOINT_ROWS", 20),
		Resume:         getEnvAsBool("RESUME", true),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFormat:      getEnv("LOG_FORMAT", "json"),
	}

	cfg.Registry = LoadRegistryConfig()

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures all required configuration is present and valid
func (c *Config) Validate() error {
	if c.InputFile == "" {
		return errors.New("input file is required")
	}

	if c.CheckpointRows < 0 {
		return errors.New("checkpoint rows cannot be negative")
	}

	if c.Registry == nil {
		return errors.New("registry configuration is required")
	}

	return c.Registry.Validate()
}

// Helper functions for environment variables
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

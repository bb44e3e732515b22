package config

import "os"

// Config holds application configuration loaded from environment variables.
type Config struct {
	ScenarioPath string
	DatabasePath string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		ScenarioPath: envOrDefault("HEXFRONT_SCENARIO", ""),
		DatabasePath: envOrDefault("HEXFRONT_DB", "hexfront.db"),
	}
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// envPrefix is the prefix for all configuration environment variables,
// e.g. PAGEFORGE_SERVER_PORT, PAGEFORGE_STORAGE_BUCKET.
const envPrefix = "PAGEFORGE"

// Load reads configuration from environment variables, applies defaults,
// and validates the result. Returns a populated Config struct or an
// error if loading/validation fails.
func Load() (*Config, error) {
	v := viper.New()

	// Defaults. Registering every key also makes AutomaticEnv aware of it.
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.environment", "development")
	v.SetDefault("database.url", "")
	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("storage.bucket", "")
	v.SetDefault("storage.region", "")
	v.SetDefault("storage.cache_max_age_seconds", 86400)
	v.SetDefault("llm.gemini_api_key", "")
	v.SetDefault("llm.model_name", "gemini-2.0-flash")
	v.SetDefault("llm.max_retries", 3)
	v.SetDefault("llm.retry_delay_seconds", 2)
	v.SetDefault("generation.worker_count", 4)
	v.SetDefault("generation.pair_timeout_seconds", 120)

	// Environment variables take precedence over defaults.
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

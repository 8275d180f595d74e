package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server     ServerConfig     `mapstructure:"server"     validate:"required"`
	Database   DatabaseConfig   `mapstructure:"database"   validate:"required"`
	Auth       AuthConfig       `mapstructure:"auth"       validate:"required"`
	Storage    StorageConfig    `mapstructure:"storage"    validate:"required"`
	LLM        LLMConfig        `mapstructure:"llm"        validate:"required"`
	Generation GenerationConfig `mapstructure:"generation" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port        int    `mapstructure:"port"        validate:"required,gt=0,lt=65536"`
	LogLevel    string `mapstructure:"log_level"   validate:"required,oneof=debug info warn error"`
	Environment string `mapstructure:"environment" validate:"required,oneof=development staging production"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required,url"`
}

// AuthConfig contains the settings for validating bearer tokens on the
// generation endpoint. Tokens are minted by the surrounding platform;
// this service only verifies them.
type AuthConfig struct {
	JWTSecret string `mapstructure:"jwt_secret" validate:"required,min=32"`
}

// StorageConfig contains the object storage destination settings.
type StorageConfig struct {
	// Bucket is the destination bucket for generated pages.
	Bucket string `mapstructure:"bucket" validate:"required"`

	// Region is the bucket's region.
	Region string `mapstructure:"region" validate:"required"`

	// CacheMaxAgeSeconds is the max-age served with stored pages.
	CacheMaxAgeSeconds int `mapstructure:"cache_max_age_seconds" validate:"gte=0"`
}

// LLMConfig contains all LLM integration related settings.
type LLMConfig struct {
	GeminiAPIKey string `mapstructure:"gemini_api_key" validate:"required"`

	// ModelName selects the inference model. A default exists, so
	// deployments only override it deliberately.
	ModelName string `mapstructure:"model_name" validate:"required"`

	// MaxRetries bounds retry attempts for transient inference errors.
	MaxRetries int `mapstructure:"max_retries" validate:"gte=0"`

	// RetryDelaySeconds is the base delay for exponential backoff.
	RetryDelaySeconds int `mapstructure:"retry_delay_seconds" validate:"gte=1"`
}

// GenerationConfig tunes batch processing.
type GenerationConfig struct {
	// WorkerCount bounds how many (topic, category) pairs are processed
	// concurrently, keeping inference API usage under quota.
	WorkerCount int `mapstructure:"worker_count" validate:"gte=1"`

	// PairTimeoutSeconds bounds the end-to-end processing of a single
	// pair, covering both the inference and storage calls.
	PairTimeoutSeconds int `mapstructure:"pair_timeout_seconds" validate:"gte=1"`
}

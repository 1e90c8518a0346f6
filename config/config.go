// Package config handles loading and validation of application configuration
// from environment variables.
package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/codeby-aftab/trip-ai-backend/logger"
	"github.com/spf13/viper"
)

// Environment represents the application's running environment (development or production).
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvProduction  Environment = "production"
)

// Generation provider identifiers.
const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

// ServerConfig holds server-specific configuration.
type ServerConfig struct {
	Environment    Environment `mapstructure:"ENVIRONMENT" yaml:"environment"`
	Port           string      `mapstructure:"PORT" yaml:"port"`
	AllowedOrigins []string    `mapstructure:"ALLOWED_ORIGINS" yaml:"allowed_origins"`
	Version        string      `mapstructure:"VERSION" yaml:"version"`
}

// RedisConfig holds Redis connection details for the key-value store.
type RedisConfig struct {
	Address      string `mapstructure:"ADDRESS" yaml:"address"`
	Password     string `mapstructure:"PASSWORD" yaml:"password"`
	DB           int    `mapstructure:"DB" yaml:"db"`
	UseTLS       bool   `mapstructure:"USE_TLS" yaml:"use_tls"`
	PoolSize     int    `mapstructure:"POOL_SIZE" yaml:"pool_size"`
	MinIdleConns int    `mapstructure:"MIN_IDLE_CONNS" yaml:"min_idle_conns"`
}

// ExternalServices holds API keys and URLs for external collaborators.
type ExternalServices struct {
	GeminiAPIKey        string `mapstructure:"GEMINI_API_KEY"`
	GeminiBaseURL       string `mapstructure:"GEMINI_BASE_URL"`
	GeminiModel         string `mapstructure:"GEMINI_MODEL"`
	OpenAIAPIKey        string `mapstructure:"OPENAI_API_KEY"`
	OpenAIBaseURL       string `mapstructure:"OPENAI_BASE_URL"`
	OpenAIModel         string `mapstructure:"OPENAI_MODEL"`
	ExchangeRateAPIKey  string `mapstructure:"EXCHANGE_RATE_API_KEY"`
	ExchangeRateBaseURL string `mapstructure:"EXCHANGE_RATE_BASE_URL"`
}

// GenerationConfig holds configuration for the trip-plan generation flow.
type GenerationConfig struct {
	// Provider selects the generator backend: "gemini" or "openai".
	Provider string `mapstructure:"PROVIDER" yaml:"provider"`
	// TimeoutSeconds is the HTTP client timeout for a single generation call.
	TimeoutSeconds int `mapstructure:"TIMEOUT_SECONDS" yaml:"timeout_seconds"`
}

// Config aggregates all application configuration sections.
type Config struct {
	Server           ServerConfig     `mapstructure:"SERVER" yaml:"server"`
	Redis            RedisConfig      `mapstructure:"REDIS" yaml:"redis"`
	ExternalServices ExternalServices `mapstructure:"EXTERNAL_SERVICES" yaml:"external_services"`
	Generation       GenerationConfig `mapstructure:"GENERATION" yaml:"generation"`
}

// IsDevelopment returns true if the application is running in development environment.
func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == EnvDevelopment
}

// IsProduction returns true if the application is running in production environment.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == EnvProduction
}

// bindEnvVars binds multiple environment variables to config keys.
// Format: []{configKey, envVar}
func bindEnvVars(v *viper.Viper, bindings [][2]string) error {
	for _, b := range bindings {
		if err := v.BindEnv(b[0], b[1]); err != nil {
			return fmt.Errorf("failed to bind %s: %w", b[0], err)
		}
	}
	return nil
}

// LoadConfig loads configuration from environment variables using Viper,
// sets default values, binds environment variables to config struct fields,
// unmarshals the configuration, and validates it.
func LoadConfig() (*Config, error) {
	v := viper.New()
	log := logger.GetLogger()

	v.SetDefault("SERVER.ENVIRONMENT", EnvDevelopment)
	v.SetDefault("SERVER.PORT", "8080")
	v.SetDefault("SERVER.ALLOWED_ORIGINS", []string{"*"})
	v.SetDefault("SERVER.VERSION", "dev")
	v.SetDefault("REDIS.DB", 0)
	v.SetDefault("REDIS.ADDRESS", "localhost:6379")
	v.SetDefault("REDIS.PASSWORD", "")
	v.SetDefault("REDIS.USE_TLS", false)
	v.SetDefault("REDIS.POOL_SIZE", 3)
	v.SetDefault("REDIS.MIN_IDLE_CONNS", 1)
	v.SetDefault("EXTERNAL_SERVICES.GEMINI_BASE_URL", "https://generativelanguage.googleapis.com/v1beta")
	v.SetDefault("EXTERNAL_SERVICES.GEMINI_MODEL", "gemini-2.5-flash")
	v.SetDefault("EXTERNAL_SERVICES.OPENAI_BASE_URL", "https://api.openai.com/v1")
	v.SetDefault("EXTERNAL_SERVICES.OPENAI_MODEL", "gpt-5-mini")
	v.SetDefault("EXTERNAL_SERVICES.EXCHANGE_RATE_BASE_URL", "https://v6.exchangerate-api.com/v6")
	v.SetDefault("GENERATION.PROVIDER", ProviderGemini)
	v.SetDefault("GENERATION.TIMEOUT_SECONDS", 60)

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Bind environment variables
	envBindings := [][2]string{
		// Server config
		{"SERVER.ENVIRONMENT", "SERVER_ENVIRONMENT"},
		{"SERVER.PORT", "PORT"},
		{"SERVER.ALLOWED_ORIGINS", "ALLOWED_ORIGINS"},
		{"SERVER.VERSION", "VERSION"},
		// Redis config
		{"REDIS.ADDRESS", "REDIS_ADDRESS"},
		{"REDIS.PASSWORD", "REDIS_PASSWORD"},
		{"REDIS.DB", "REDIS_DB"},
		{"REDIS.USE_TLS", "REDIS_USE_TLS"},
		// External services
		{"EXTERNAL_SERVICES.GEMINI_API_KEY", "GEMINI_API_KEY"},
		{"EXTERNAL_SERVICES.GEMINI_BASE_URL", "GEMINI_BASE_URL"},
		{"EXTERNAL_SERVICES.GEMINI_MODEL", "GEMINI_MODEL"},
		{"EXTERNAL_SERVICES.OPENAI_API_KEY", "OPENAI_API_KEY"},
		{"EXTERNAL_SERVICES.OPENAI_BASE_URL", "OPENAI_BASE_URL"},
		{"EXTERNAL_SERVICES.OPENAI_MODEL", "OPENAI_MODEL"},
		{"EXTERNAL_SERVICES.EXCHANGE_RATE_API_KEY", "EXCHANGE_RATE_API_KEY"},
		{"EXTERNAL_SERVICES.EXCHANGE_RATE_BASE_URL", "EXCHANGE_RATE_BASE_URL"},
		// Generation config
		{"GENERATION.PROVIDER", "GENERATION_PROVIDER"},
		{"GENERATION.TIMEOUT_SECONDS", "GENERATION_TIMEOUT_SECONDS"},
	}

	if err := bindEnvVars(v, envBindings); err != nil {
		return nil, err
	}

	log.Infow("Configuration loaded",
		"environment", v.GetString("SERVER.ENVIRONMENT"),
		"server_port", v.GetString("SERVER.PORT"),
		"generation_provider", v.GetString("GENERATION.PROVIDER"),
		"gemini_key", logger.MaskAPIKey(v.GetString("EXTERNAL_SERVICES.GEMINI_API_KEY")),
		"exchange_rate_key", logger.MaskAPIKey(v.GetString("EXTERNAL_SERVICES.EXCHANGE_RATE_API_KEY")),
	)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config unmarshal failed: %w", err)
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	log.Info("Configuration validated successfully")
	return &cfg, nil
}

// validateConfig checks if the loaded configuration values are valid.
func validateConfig(cfg *Config) error {
	log := logger.GetLogger()

	// Validate Server Config
	if cfg.Server.Port == "" {
		return fmt.Errorf("server port is required")
	}
	// Validate AllowedOrigins format if not wildcard
	if !containsWildcard(cfg.Server.AllowedOrigins) {
		for _, origin := range cfg.Server.AllowedOrigins {
			if _, err := url.ParseRequestURI(origin); err != nil {
				return fmt.Errorf("invalid allowed origin '%s': %w", origin, err)
			}
		}
	}

	// Validate Redis Config
	if cfg.Redis.Address == "" {
		return fmt.Errorf("redis address is required")
	}
	if cfg.Redis.Password == "" && cfg.Redis.UseTLS {
		log.Warn("Redis password is not set, but TLS is enabled. Ensure this is correct for your Redis provider.")
	}

	// Validate Generation Config
	switch cfg.Generation.Provider {
	case ProviderGemini:
		if cfg.ExternalServices.GeminiAPIKey == "" && cfg.IsProduction() {
			return fmt.Errorf("gemini API key is required in production")
		}
	case ProviderOpenAI:
		if cfg.ExternalServices.OpenAIAPIKey == "" && cfg.IsProduction() {
			return fmt.Errorf("openai API key is required in production")
		}
	default:
		return fmt.Errorf("unknown generation provider: %s", cfg.Generation.Provider)
	}
	if cfg.Generation.TimeoutSeconds <= 0 {
		return fmt.Errorf("generation timeout must be positive")
	}

	// The exchange-rate key is optional: without it the service falls back
	// to the built-in static rate table.
	if cfg.ExternalServices.ExchangeRateAPIKey == "" {
		log.Warn("Exchange-rate API key not set, serving the built-in static rate table")
	}

	return nil
}

// containsWildcard checks if the list of allowed origins contains the wildcard "*".
func containsWildcard(origins []string) bool {
	for _, origin := range origins {
		if origin == "*" {
			return true
		}
	}
	return false
}

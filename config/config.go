package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	RateLimit RateLimitConfig
	Cache     CacheConfig
	Scaling   ScalingConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// RateLimitConfig holds per-IP rate limiting configuration
type RateLimitConfig struct {
	PerSecond float64 `mapstructure:"per_second"`
	Burst     int     `mapstructure:"burst"`
}

// CacheConfig holds cache-related configuration
type CacheConfig struct {
	TTL time.Duration `mapstructure:"ttl"`
}

// ScalingConfig holds limits and debug options for the scaling service
type ScalingConfig struct {
	MaxMultiplier      float64 `mapstructure:"max_multiplier"`
	EnableDebugLogging bool    `mapstructure:"enable_debug_logging"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/ladle/")

	// Environment variable settings
	v.SetEnvPrefix("LADLE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set default values
	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables and defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate configuration
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"*"})

	// Rate limit defaults
	v.SetDefault("ratelimit.per_second", 10)
	v.SetDefault("ratelimit.burst", 20)

	// Cache defaults
	v.SetDefault("cache.ttl", "1h")

	// Scaling defaults
	v.SetDefault("scaling.max_multiplier", 100)
	v.SetDefault("scaling.enable_debug_logging", false)
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Server.Port == "" {
		return fmt.Errorf("server port must not be empty")
	}

	switch config.Server.Environment {
	case "development", "production", "test":
	default:
		return fmt.Errorf("environment must be development, production or test, got: %s", config.Server.Environment)
	}

	if config.RateLimit.PerSecond <= 0 {
		return fmt.Errorf("rate limit per_second must be positive, got: %g", config.RateLimit.PerSecond)
	}

	if config.Scaling.MaxMultiplier <= 0 {
		return fmt.Errorf("scaling max_multiplier must be positive, got: %g", config.Scaling.MaxMultiplier)
	}

	return nil
}

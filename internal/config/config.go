package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Database configuration
	StoragePath string `mapstructure:"STORAGE_PATH"`
	DatabaseURL string `mapstructure:"DATABASE_URL"`
	DBLogLevel  string `mapstructure:"DB_LOG_LEVEL"`

	// Cache configuration
	CacheTTLSeconds int `mapstructure:"CACHE_TTL_SECONDS"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	// Set default values
	setDefaults(v)

	// Read config file if it exists
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Fall back to the SQLite file when no URL is provided
	if config.DatabaseURL == "" {
		config.DatabaseURL = buildDatabaseURL(&config)
	}

	// Validate required fields
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("PORT", "9000")
	v.SetDefault("LOG_LEVEL", "info")

	// Database defaults
	v.SetDefault("STORAGE_PATH", "./storage/players-sqlite3.db")
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("DB_LOG_LEVEL", "error")

	// Cache defaults
	v.SetDefault("CACHE_TTL_SECONDS", 600)
}

func buildDatabaseURL(config *Config) string {
	return config.StoragePath
}

func validate(config *Config) error {
	if strings.TrimSpace(config.Port) == "" {
		return fmt.Errorf("port is required")
	}

	if config.DatabaseURL == "" {
		return fmt.Errorf("storage path or database URL is required")
	}

	if config.CacheTTLSeconds <= 0 {
		return fmt.Errorf("cache TTL must be positive, got %d", config.CacheTTLSeconds)
	}

	return nil
}

// CacheTTL returns the configured response cache time-to-live
func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLSeconds) * time.Second
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

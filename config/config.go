package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server     ServerConfig
	Extraction ExtractionConfig
	Matching   MatchingConfig
	Cache      CacheConfig
	RateLimit  RateLimitConfig
	Vocabulary VocabularyConfig
	Store      StoreConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// ExtractionConfig tunes the deal-extraction pipeline
type ExtractionConfig struct {
	WindowRadius  int     `mapstructure:"window_radius"`
	MinNameLength int     `mapstructure:"min_name_length"`
	MaxNameLength int     `mapstructure:"max_name_length"`
	MinNameScore  float64 `mapstructure:"min_name_score"`
	PriceCeiling  float64 `mapstructure:"price_ceiling"`
	Debug         bool    `mapstructure:"debug"`
}

// MatchingConfig tunes the cross-retailer matcher
type MatchingConfig struct {
	Threshold        float64 `mapstructure:"threshold"`
	BrandBonus       float64 `mapstructure:"brand_bonus"`
	UseSequenceRatio bool    `mapstructure:"use_sequence_ratio"`
	Debug            bool    `mapstructure:"debug"`
}

// CacheConfig holds comparison-report cache configuration
type CacheConfig struct {
	TTL time.Duration `mapstructure:"ttl"`
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	PerIP int `mapstructure:"per_ip"`
}

// VocabularyConfig points at the external keyword-table file. When File is
// empty the built-in default vocabulary is used.
type VocabularyConfig struct {
	File string `mapstructure:"file"`
}

// StoreConfig holds catalogue persistence configuration
type StoreConfig struct {
	Dir string `mapstructure:"dir"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/deallens/")

	v.SetEnvPrefix("DEALLENS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	// Config file is optional; env vars and defaults cover the rest
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

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

	// Extraction defaults
	v.SetDefault("extraction.window_radius", 8)
	v.SetDefault("extraction.min_name_length", 10)
	v.SetDefault("extraction.max_name_length", 150)
	v.SetDefault("extraction.min_name_score", 3.0)
	v.SetDefault("extraction.price_ceiling", 100000.0)
	v.SetDefault("extraction.debug", false)

	// Matching defaults
	v.SetDefault("matching.threshold", 0.55)
	v.SetDefault("matching.brand_bonus", 0.2)
	v.SetDefault("matching.use_sequence_ratio", false)
	v.SetDefault("matching.debug", false)

	// Cache defaults
	v.SetDefault("cache.ttl", "1h")

	// Rate limit defaults
	v.SetDefault("ratelimit.per_ip", 100)

	// Store defaults
	v.SetDefault("store.dir", "./data")
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Extraction.WindowRadius <= 0 {
		return fmt.Errorf("extraction window radius must be positive, got: %d", config.Extraction.WindowRadius)
	}

	if config.Extraction.MinNameLength >= config.Extraction.MaxNameLength {
		return fmt.Errorf("extraction name length bounds are inverted: min %d, max %d",
			config.Extraction.MinNameLength, config.Extraction.MaxNameLength)
	}

	if config.Matching.Threshold <= 0 || config.Matching.Threshold > 1 {
		return fmt.Errorf("matching threshold must be in (0, 1], got: %v", config.Matching.Threshold)
	}

	if config.Extraction.PriceCeiling <= 0 {
		return fmt.Errorf("price ceiling must be positive, got: %v", config.Extraction.PriceCeiling)
	}

	return nil
}

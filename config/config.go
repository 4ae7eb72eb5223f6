package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Search    SearchConfig
	Cache     CacheConfig
	Auth      AuthConfig
	Database  DatabaseConfig
	RateLimit RateLimitConfig
	Recommend RecommendConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	TrustedProxies []string `mapstructure:"trusted_proxies"` // IPs/CIDRs allowed to set X-Forwarded-For; comma-separated in env
}

// SearchConfig holds Google Custom Search API configuration
type SearchConfig struct {
	APIKey            string        `mapstructure:"api_key"`
	CX                string        `mapstructure:"cx"`
	BaseURL           string        `mapstructure:"base_url"`
	Timeout           time.Duration `mapstructure:"timeout"`
	RequestsPerSecond float64       `mapstructure:"requests_per_second"`
	Burst             int           `mapstructure:"burst"`
}

// CacheConfig holds cache-related configuration
type CacheConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Type     string        `mapstructure:"type"` // "memory" or "redis"
	RedisURL string        `mapstructure:"redis_url"`
	TTL      time.Duration `mapstructure:"ttl"`
}

// AuthConfig holds token and password hashing configuration
type AuthConfig struct {
	JWTSecret  string        `mapstructure:"jwt_secret"`
	TokenTTL   time.Duration `mapstructure:"token_ttl"`
	BcryptCost int           `mapstructure:"bcrypt_cost"`
}

// DatabaseConfig selects the user store
type DatabaseConfig struct {
	Type string `mapstructure:"type"` // "memory" or "postgres"
	URL  string `mapstructure:"url"`
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	PerIP int `mapstructure:"per_ip"` // requests per minute, 0 disables
}

// RecommendConfig tunes product classification
type RecommendConfig struct {
	Workers            int  `mapstructure:"workers"`
	EnableDebugLogging bool `mapstructure:"enable_debug_logging"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	if err := loadEnvFile(); err != nil {
		return nil, fmt.Errorf("error reading .env file: %w", err)
	}

	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/safeglow/")

	v.SetEnvPrefix("SAFEGLOW")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	// Config file is optional; env vars and defaults are enough
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

// loadEnvFile copies variables from ./.env into the process environment
// without overriding variables that are already set
func loadEnvFile() error {
	if _, err := os.Stat(".env"); errors.Is(err, os.ErrNotExist) {
		return nil
	}

	env := viper.New()
	env.SetConfigFile(".env")
	env.SetConfigType("env")
	if err := env.ReadInConfig(); err != nil {
		return err
	}

	// viper lowercases keys; environment variable names are uppercase
	for _, key := range env.AllKeys() {
		name := strings.ToUpper(key)
		if _, exists := os.LookupEnv(name); exists {
			continue
		}
		if err := os.Setenv(name, env.GetString(key)); err != nil {
			return err
		}
	}

	return nil
}

// setDefaults sets default configuration values. Every key must have a
// default so AutomaticEnv can override it during Unmarshal.
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "4000")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:*", "exp://*"})
	v.SetDefault("server.trusted_proxies", []string{})

	v.SetDefault("search.api_key", "")
	v.SetDefault("search.cx", "")
	v.SetDefault("search.base_url", "https://www.googleapis.com/customsearch/v1")
	v.SetDefault("search.timeout", "10s")
	v.SetDefault("search.requests_per_second", 1.0)
	v.SetDefault("search.burst", 5)

	v.SetDefault("cache.enabled", false)
	v.SetDefault("cache.type", "memory")
	v.SetDefault("cache.redis_url", "")
	v.SetDefault("cache.ttl", "6h")

	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.token_ttl", "168h") // 7 days
	v.SetDefault("auth.bcrypt_cost", 10)

	v.SetDefault("database.type", "memory")
	v.SetDefault("database.url", "")

	v.SetDefault("ratelimit.per_ip", 60)

	v.SetDefault("recommend.workers", 0)
	v.SetDefault("recommend.enable_debug_logging", false)
}

// devJWTSecret is only accepted outside production
const devJWTSecret = "devsecret"

// validate validates the configuration and fills environment-dependent defaults
func validate(config *Config) error {
	if config.Cache.Type != "memory" && config.Cache.Type != "redis" {
		return fmt.Errorf("cache type must be 'memory' or 'redis', got: %s", config.Cache.Type)
	}

	if config.Cache.Type == "redis" && config.Cache.RedisURL == "" {
		return fmt.Errorf("Redis URL is required when cache type is 'redis'")
	}

	if config.Database.Type != "memory" && config.Database.Type != "postgres" {
		return fmt.Errorf("database type must be 'memory' or 'postgres', got: %s", config.Database.Type)
	}

	if config.Database.Type == "postgres" && config.Database.URL == "" {
		return fmt.Errorf("database URL is required when database type is 'postgres' (set SAFEGLOW_DATABASE_URL)")
	}

	if config.Auth.JWTSecret == "" {
		if config.Server.Environment == "production" {
			return fmt.Errorf("JWT secret is required in production (set SAFEGLOW_AUTH_JWT_SECRET)")
		}
		config.Auth.JWTSecret = devJWTSecret
	}

	if config.RateLimit.PerIP < 0 {
		return fmt.Errorf("rate limit per IP must not be negative, got: %d", config.RateLimit.PerIP)
	}

	return nil
}

// SearchConfigured reports whether both search credentials are present
func (c *Config) SearchConfigured() bool {
	return c.Search.APIKey != "" && c.Search.CX != ""
}

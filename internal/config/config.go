package config

import (
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"strings"
	"time"
)

// Config represents the application configuration structure
type Config struct {
	Environment string `default:"development"`
	LogLevel    string `split_words:"true"`

	ListenAddress   string        `default:":8080" split_words:"true"`
	ShutdownTimeout time.Duration `default:"5s" split_words:"true"`

	// AllowedOrigins holds the origins allowed to access the API.
	// The single entry '*' enables the permissive static CORS headers.
	AllowedOrigins []string `default:"*" split_words:"true"`

	// RateLimitRequests limits the requests a single IP may issue per RateLimitWindow; 0 disables rate limiting
	RateLimitRequests int           `default:"0" split_words:"true"`
	RateLimitWindow   time.Duration `default:"1m" split_words:"true"`

	// Timezone is the IANA name of the time zone response timestamps are rendered in; empty means server-local
	Timezone string

	MetricsEnabled bool `default:"true" split_words:"true"`
}

// LoadFromEnv loads a new configuration structure using environment variables and an optional .env file
func LoadFromEnv() (*Config, error) {
	// Load a .env file if it exists
	_ = godotenv.Overload()

	// Load a new configuration structure using environment variables
	config := new(Config)
	if err := envconfig.Process("tinsig", config); err != nil {
		return nil, err
	}
	return config, nil
}

// IsEnvProduction checks whether the application runs in a production environment
func (config *Config) IsEnvProduction() bool {
	return strings.EqualFold(config.Environment, "production") || strings.EqualFold(config.Environment, "prod")
}

// AllowsAnyOrigin checks whether the permissive static CORS headers should be used
func (config *Config) AllowsAnyOrigin() bool {
	if len(config.AllowedOrigins) == 0 {
		return true
	}
	for _, origin := range config.AllowedOrigins {
		if strings.TrimSpace(origin) == "*" {
			return true
		}
	}
	return false
}

// Location resolves the configured time zone
func (config *Config) Location() (*time.Location, error) {
	if config.Timezone == "" {
		return time.Local, nil
	}
	return time.LoadLocation(config.Timezone)
}

package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration. Secrets (identity
// signing key, gateway key secret) are process-wide, loaded once at
// startup and read-only afterwards.
type Config struct {
	Server struct {
		Port string `yaml:"port" env:"SERVER_PORT"`
		Mode string `yaml:"mode" env:"SERVER_MODE"`
	} `yaml:"server"`

	Database struct {
		Host            string `yaml:"host" env:"DB_HOST"`
		Port            string `yaml:"port" env:"DB_PORT"`
		User            string `yaml:"user" env:"DB_USER"`
		Password        string `yaml:"password" env:"DB_PASSWORD"`
		DBName          string `yaml:"dbname" env:"DB_NAME"`
		SSLMode         string `yaml:"sslmode" env:"DB_SSLMODE"`
		MaxIdleConns    int    `yaml:"max_idle_conns" env:"DB_MAX_IDLE_CONNS"`
		MaxOpenConns    int    `yaml:"max_open_conns" env:"DB_MAX_OPEN_CONNS"`
		ConnMaxLifetime string `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME"`
	} `yaml:"database"`

	Identity struct {
		// Mode selects the verifier implementation: "jwt" validates
		// provider tokens locally, "http" delegates to the provider's
		// verification endpoint.
		Mode       string `yaml:"mode" env:"IDENTITY_MODE"`
		SigningKey string `yaml:"signing_key" env:"IDENTITY_SIGNING_KEY"`
		Issuer     string `yaml:"issuer" env:"IDENTITY_ISSUER"`
		OracleURL  string `yaml:"oracle_url" env:"IDENTITY_ORACLE_URL"`
		Timeout    string `yaml:"timeout" env:"IDENTITY_TIMEOUT"`
	} `yaml:"identity"`

	Gateway struct {
		KeyID     string `yaml:"key_id" env:"GATEWAY_KEY_ID"`
		KeySecret string `yaml:"key_secret" env:"GATEWAY_KEY_SECRET"`
		Currency  string `yaml:"currency" env:"GATEWAY_CURRENCY"`
	} `yaml:"gateway"`

	RateLimit struct {
		PerMinute int `yaml:"per_minute" env:"RATE_LIMIT_PER_MINUTE"`
	} `yaml:"rate_limit"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from a file and environment variables.
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration.
func setDefaults(config *Config) {
	config.Server.Port = "8080"
	config.Server.Mode = "development"

	config.Database.Host = "localhost"
	config.Database.Port = "5432"
	config.Database.User = "postgres"
	config.Database.Password = "postgres"
	config.Database.DBName = "coachdesk"
	config.Database.SSLMode = "disable"
	config.Database.MaxIdleConns = 5
	config.Database.MaxOpenConns = 20
	config.Database.ConnMaxLifetime = "1h"

	config.Identity.Mode = "jwt"
	config.Identity.Issuer = "coachdesk.app"
	config.Identity.Timeout = "5s"

	config.Gateway.Currency = "INR"

	config.RateLimit.PerMinute = 120

	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

// validateConfig ensures that the configuration is valid.
func validateConfig(config *Config) error {
	if config.Database.Host == "" {
		return fmt.Errorf("database host is required")
	}

	switch config.Identity.Mode {
	case "jwt":
		if config.Identity.SigningKey == "" {
			return fmt.Errorf("identity signing key is required in jwt mode")
		}
	case "http":
		if config.Identity.OracleURL == "" {
			return fmt.Errorf("identity oracle URL is required in http mode")
		}
	default:
		return fmt.Errorf("unknown identity mode %q", config.Identity.Mode)
	}

	if config.Gateway.KeyID == "" || config.Gateway.KeySecret == "" {
		return fmt.Errorf("gateway key pair is required")
	}

	if _, err := time.ParseDuration(config.Identity.Timeout); err != nil {
		return fmt.Errorf("invalid identity timeout format: %w", err)
	}

	return nil
}

// GetPostgresConnectionString returns the postgres connection string.
func (c *Config) GetPostgresConnectionString() string {
	sslMode := c.Database.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.DBName,
		sslMode,
	)
}

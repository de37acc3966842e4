package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port string `yaml:"port" env:"PORT"`
		Mode string `yaml:"mode" env:"SERVER_MODE"`
	} `yaml:"server"`

	Mongo struct {
		URI        string `yaml:"uri" env:"MONGO_URI"`
		Database   string `yaml:"database" env:"MONGO_DB"`
		Collection string `yaml:"collection" env:"MONGO_COLLECTION"`
	} `yaml:"mongo"`

	JWT struct {
		Secret     string `yaml:"secret" env:"JWT_SECRET"`
		Expiration string `yaml:"expiration" env:"JWT_EXPIRATION"`
		Issuer     string `yaml:"issuer" env:"JWT_ISSUER"`
	} `yaml:"jwt"`

	Supervisor struct {
		Workers     int    `yaml:"workers" env:"WORKERS"`
		MaxRestarts int    `yaml:"max_restarts" env:"SUPERVISOR_MAX_RESTARTS"`
		Backoff     string `yaml:"backoff" env:"SUPERVISOR_BACKOFF"`
		MaxBackoff  string `yaml:"max_backoff" env:"SUPERVISOR_MAX_BACKOFF"`
	} `yaml:"supervisor"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from a file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	// Try to read config file if it exists
	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	// Load a .env file if one is present, then override with environment variables
	_ = godotenv.Load()
	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	// Server defaults
	config.Server.Port = "3000"
	config.Server.Mode = "development"

	// Mongo defaults
	config.Mongo.URI = "mongodb://localhost:27017"
	config.Mongo.Database = "perkuliahan"
	config.Mongo.Collection = "mahasiswa"

	// JWT defaults
	config.JWT.Expiration = "24h"
	config.JWT.Issuer = "mhs-api"

	// Supervisor defaults reproduce the observed legacy behavior:
	// one worker per CPU, immediate refork, no restart cap.
	config.Supervisor.Workers = 0
	config.Supervisor.MaxRestarts = 0
	config.Supervisor.Backoff = "0s"
	config.Supervisor.MaxBackoff = "30s"

	// Logging defaults
	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

// loadFromEnv overrides configuration with environment variables
func loadFromEnv(config *Config) error {
	return processStructFields(config)
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if config.Mongo.URI == "" {
		return fmt.Errorf("mongo URI is required")
	}

	if config.Mongo.Database == "" {
		return fmt.Errorf("mongo database name is required")
	}

	if config.JWT.Secret == "" {
		return fmt.Errorf("JWT secret is required")
	}

	if _, err := time.ParseDuration(config.JWT.Expiration); err != nil {
		return fmt.Errorf("invalid JWT expiration format: %w", err)
	}

	if _, err := time.ParseDuration(config.Supervisor.Backoff); err != nil {
		return fmt.Errorf("invalid supervisor backoff format: %w", err)
	}

	if _, err := time.ParseDuration(config.Supervisor.MaxBackoff); err != nil {
		return fmt.Errorf("invalid supervisor max backoff format: %w", err)
	}

	if config.Supervisor.Workers < 0 {
		return fmt.Errorf("supervisor workers cannot be negative")
	}

	if config.Supervisor.MaxRestarts < 0 {
		return fmt.Errorf("supervisor max restarts cannot be negative")
	}

	return nil
}

// JWTExpiration returns the parsed token lifetime.
func (c *Config) JWTExpiration() time.Duration {
	d, err := time.ParseDuration(c.JWT.Expiration)
	if err != nil {
		return 24 * time.Hour
	}
	return d
}

// SupervisorBackoff returns the parsed initial refork delay.
func (c *Config) SupervisorBackoff() time.Duration {
	d, err := time.ParseDuration(c.Supervisor.Backoff)
	if err != nil {
		return 0
	}
	return d
}

// SupervisorMaxBackoff returns the parsed refork delay ceiling.
func (c *Config) SupervisorMaxBackoff() time.Duration {
	d, err := time.ParseDuration(c.Supervisor.MaxBackoff)
	if err != nil {
		return 30 * time.Second
	}
	return d
}

// GetEnv gets an environment variable or returns a default value
func GetEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

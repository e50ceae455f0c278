package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// DefaultTableName is used when DYNAMODB_TABLE is not set
const DefaultTableName = "think-from-zero-form-submissions"

// Store types
const (
	StoreTypeDynamoDB = "dynamodb"
	StoreTypeSQLite   = "sqlite"
	StoreTypeMemory   = "memory"
)

// Config holds all configuration for the application
type Config struct {
	Environment string
	Port        string
	LogLevel    string
	Store       StoreConfig
	RateLimit   RateLimitConfig
}

// StoreConfig holds submission store configuration
type StoreConfig struct {
	Type       string // "dynamodb", "sqlite" or "memory"
	TableName  string
	Region     string
	Endpoint   string
	AutoCreate bool
	SQLitePath string
}

// RateLimitConfig holds development server rate limiting
type RateLimitConfig struct {
	RequestsPerSecond float64
	Burst             int
}

// Load loads configuration from environment variables and an optional .env file
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("PORT", "8081")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("STORE_TYPE", StoreTypeDynamoDB)
	v.SetDefault("DYNAMODB_TABLE", DefaultTableName)
	v.SetDefault("AWS_REGION", "us-east-1")
	v.SetDefault("DYNAMODB_AUTO_CREATE", false)
	v.SetDefault("SQLITE_PATH", "./data/submissions.db")
	v.SetDefault("RATE_LIMIT_RPS", 10.0)
	v.SetDefault("RATE_LIMIT_BURST", 20)

	config := &Config{
		Environment: v.GetString("ENVIRONMENT"),
		Port:        v.GetString("PORT"),
		LogLevel:    v.GetString("LOG_LEVEL"),
		Store: StoreConfig{
			Type:       strings.ToLower(v.GetString("STORE_TYPE")),
			TableName:  v.GetString("DYNAMODB_TABLE"),
			Region:     v.GetString("AWS_REGION"),
			Endpoint:   v.GetString("DYNAMODB_ENDPOINT"),
			AutoCreate: v.GetBool("DYNAMODB_AUTO_CREATE"),
			SQLitePath: v.GetString("SQLITE_PATH"),
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: v.GetFloat64("RATE_LIMIT_RPS"),
			Burst:             v.GetInt("RATE_LIMIT_BURST"),
		},
	}

	// an exported but empty DYNAMODB_TABLE still falls back to the default
	if config.Store.TableName == "" {
		config.Store.TableName = DefaultTableName
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks that the configuration is usable
func (c *Config) Validate() error {
	switch c.Store.Type {
	case StoreTypeDynamoDB, StoreTypeSQLite, StoreTypeMemory:
	default:
		return fmt.Errorf("invalid STORE_TYPE %q: must be one of %s, %s, %s",
			c.Store.Type, StoreTypeDynamoDB, StoreTypeSQLite, StoreTypeMemory)
	}

	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid LOG_LEVEL %q: %w", c.LogLevel, err)
	}

	return nil
}

// NewLogger builds the process logger for the configured level
func (c *Config) NewLogger(json bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)

	if level, err := logrus.ParseLevel(c.LogLevel); err == nil {
		logger.SetLevel(level)
	}

	if json {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	return logger
}

// GetEnv gets an environment variable with a fallback value
func GetEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

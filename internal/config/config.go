package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds the whole application configuration.
// Populated from environment variables.
type Config struct {
	App      AppConfig
	Mongo    MongoConfig
	Profiler ProfilerConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
}

type MongoConfig struct {
	URI            string
	Database       string
	ConnectTimeout time.Duration
	MaxRetries     int
	RetryDelay     time.Duration
}

type ProfilerConfig struct {
	Enabled bool
	Dir     string // where per-endpoint timing reports are written
}

const defaultMongoURI = "mongodb://localhost:27017"

// Load reads config from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Library API"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "8000"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
		Mongo: MongoConfig{
			URI:            getEnv("MONGO_URI", defaultMongoURI),
			Database:       getEnv("MONGO_DATABASE", "pythonlib"),
			ConnectTimeout: time.Duration(getEnvInt("MONGO_CONNECT_TIMEOUT_SECONDS", 10)) * time.Second,
			MaxRetries:     getEnvInt("MONGO_MAX_RETRIES", 3),
			RetryDelay:     time.Duration(getEnvInt("MONGO_RETRY_DELAY_SECONDS", 2)) * time.Second,
		},
		Profiler: ProfilerConfig{
			Enabled: getEnvBool("PROFILER_ENABLED", false),
			Dir:     getEnv("PROFILER_DIR", "."),
		},
	}

	// Validate critical config
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks that the config is usable.
func (c *Config) Validate() error {
	if c.Mongo.Database == "" {
		return fmt.Errorf("MONGO_DATABASE must not be empty")
	}

	// Production must point at an explicit store
	if c.App.Environment == "production" {
		if c.Mongo.URI == defaultMongoURI {
			return fmt.Errorf("MONGO_URI must be set in production")
		}
	}

	return nil
}

// IsProduction reports whether the process-wide production flag is set.
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// Helper functions
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

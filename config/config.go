package config

import (
	"fmt"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	Server struct {
		Port        string   `env:"SERVER_PORT" envDefault:"5250"`
		GinMode     string   `env:"GIN_MODE" envDefault:"release"`
		CORSOrigins []string `env:"CORS_ORIGINS" envDefault:"*" envSeparator:","`
	}

	Logging struct {
		Level string `env:"LOG_LEVEL" envDefault:"info"`
	}

	Database struct {
		// sqlite or mysql
		Driver string `env:"DB_DRIVER" envDefault:"sqlite"`
		Path   string `env:"DB_PATH" envDefault:"database/listings.db"`
		DSN    string `env:"DB_DSN"`
	}

	// BatchProcessing configuration for POST /api/cma/batch
	BatchProcessing struct {
		// Maximum number of requests accepted in one batch
		MaxBatchSize int `env:"BATCH_MAX_SIZE" envDefault:"25"`

		// Number of concurrent CMA workers per batch
		ProcessorCount int `env:"BATCH_PROCESSOR_COUNT" envDefault:"2"`
	}

	// Optional YAML file overriding tolerance and assumption defaults
	DefaultsFile string `env:"CMA_DEFAULTS_FILE"`
}

// LoadConfig reads an optional .env file and then the process environment.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the server cannot start with.
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case "sqlite":
		if c.Database.Path == "" {
			return fmt.Errorf("DB_PATH is required for the sqlite driver")
		}
	case "mysql":
		if c.Database.DSN == "" {
			return fmt.Errorf("DB_DSN is required for the mysql driver")
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER: %s", c.Database.Driver)
	}
	if c.BatchProcessing.ProcessorCount < 1 {
		return fmt.Errorf("BATCH_PROCESSOR_COUNT must be at least 1")
	}
	if c.BatchProcessing.MaxBatchSize < 1 {
		return fmt.Errorf("BATCH_MAX_SIZE must be at least 1")
	}
	return nil
}

package config

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Storage driver names accepted in STORAGE_DRIVER.
const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
)

// Config holds all application configuration
type Config struct {
	Port          string
	GoEnv         string
	StorageDriver string
	DatabaseURL   string
	SQLitePath    string
	LogLevel      string
}

// Load loads the configuration from environment variables.
// It automatically determines which .env file to load based on GO_ENV.
func Load() (*Config, error) {
	// Determine which environment file to load
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	// Try to load environment-specific file first
	envFile := fmt.Sprintf(".env.%s", env)
	if err := godotenv.Load(envFile); err != nil {
		// If environment-specific file doesn't exist, try .env
		if err := godotenv.Load(); err != nil {
			log.Printf("No .env file found, using system environment variables")
		}
	} else {
		log.Printf("Loaded configuration from %s", envFile)
	}

	config := &Config{
		Port:          getEnv("PORT", "8080"),
		GoEnv:         getEnv("GO_ENV", "development"),
		StorageDriver: getEnv("STORAGE_DRIVER", ""),
		DatabaseURL:   getEnv("DATABASE_URL", ""),
		SQLitePath:    getEnv("SQLITE_PATH", "database.sqlite"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
	}

	if config.StorageDriver == "" {
		config.StorageDriver = inferDriver(config.DatabaseURL)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// inferDriver picks a storage driver from the DATABASE_URL scheme.
// No URL means the embedded SQLite file, matching local development.
func inferDriver(databaseURL string) string {
	switch {
	case databaseURL == "":
		return DriverSQLite
	case strings.HasPrefix(databaseURL, "postgres://"),
		strings.HasPrefix(databaseURL, "postgresql://"):
		return DriverPostgres
	case strings.HasPrefix(databaseURL, "mysql://"):
		return DriverMySQL
	default:
		return DriverSQLite
	}
}

// Validate checks that the selected driver has what it needs
func (c *Config) Validate() error {
	switch c.StorageDriver {
	case DriverMemory, DriverSQLite:
		return nil
	case DriverPostgres, DriverMySQL:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required for the %s driver", c.StorageDriver)
		}
		return nil
	default:
		return fmt.Errorf("unsupported STORAGE_DRIVER %q (supported: memory, sqlite, postgres, mysql)", c.StorageDriver)
	}
}

// IsProduction returns true if the application is running in production mode
func (c *Config) IsProduction() bool {
	return c.GoEnv == "production"
}

// IsTest returns true if the application is running in test mode
func (c *Config) IsTest() bool {
	return c.GoEnv == "test"
}

// IsDevelopment returns true if the application is running in development mode
func (c *Config) IsDevelopment() bool {
	return c.GoEnv == "development"
}

var appConfig *Config

// SetConfig stores the loaded configuration for global access
func SetConfig(cfg *Config) {
	appConfig = cfg
}

// GetConfig returns the stored configuration
func GetConfig() *Config {
	return appConfig
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

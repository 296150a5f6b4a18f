package config

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// ConnectDatabase opens the relational engine selected by the configured
// driver and configures the connection pool. Not used with the memory
// driver.
func ConnectDatabase(cfg *Config) error {
	dialector, err := buildDialector(cfg)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}

	DB, err = gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := DB.DB()
	if err != nil {
		return fmt.Errorf("database: get sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return fmt.Errorf("database: ping: %w", err)
	}

	log.Printf("Database connection established (%s)", cfg.StorageDriver)
	return nil
}

func buildDialector(cfg *Config) (gorm.Dialector, error) {
	switch cfg.StorageDriver {
	case DriverSQLite:
		return sqlite.Open(cfg.SQLitePath), nil
	case DriverPostgres:
		return postgres.Open(cfg.DatabaseURL), nil
	case DriverMySQL:
		return mysql.Open(cfg.DatabaseURL), nil
	default:
		return nil, fmt.Errorf("no dialector for driver %q", cfg.StorageDriver)
	}
}

// GetDB returns the database instance
func GetDB() *gorm.DB {
	return DB
}

// SetDB replaces the database instance. Test seam.
func SetDB(db *gorm.DB) {
	DB = db
}

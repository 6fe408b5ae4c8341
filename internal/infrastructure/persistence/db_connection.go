package persistence

import (
	"fmt"
	"log"
	"net/url"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Database URL scheme constants
const (
	PostgresScheme    = "postgres"
	PostgresAltScheme = "postgresql"
	SqliteScheme      = "sqlite"
)

// NewDBConnection creates a database connection from a database URL.
// The URL scheme selects the driver: postgres:// (or postgresql://) for
// PostgreSQL and sqlite:// for SQLite. Supports both production and test
// environments.
func NewDBConnection(databaseURL string) (*gorm.DB, error) {
	parsed, err := url.Parse(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid database URL: %w", err)
	}

	switch parsed.Scheme {
	case PostgresScheme, PostgresAltScheme:
		return connectPostgres(databaseURL)
	case SqliteScheme:
		return connectSQLite(databaseURL)
	default:
		return nil, fmt.Errorf("unsupported database URL scheme: %q", parsed.Scheme)
	}
}

// connectPostgres establishes a PostgreSQL connection; the pgx driver accepts
// the URL form of the DSN directly
func connectPostgres(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}

	return db, nil
}

// connectSQLite establishes an SQLite connection from sqlite://<path>,
// defaulting to in-memory when no path is given
func connectSQLite(databaseURL string) (*gorm.DB, error) {
	dsn := strings.TrimPrefix(databaseURL, SqliteScheme+"://")
	if dsn == "" {
		dsn = ":memory:"
	}

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to SQLite: %w", err)
	}

	return db, nil
}

// CloseDB closes the database connection
func CloseDB(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}

	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database connection: %w", err)
	}
	return nil
}

// DropDatabase drops a PostgreSQL database (test cleanup utility)
func DropDatabase(adminURL, dbName string) error {
	db, err := connectPostgres(adminURL)
	if err != nil {
		return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	defer func() {
		if err := CloseDB(db); err != nil {
			// Log error but don't fail since this is cleanup
			log.Printf("Warning: failed to close database connection: %v", err)
		}
	}()

	err = db.Exec(fmt.Sprintf("DROP DATABASE IF EXISTS %s", dbName)).Error
	if err != nil {
		return fmt.Errorf("failed to drop database '%s': %w", dbName, err)
	}

	return nil
}

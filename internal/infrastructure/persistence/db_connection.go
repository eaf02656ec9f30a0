package persistence

import (
	"errors"
	"fmt"

	"github.com/MGTheTrain/textbook-rsa/internal/infrastructure/persistence/models"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/config"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const sqliteInMemory = ":memory:"

// NewDBConnection opens the keypair store described by settings.
// For PostgreSQL the named database is created on first use.
func NewDBConnection(settings config.DatabaseSettings) (*gorm.DB, error) {
	switch settings.Type {
	case config.PostgresDbType:
		if err := ensurePostgresDatabase(settings); err != nil {
			return nil, err
		}
		return open(postgres.Open(fmt.Sprintf("%s dbname=%s", settings.DSN, settings.DBName)))
	case config.SqliteDbType:
		dsn := settings.DSN
		if dsn == "" {
			dsn = sqliteInMemory
		}
		db, err := open(sqlite.Open(dsn))
		if err != nil {
			return nil, err
		}
		if dsn == sqliteInMemory {
			// every pooled connection would otherwise see its own empty database
			if err := limitPool(db, 1); err != nil {
				return nil, err
			}
		}
		return db, nil
	default:
		return nil, fmt.Errorf("unsupported database type: %s", settings.Type)
	}
}

// MigrateSchema creates or updates the tables backing the keypair store
func MigrateSchema(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.KeypairModel{}); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
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

// DropDatabase drops a PostgreSQL database. Used for test cleanup.
func DropDatabase(adminDSN, dbName string) (err error) {
	db, err := open(postgres.Open(adminDSN))
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, CloseDB(db))
	}()

	if err := db.Exec(fmt.Sprintf("DROP DATABASE IF EXISTS %s", dbName)).Error; err != nil {
		return fmt.Errorf("failed to drop database '%s': %w", dbName, err)
	}
	return nil
}

func open(dialector gorm.Dialector) (*gorm.DB, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", dialector.Name(), err)
	}
	return db, nil
}

// ensurePostgresDatabase connects with the admin DSN and creates the target
// database. An already existing database is not an error.
func ensurePostgresDatabase(settings config.DatabaseSettings) error {
	admin, err := open(postgres.Open(settings.DSN))
	if err != nil {
		return err
	}

	var count int64
	err = admin.Raw("SELECT COUNT(*) FROM pg_database WHERE datname = ?", settings.DBName).Scan(&count).Error
	if err == nil && count == 0 {
		err = admin.Exec(fmt.Sprintf("CREATE DATABASE %s", settings.DBName)).Error
	}
	if err != nil {
		err = fmt.Errorf("failed to create database '%s': %w", settings.DBName, err)
	}
	return errors.Join(err, CloseDB(admin))
}

func limitPool(db *gorm.DB, maxOpen int) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}
	sqlDB.SetMaxOpenConns(maxOpen)
	return nil
}

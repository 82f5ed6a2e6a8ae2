package database

import (
	"fmt"
	"time"

	pkgLogger "github.com/sjperalta/stayledger-api/pkg/logger"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Options tunes the connection pool and SQL logging
type Options struct {
	Production    bool
	MaxOpenConns  int
	SlowThreshold time.Duration
}

// Connect establishes a connection to the PostgreSQL database. The service
// only reads, so the default write transaction wrapper is disabled.
func Connect(databaseURL string, opts Options) (*gorm.DB, error) {
	logLevel := logger.Warn
	if !opts.Production {
		logLevel = logger.Info
	}

	gormLogger := pkgLogger.NewGormLogger(logLevel, opts.SlowThreshold)

	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		Logger:                 gormLogger,
		SkipDefaultTransaction: true,
		PrepareStmt:            true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	maxOpen := opts.MaxOpenConns
	if maxOpen <= 0 {
		maxOpen = 20
	}
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetConnMaxLifetime(time.Hour)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

package database

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"invoicer/internal/infrastructure/config"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var ErrMissingDatabaseURL = errors.New("missing DATABASE_URL")

// ConnectPostgres opens the gorm connection backing the Postgres blob store.
func ConnectPostgres(cfg *config.Config) (*gorm.DB, error) {
	dsn := strings.TrimSpace(cfg.DatabaseURL)
	if dsn == "" {
		return nil, ErrMissingDatabaseURL
	}

	gormLogger := logger.New(
		log.New(os.Stdout, "[GORM] ", log.LstdFlags),
		logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
		},
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{Logger: gormLogger})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.Exec(`SET TIME ZONE 'UTC'`).Error; err != nil {
		log.Printf("[database][postgres] set timezone failed err=%v", err)
	}

	var dbName string
	_ = db.Raw("SELECT current_database()").Scan(&dbName)
	log.Printf("[database][postgres] connected db=%s", dbName)

	return db, nil
}

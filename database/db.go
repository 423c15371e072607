// Package database owns the database lifecycle: opened once at process
// start, injected into the handlers, closed on shutdown.
package database

import (
	"errors"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/areeb193/matraders-backend-sub001/config"
	"github.com/areeb193/matraders-backend-sub001/models"
)

// Open connects to postgres when a DSN is configured, otherwise to the
// embedded sqlite database, and migrates the storefront models.
func Open() (*gorm.DB, error) {
	var gormLogger gormlogger.Interface
	if config.IsDebug() {
		gormLogger = gormlogger.Default
	} else {
		gormLogger = gormlogger.Discard
	}

	c := &gorm.Config{Logger: gormLogger}

	var db *gorm.DB
	var err error
	if dsn := config.GetDatabaseDSN(); dsn != "" {
		db, err = gorm.Open(postgres.Open(dsn), c)
	} else {
		db, err = gorm.Open(sqlite.Open(config.GetDBPath()+"?cache=shared&_journal_mode=WAL"), c)
	}
	if err != nil {
		return nil, err
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates or updates the schema for all storefront models.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
	)
}

func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

package database

import (
	"fmt"
	"time"

	"gestman-backend/internal/database/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Options struct {
	LogLevel        logger.LogLevel
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	SkipMigrate     bool
	// Models to auto-migrate; defaults to nothing
	Models []interface{}
}

// ReferenceModels are stored in the reference database
func ReferenceModels() []interface{} {
	return []interface{}{
		&models.Location{},
		&models.AssetType{},
		&models.Asset{},
		&models.User{},
		&models.UserNote{},
		&models.ContactCategory{},
		&models.Contact{},
	}
}

// OperationalModels are stored in the operational database
func OperationalModels() []interface{} {
	return []interface{}{
		&models.MaintenanceType{},
		&models.ChecklistItem{},
		&models.Occurrence{},
		&models.ChecklistResult{},
		&models.ExecutionRecord{},
		&models.Alert{},
		&models.InventoryItem{},
		&models.StockMovement{},
		&models.MessagingSettings{},
		&models.NotificationChannel{},
		&models.DeliveryLog{},
		&models.FormTemplate{},
		&models.FormField{},
		&models.FormSubmission{},
	}
}

// InitializeReference opens the reference database and migrates its schema.
func InitializeReference(dsn string, opts *Options) (*gorm.DB, error) {
	return Initialize(dsn, withModels(opts, ReferenceModels()))
}

// InitializeOperational opens the operational database and migrates its schema.
func InitializeOperational(dsn string, opts *Options) (*gorm.DB, error) {
	return Initialize(dsn, withModels(opts, OperationalModels()))
}

func withModels(opts *Options, all []interface{}) *Options {
	o := Options{}
	if opts != nil {
		o = *opts
	}
	o.Models = all
	return &o
}

// Initialize opens a Postgres connection and creates the schema from GORM models.
func Initialize(dsn string, opts *Options) (*gorm.DB, error) {
	// Defaults
	if opts == nil {
		opts = &Options{}
	}
	if opts.LogLevel == 0 {
		opts.LogLevel = logger.Error
	}
	if opts.MaxOpenConns == 0 {
		opts.MaxOpenConns = 20
	}
	if opts.MaxIdleConns == 0 {
		opts.MaxIdleConns = 10
	}
	if opts.ConnMaxLifetime == 0 {
		opts.ConnMaxLifetime = 30 * time.Minute
	}
	if opts.ConnMaxIdleTime == 0 {
		opts.ConnMaxIdleTime = 10 * time.Minute
	}

	// Open DB
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(opts.LogLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(opts.MaxOpenConns)
		sqlDB.SetMaxIdleConns(opts.MaxIdleConns)
		sqlDB.SetConnMaxLifetime(opts.ConnMaxLifetime)
		sqlDB.SetConnMaxIdleTime(opts.ConnMaxIdleTime)
	}

	// Ensure required extension for UUID generation (used by BaseModel default gen_random_uuid())
	_ = db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto`).Error

	if !opts.SkipMigrate && len(opts.Models) > 0 {
		if err := db.AutoMigrate(opts.Models...); err != nil {
			return nil, fmt.Errorf("auto-migrate: %w", err)
		}
	}

	return db, nil
}

// Ping checks that the database answers
func Ping(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

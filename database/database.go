package database

import (
	"errors"
	"fmt"
	"log/slog"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/SuyashJain1994/Contract-Analyzer/config"
	"github.com/SuyashJain1994/Contract-Analyzer/model"
)

// Database wraps the gorm connection
type Database struct {
	db *gorm.DB
}

// Open opens the sqlite database and migrates the schema
func Open(cfg *config.DatabaseConfig) (*Database, error) {
	db, err := gorm.Open(sqlite.Open(cfg.Path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.AutoMigrate(&model.UserRecord{}, &model.AnalysisRecord{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	slog.Info("database ready", "path", cfg.Path)
	return &Database{db: db}, nil
}

// ErrNotFound is returned when a record does not exist
var ErrNotFound = errors.New("record not found")

// AnalysisByID looks up a stored analysis by its UUID
func (d *Database) AnalysisByID(id string) (*model.AnalysisRecord, error) {
	var record model.AnalysisRecord
	if err := d.db.First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to query analysis: %w", err)
	}
	return &record, nil
}

// Close closes the underlying connection
func (d *Database) Close() error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

package storage

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"

	"github.com/raykavin/pantalib/pkg/core"
)

// seriesRow is the table layout of the SQL storage. SavedAt holds unix
// nanoseconds.
type seriesRow struct {
	SeriesKey string `gorm:"primaryKey"`
	Payload   string
	SavedAt   int64 `gorm:"index"`
}

// likeEscaper escapes the LIKE wildcards of a literal prefix, '\' being the escape character
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func (seriesRow) TableName() string { return "series" }

// SQLStorage implements Storage on a SQL database via GORM
type SQLStorage struct {
	db *gorm.DB
}

// NewSQLite opens a SQLite database file through GORM
func NewSQLite(path string) (*SQLStorage, error) {
	return FromSQL(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
}

// FromSQL creates a new SQL storage instance
func FromSQL(dialect gorm.Dialector, opts ...gorm.Option) (*SQLStorage, error) {
	db, err := gorm.Open(dialect, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := db.AutoMigrate(&seriesRow{}); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &SQLStorage{db: db}, nil
}

// Save stores the series under key
func (s *SQLStorage) Save(key string, series *core.TimeSeries) error {
	savedAt := stamp()
	content, err := encode(series, savedAt)
	if err != nil {
		return fmt.Errorf("failed to marshal series %s: %w", key, err)
	}

	row := seriesRow{SeriesKey: key, Payload: string(content), SavedAt: savedAt}
	result := s.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&row)
	if result.Error != nil {
		return fmt.Errorf("failed to store series %s: %w", key, result.Error)
	}

	return nil
}

// Load returns the series stored under key
func (s *SQLStorage) Load(key string) (*core.TimeSeries, error) {
	var row seriesRow
	err := s.db.Where("series_key = ?", key).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load series %s: %w", key, err)
	}

	return decode([]byte(row.Payload))
}

// Delete removes the series stored under key
func (s *SQLStorage) Delete(key string) error {
	if err := s.db.Where("series_key = ?", key).Delete(&seriesRow{}).Error; err != nil {
		return fmt.Errorf("failed to delete series %s: %w", key, err)
	}
	return nil
}

// Keys returns the sorted keys starting with prefix. The prefix is literal,
// LIKE wildcards in it match only themselves.
func (s *SQLStorage) Keys(prefix string) ([]string, error) {
	keys := make([]string, 0)
	err := s.db.Model(&seriesRow{}).
		Where(`series_key LIKE ? ESCAPE '\'`, likeEscaper.Replace(prefix)+"%").
		Order("series_key").
		Pluck("series_key", &keys).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query keys: %w", err)
	}

	// LIKE ignores ASCII case on some databases
	return hasPrefix(keys, prefix), nil
}

// Recent returns up to limit keys, most recently saved first
func (s *SQLStorage) Recent(limit int) ([]string, error) {
	if limit <= 0 {
		return []string{}, nil
	}

	keys := make([]string, 0, limit)
	err := s.db.Model(&seriesRow{}).
		Order("saved_at desc").
		Limit(limit).
		Pluck("series_key", &keys).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query recent keys: %w", err)
	}
	return keys, nil
}

// Close closes the database connection
func (s *SQLStorage) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

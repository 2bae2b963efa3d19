package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"warmsync.app/warmsync/model"
)

// Setting keys. These mirror what the browser build kept in local storage.
const (
	KeyEmployeeName = "userName"
	KeyHourlyRate   = "hourlyRate"
	KeySourceURL    = "gasUrl"
)

// Store persists the handful of values the dashboard needs between
// sessions in a local SQLite file.
type Store struct {
	db *gorm.DB
}

func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create settings directory: %w", err)
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open settings database: %w", err)
	}

	if err := db.AutoMigrate(&model.Setting{}); err != nil {
		return nil, fmt.Errorf("migrate settings schema: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Get returns the stored value for key, or an empty string when unset.
func (s *Store) Get(key string) (string, error) {
	var setting model.Setting
	err := s.db.First(&setting, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return setting.Value, nil
}

func (s *Store) Put(key, value string) error {
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		UpdateAll: true,
	}).Create(&model.Setting{Key: key, Value: value}).Error
}

// Load assembles the typed settings view. A non-numeric stored rate reads
// as zero rather than failing.
func (s *Store) Load() (model.Settings, error) {
	var out model.Settings

	name, err := s.Get(KeyEmployeeName)
	if err != nil {
		return out, err
	}
	rateStr, err := s.Get(KeyHourlyRate)
	if err != nil {
		return out, err
	}
	url, err := s.Get(KeySourceURL)
	if err != nil {
		return out, err
	}

	rate, err := strconv.ParseFloat(strings.TrimSpace(rateStr), 64)
	if err != nil || rate < 0 {
		rate = 0
	}

	out.EmployeeName = name
	out.HourlyRate = rate
	out.SourceURL = url
	return out, nil
}

func (s *Store) Save(settings model.Settings) error {
	if err := s.Put(KeyEmployeeName, settings.EmployeeName); err != nil {
		return err
	}
	if err := s.Put(KeyHourlyRate, strconv.FormatFloat(settings.HourlyRate, 'f', -1, 64)); err != nil {
		return err
	}
	return s.Put(KeySourceURL, settings.SourceURL)
}

package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"gastropass_backend/internal/logger"

	"github.com/glebarez/sqlite"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"
)

// Entry is one persisted key-value pair. Values are opaque JSON documents;
// the store never interprets them.
type Entry struct {
	Key       string         `gorm:"primaryKey;size:128"`
	Value     datatypes.JSON `gorm:"not null"`
	UpdatedAt time.Time
}

func (Entry) TableName() string {
	return "entries"
}

// Store is a blocking key-value accessor over an embedded sqlite file. It is
// the only persistence layer in the application; every repository goes
// through it.
type Store struct {
	db *gorm.DB

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// Open opens (creating if needed) the store file and migrates the entries table.
func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open store %s: %w", path, err)
	}

	if err := db.AutoMigrate(&Entry{}); err != nil {
		return nil, fmt.Errorf("migrate store: %w", err)
	}

	return &Store{
		db:    db,
		locks: make(map[string]*sync.Mutex),
	}, nil
}

// Get unmarshals the value under key into dest. A missing key returns
// (false, nil). A value that fails to parse is logged and treated exactly
// like a missing key, so a corrupted entry can never crash a caller.
func (s *Store) Get(key string, dest interface{}) (bool, error) {
	var entry Entry
	err := s.db.First(&entry, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read key %q: %w", key, err)
	}

	if err := json.Unmarshal(entry.Value, dest); err != nil {
		logger.Warn("malformed store entry, treating as absent", "key", key, "error", err)
		return false, nil
	}
	return true, nil
}

// Set marshals v and upserts it under key.
func (s *Store) Set(key string, v interface{}) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode key %q: %w", key, err)
	}

	entry := Entry{Key: key, Value: datatypes.JSON(raw), UpdatedAt: time.Now()}
	err = s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		UpdateAll: true,
	}).Create(&entry).Error
	if err != nil {
		return fmt.Errorf("write key %q: %w", key, err)
	}
	return nil
}

// Remove deletes the entry under key. Removing an absent key is a no-op.
func (s *Store) Remove(key string) error {
	err := s.db.Delete(&Entry{}, "key = ?", key).Error
	if err != nil {
		return fmt.Errorf("remove key %q: %w", key, err)
	}
	return nil
}

// WithLock runs fn while holding the mutex for key. Repositories wrap every
// read-modify-write in this so concurrent callers cannot lose updates to the
// same collection.
func (s *Store) WithLock(key string, fn func() error) error {
	m := s.lockFor(key)
	m.Lock()
	defer m.Unlock()
	return fn()
}

func (s *Store) lockFor(key string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.locks[key]
	if !ok {
		m = &sync.Mutex{}
		s.locks[key] = m
	}
	return m
}

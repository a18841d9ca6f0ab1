// Package storage implements the key-value persistence capability used to
// carry rooms, maintenance tickets, settings and the selected property
// across sessions. Values are JSON blobs in a single bbolt bucket; writes
// are transactional, so a crash mid-write cannot corrupt committed data.
package storage

import (
	"encoding/json"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"
	"go.uber.org/zap"
)

// Persisted state keys.
const (
	KeyRooms            = "hospitality_rooms"
	KeyMaintenance      = "hospitality_maintenance"
	KeySettings         = "hospitality_settings"
	KeySelectedProperty = "hospitality_selectedProperty"
)

var bucketState = []byte("state")

// Store is the persistence capability. Load reports found=false when no
// prior value exists or the stored value is unreadable; callers keep their
// default in that case. Save is fire-and-forget from the caller's view.
type Store interface {
	Load(key string, out any) (found bool, err error)
	Save(key string, value any) error
	Clear() error
	Close() error
}

// BoltStore implements Store backed by bbolt.
type BoltStore struct {
	db     *bolt.DB
	logger *zap.Logger
}

// NewBoltStore opens (or creates) a bbolt database at the given path.
func NewBoltStore(path string, logger *zap.Logger) (*BoltStore, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("bbolt open: %w", err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketState)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("bbolt init bucket: %w", err)
	}
	return &BoltStore{db: db, logger: logger}, nil
}

// Close closes the underlying database.
func (s *BoltStore) Close() error {
	return s.db.Close()
}

// Load reads and unmarshals the value stored under key into out.
// An unreadable stored value is treated the same as an absent one.
func (s *BoltStore) Load(key string, out any) (bool, error) {
	var raw []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket(bucketState).Get([]byte(key)); v != nil {
			raw = make([]byte, len(v))
			copy(raw, v)
		}
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("bbolt read %q: %w", key, err)
	}
	if raw == nil {
		return false, nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		s.logger.Warn("Discarding unreadable persisted value",
			zap.String("key", key), zap.Error(err))
		return false, nil
	}
	return true, nil
}

// Save marshals value and stores it under key.
func (s *BoltStore) Save(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal %q: %w", key, err)
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketState).Put([]byte(key), raw)
	})
}

// Clear removes every persisted key.
func (s *BoltStore) Clear() error {
	return s.db.Update(func(tx *bolt.Tx) error {
		if err := tx.DeleteBucket(bucketState); err != nil {
			return err
		}
		_, err := tx.CreateBucket(bucketState)
		return err
	})
}

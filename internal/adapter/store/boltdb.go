package store

import (
	"encoding/json"
	"fmt"
	"time"

	"go.etcd.io/bbolt"
	"textclean/internal/domain"
)

var (
	bucketLists = []byte("lists")
	bucketMeta  = []byte("meta")
)

// ResourceStore caches downloaded resources (stopword lists) in a bbolt file.
type ResourceStore struct {
	db *bbolt.DB
}

// NewResourceStore opens or creates the cache at path. A cache written by a
// different schema version is cleared.
func NewResourceStore(path string) (*ResourceStore, error) {
	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		for _, b := range [][]byte{bucketLists, bucketMeta} {
			if _, err := tx.CreateBucketIfNotExists(b); err != nil {
				return fmt.Errorf("failed to create bucket %s: %w", b, err)
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	s := &ResourceStore{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *ResourceStore) Close() error {
	return s.db.Close()
}

// PutList stores list under its name, replacing any previous entry.
func (s *ResourceStore) PutList(list domain.StopwordList) error {
	if list.Name == "" {
		return fmt.Errorf("list name is required")
	}
	data, err := json.Marshal(list)
	if err != nil {
		return err
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketLists).Put([]byte(list.Name), data)
	})
}

// GetList returns the named list and whether it was present.
func (s *ResourceStore) GetList(name string) (domain.StopwordList, bool, error) {
	var list domain.StopwordList
	var found bool
	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketLists).Get([]byte(name))
		if data == nil {
			return nil
		}
		found = true
		return json.Unmarshal(data, &list)
	})
	if err != nil {
		return domain.StopwordList{}, false, fmt.Errorf("failed to decode list %s: %w", name, err)
	}
	return list, found, nil
}

// ListNames returns the names of all cached lists in key order.
func (s *ResourceStore) ListNames() ([]string, error) {
	var names []string
	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketLists).ForEach(func(k, _ []byte) error {
			names = append(names, string(k))
			return nil
		})
	})
	return names, err
}

// Clear drops every cached list.
func (s *ResourceStore) Clear() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.DeleteBucket(bucketLists); err != nil && err != bbolt.ErrBucketNotFound {
			return err
		}
		_, err := tx.CreateBucket(bucketLists)
		return err
	})
}

package store

import (
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"
)

// CurrentSchemaVersion is the current cache schema version.
// Increment this when the stored list format changes.
const CurrentSchemaVersion = 1

var keySchemaVersion = []byte("schema_version")

// SchemaVersion returns the version recorded in the cache, 0 if none.
func (s *ResourceStore) SchemaVersion() (int, error) {
	var version int
	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketMeta).Get(keySchemaVersion)
		if data == nil {
			return nil
		}
		if err := json.Unmarshal(data, &version); err != nil {
			version = 0
		}
		return nil
	})
	return version, err
}

func (s *ResourceStore) setSchemaVersion(version int) error {
	data, err := json.Marshal(version)
	if err != nil {
		return err
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketMeta).Put(keySchemaVersion, data)
	})
}

// migrate clears cached lists written under another schema version.
// Cached data can always be downloaded again, so there is no upgrade path.
func (s *ResourceStore) migrate() error {
	version, err := s.SchemaVersion()
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	if version == CurrentSchemaVersion {
		return nil
	}
	if err := s.Clear(); err != nil {
		return fmt.Errorf("failed to clear cache: %w", err)
	}
	return s.setSchemaVersion(CurrentSchemaVersion)
}

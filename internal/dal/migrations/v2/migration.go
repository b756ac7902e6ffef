package v2

import (
	"fmt"

	"go.etcd.io/bbolt"
)

// MigrationV2 creates the history and publications buckets.
type MigrationV2 struct{}

func (m *MigrationV2) Version() int {
	return 2 //nolint:mnd // version 2
}

func (m *MigrationV2) Description() string {
	return "Create history and publications buckets"
}

func (m *MigrationV2) Up(db *bbolt.DB) error {
	return db.Update(func(tx *bbolt.Tx) error {
		for _, name := range []string{"history", "publications"} {
			if _, err := tx.CreateBucketIfNotExists([]byte(name)); err != nil {
				return fmt.Errorf("create bucket=%s: %w", name, err)
			}
		}
		return nil
	})
}

func New() *MigrationV2 {
	return &MigrationV2{}
}

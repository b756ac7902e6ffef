package v3

import (
	"fmt"

	"go.etcd.io/bbolt"
)

// MigrationV3 creates the bucket of tables parsed from full schedule posts.
type MigrationV3 struct{}

func (m *MigrationV3) Version() int {
	return 3 //nolint:mnd // version 3
}

func (m *MigrationV3) Description() string {
	return "Create sources bucket"
}

func (m *MigrationV3) Up(db *bbolt.DB) error {
	return db.Update(func(tx *bbolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists([]byte("sources")); err != nil {
			return fmt.Errorf("create bucket=sources: %w", err)
		}
		return nil
	})
}

func New() *MigrationV3 {
	return &MigrationV3{}
}

package dal

import (
	"errors"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"github.com/Roma7-7-7/cek-notifier/internal/schedule"
)

const (
	historyBucket      = "history"
	publicationsBucket = "publications"
	sourcesBucket      = "sources"
)

// BoltDB keeps the auxiliary state of the notifier: archived day tables, the tables
// last parsed from full schedule posts and the hashes of days already announced to
// the operator chat.
type BoltDB struct {
	db  *bbolt.DB
	now func() time.Time
}

// NewBoltDB expects the buckets to be created by migrations.
func NewBoltDB(db *bbolt.DB) (*BoltDB, error) {
	err := db.View(func(tx *bbolt.Tx) error {
		var errs []error
		for _, name := range []string{historyBucket, publicationsBucket, sourcesBucket} {
			if tx.Bucket([]byte(name)) == nil {
				errs = append(errs, fmt.Errorf("bucket=%s not found", name))
			}
		}
		return errors.Join(errs...)
	})
	if err != nil {
		return nil, fmt.Errorf("check buckets: %w", err)
	}

	return &BoltDB{db: db, now: time.Now}, nil
}

func (s *BoltDB) Close() error {
	return s.db.Close()
}

// dateKey sorts lexicographically in date order.
func dateKey(d schedule.Date) string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

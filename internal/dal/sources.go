package dal

import (
	"bytes"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/Roma7-7-7/cek-notifier/internal/schedule"
)

// GetSource returns the table last parsed from a full schedule post of the date,
// before any update was merged into it.
func (s *BoltDB) GetSource(date schedule.Date) (schedule.DayTable, bool, error) {
	var (
		res   schedule.DayTable
		found bool
	)

	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket([]byte(sourcesBucket)).Get([]byte(dateKey(date)))
		if data == nil {
			return nil
		}
		if err := json.Unmarshal(data, &res); err != nil {
			return fmt.Errorf("unmarshal source for date=%s: %w", date, err)
		}
		found = true
		return nil
	})

	return res, found, err
}

func (s *BoltDB) PutSource(date schedule.Date, table schedule.DayTable) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		data, err := json.Marshal(table)
		if err != nil {
			return fmt.Errorf("marshal source for date=%s: %w", date, err)
		}
		if err = tx.Bucket([]byte(sourcesBucket)).Put([]byte(dateKey(date)), data); err != nil {
			return fmt.Errorf("put source for date=%s: %w", date, err)
		}
		return nil
	})
}

// CleanupSources removes the sources of days before the given date.
func (s *BoltDB) CleanupSources(before schedule.Date) (int, error) {
	cutoff := []byte(dateKey(before))

	removed := 0
	err := s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(sourcesBucket))

		var stale [][]byte
		c := b.Cursor()
		for k, _ := c.First(); k != nil && bytes.Compare(k, cutoff) < 0; k, _ = c.Next() {
			stale = append(stale, bytes.Clone(k))
		}
		for _, k := range stale {
			if err := b.Delete(k); err != nil {
				return fmt.Errorf("delete source for key=%s: %w", k, err)
			}
		}
		removed = len(stale)
		return nil
	})

	return removed, err
}

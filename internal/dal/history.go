package dal

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"github.com/Roma7-7-7/cek-notifier/internal/schedule"
)

// HistoryRecord is the last accepted table of a past or current day.
type HistoryRecord struct {
	Date       schedule.Date     `json:"date"`
	Groups     schedule.DayTable `json:"groups"`
	ArchivedAt time.Time         `json:"archived_at"`
}

// PutHistory replaces the archived table of a day.
func (s *BoltDB) PutHistory(date schedule.Date, table schedule.DayTable) error {
	rec := HistoryRecord{
		Date:       date,
		Groups:     table,
		ArchivedAt: s.now(),
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		data, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("marshal history for date=%s: %w", date, err)
		}
		if err = tx.Bucket([]byte(historyBucket)).Put([]byte(dateKey(date)), data); err != nil {
			return fmt.Errorf("put history for date=%s: %w", date, err)
		}
		return nil
	})
}

// GetHistory returns archived days in [from, to], oldest first.
func (s *BoltDB) GetHistory(from, to schedule.Date) ([]HistoryRecord, error) {
	var res []HistoryRecord
	lo, hi := []byte(dateKey(from)), []byte(dateKey(to))

	err := s.db.View(func(tx *bbolt.Tx) error {
		c := tx.Bucket([]byte(historyBucket)).Cursor()
		for k, v := c.Seek(lo); k != nil && bytes.Compare(k, hi) <= 0; k, v = c.Next() {
			var rec HistoryRecord
			if err := json.Unmarshal(v, &rec); err != nil {
				return fmt.Errorf("unmarshal history for key=%s: %w", k, err)
			}
			res = append(res, rec)
		}
		return nil
	})

	return res, err
}

// CleanupHistory removes days older than olderThan relative to now.
func (s *BoltDB) CleanupHistory(olderThan time.Duration) (int, error) {
	if olderThan <= 0 {
		return 0, nil
	}
	cutoff := []byte(dateKey(schedule.DateOf(s.now().Add(-olderThan))))

	removed := 0
	err := s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(historyBucket))

		var stale [][]byte
		c := b.Cursor()
		for k, _ := c.First(); k != nil && bytes.Compare(k, cutoff) < 0; k, _ = c.Next() {
			stale = append(stale, bytes.Clone(k))
		}
		for _, k := range stale {
			if err := b.Delete(k); err != nil {
				return fmt.Errorf("delete history for key=%s: %w", k, err)
			}
		}
		removed = len(stale)
		return nil
	})

	return removed, err
}

package dal

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"github.com/Roma7-7-7/cek-notifier/internal/schedule"
)

// Publication remembers what was last announced to a chat for a day.
type Publication struct {
	ChatID int64         `json:"chat_id"`
	Date   schedule.Date `json:"date"`
	SentAt time.Time     `json:"sent_at"`
	Hash   string        `json:"hash"`
}

func (s *BoltDB) GetPublication(chatID int64, date schedule.Date) (Publication, bool, error) {
	var res Publication
	found := false

	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket([]byte(publicationsBucket)).Get([]byte(publicationKey(chatID, date)))
		if data == nil {
			return nil
		}
		found = true
		return json.Unmarshal(data, &res)
	})

	return res, found, err
}

func (s *BoltDB) PutPublication(p Publication) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(publicationsBucket))
		if b == nil {
			return errors.New("publications bucket not found")
		}

		data, err := json.Marshal(&p)
		if err != nil {
			return fmt.Errorf("marshal publication for chatID=%d date=%s: %w", p.ChatID, p.Date, err)
		}
		if err = b.Put([]byte(publicationKey(p.ChatID, p.Date)), data); err != nil {
			return fmt.Errorf("put publication for chatID=%d date=%s: %w", p.ChatID, p.Date, err)
		}
		return nil
	})
}

// CleanupPublications removes publications sent earlier than olderThan ago.
func (s *BoltDB) CleanupPublications(olderThan time.Duration) (int, error) {
	if olderThan <= 0 {
		return 0, nil
	}
	threshold := s.now().Add(-olderThan)

	removed := 0
	err := s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(publicationsBucket))

		var stale [][]byte
		err := b.ForEach(func(k, v []byte) error {
			var p Publication
			if err := json.Unmarshal(v, &p); err != nil {
				return fmt.Errorf("unmarshal publication for key=%s: %w", k, err)
			}
			if !p.SentAt.IsZero() && p.SentAt.Before(threshold) {
				stale = append(stale, append([]byte(nil), k...))
			}
			return nil
		})
		if err != nil {
			return err
		}

		for _, k := range stale {
			if err = b.Delete(k); err != nil {
				return fmt.Errorf("delete publication for key=%s: %w", k, err)
			}
		}
		removed = len(stale)
		return nil
	})

	return removed, err
}

func publicationKey(chatID int64, date schedule.Date) string {
	return fmt.Sprintf("%d_%s", chatID, dateKey(date))
}

package dal

import "time"

func (s *BoltDB) SetNow(now func() time.Time) {
	s.now = now
}

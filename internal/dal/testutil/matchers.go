package testutil

import (
	"fmt"

	"github.com/Roma7-7-7/cek-notifier/internal/dal"
)

// PublicationMatcher matches a publication ignoring SentAt
type PublicationMatcher struct {
	want dal.Publication
}

func NewPublicationMatcher(want dal.Publication) PublicationMatcher {
	return PublicationMatcher{want: want}
}

func (m PublicationMatcher) Matches(x interface{}) bool {
	actual, ok := x.(dal.Publication)
	if !ok {
		return false
	}
	return actual.ChatID == m.want.ChatID && actual.Date == m.want.Date && actual.Hash == m.want.Hash
}

func (m PublicationMatcher) String() string {
	return fmt.Sprintf("publication chatID=%d date=%s hash=%s", m.want.ChatID, m.want.Date, m.want.Hash)
}

package dal_test

import (
	"time"

	"github.com/Roma7-7-7/cek-notifier/internal/dal/testutil"
)

func (s *BoltDBTestSuite) TestBoltDB_Get_Put_Publication() {
	date := testutil.MustDate("19.12.2025")

	got, ok, err := s.store.GetPublication(1, date)
	s.Require().NoError(err)
	s.False(ok)
	s.Empty(got)

	sentAt := time.Date(2025, time.December, 18, 20, 5, 0, 0, time.UTC)
	p1 := testutil.NewPublication(1, "19.12.2025").WithHash("a").WithSentAt(sentAt).Build()
	p2 := testutil.NewPublication(2, "19.12.2025").WithHash("b").WithSentAt(sentAt).Build()
	s.Require().NoError(s.store.PutPublication(p1))
	s.Require().NoError(s.store.PutPublication(p2))

	got, ok, err = s.store.GetPublication(1, date)
	s.Require().NoError(err)
	if s.True(ok) {
		s.Equal(p1.Hash, got.Hash)
		s.Equal(p1.Date, got.Date)
		s.True(sentAt.Equal(got.SentAt), "SentAt")
	}

	updated := testutil.NewPublication(1, "19.12.2025").WithHash("c").WithSentAt(sentAt.Add(time.Hour)).Build()
	s.Require().NoError(s.store.PutPublication(updated))

	got, ok, err = s.store.GetPublication(1, date)
	s.Require().NoError(err)
	if s.True(ok) {
		s.Equal("c", got.Hash)
	}

	got, ok, err = s.store.GetPublication(2, date)
	s.Require().NoError(err)
	if s.True(ok) {
		s.Equal("b", got.Hash, "other chat must stay untouched")
	}

	_, ok, err = s.store.GetPublication(1, testutil.MustDate("20.12.2025"))
	s.Require().NoError(err)
	s.False(ok)
}

func (s *BoltDBTestSuite) TestBoltDB_CleanupPublications() {
	now := time.Date(2025, time.December, 20, 12, 0, 0, 0, time.UTC)
	s.now.Set(now)

	s.Require().NoError(s.store.PutPublication(
		testutil.NewPublication(1, "17.12.2025").WithHash("old").WithSentAt(now.Add(-48*time.Hour)).Build()))
	s.Require().NoError(s.store.PutPublication(
		testutil.NewPublication(1, "20.12.2025").WithHash("new").WithSentAt(now.Add(-time.Hour)).Build()))

	removed, err := s.store.CleanupPublications(24 * time.Hour)
	s.Require().NoError(err)
	s.Equal(1, removed)

	_, ok, err := s.store.GetPublication(1, testutil.MustDate("17.12.2025"))
	s.Require().NoError(err)
	s.False(ok)

	_, ok, err = s.store.GetPublication(1, testutil.MustDate("20.12.2025"))
	s.Require().NoError(err)
	s.True(ok)
}

package dal_test

import (
	"github.com/Roma7-7-7/cek-notifier/internal/dal/testutil"
)

func (s *BoltDBTestSuite) TestBoltDB_PutGetSource() {
	date := testutil.MustDate("19.12.2025")

	_, found, err := s.store.GetSource(date)
	s.Require().NoError(err)
	s.False(found)

	table := testutil.NewDayTable().
		WithGroup("GPV4.2", "YNNNNYYYYYYYYYYYYYYYYYYY").
		WithGroup("GPV1.1", "NNFYYYYNNNNYYYYYYYYYYYYY").
		Build()
	s.Require().NoError(s.store.PutSource(date, table))

	got, found, err := s.store.GetSource(date)
	s.Require().NoError(err)
	s.True(found)
	s.Equal(table, got)

	_, found, err = s.store.GetSource(testutil.MustDate("20.12.2025"))
	s.Require().NoError(err)
	s.False(found)
}

func (s *BoltDBTestSuite) TestBoltDB_CleanupSources() {
	for _, d := range []string{"30.11.2025", "18.12.2025", "19.12.2025", "20.12.2025"} {
		s.Require().NoError(s.store.PutSource(testutil.MustDate(d), testutil.NewDayTable().Build()))
	}

	removed, err := s.store.CleanupSources(testutil.MustDate("19.12.2025"))
	s.Require().NoError(err)
	s.Equal(2, removed)

	for d, want := range map[string]bool{"18.12.2025": false, "19.12.2025": true, "20.12.2025": true} {
		_, found, err := s.store.GetSource(testutil.MustDate(d))
		s.Require().NoError(err)
		s.Equalf(want, found, "date=%s", d)
	}
}

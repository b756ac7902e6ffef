package dal_test

import (
	"time"

	"github.com/Roma7-7-7/cek-notifier/internal/dal/testutil"
)

func (s *BoltDBTestSuite) TestBoltDB_PutGetHistory() {
	days := []string{"17.12.2025", "18.12.2025", "19.12.2025", "20.12.2025"}
	for i, d := range days {
		table := testutil.NewDayTable().
			WithGroup("GPV1.1", "NNFYYYYYYYYYYYYYYYYYYYYY").
			WithGroup("GPV4.2", []string{
				"YNNNNYYYYYYYYYYYYYYYYYYY",
				"YYYYYYYYYYYYYYYYYYYYYYYS",
				"MMMMYYYYYYYYYYYYYYYYYYYY",
				"YYYYYYYYfsYYYYYYYYYYYYYY",
			}[i]).
			Build()
		s.Require().NoErrorf(s.store.PutHistory(testutil.MustDate(d), table), "PutHistory date=%s", d)
	}

	got, err := s.store.GetHistory(testutil.MustDate("18.12.2025"), testutil.MustDate("19.12.2025"))
	s.Require().NoError(err)
	s.Require().Len(got, 2)
	s.Equal(testutil.MustDate("18.12.2025"), got[0].Date)
	s.Equal(testutil.MustDate("19.12.2025"), got[1].Date)
	s.Equal(testutil.Hours("YYYYYYYYYYYYYYYYYYYYYYYS"), got[0].Groups["GPV4.2"])
	s.Equal(testutil.Hours("MMMMYYYYYYYYYYYYYYYYYYYY"), got[1].Groups["GPV4.2"])

	replaced := testutil.NewDayTable().WithGroup("GPV2.1", "NNNNNNNNNNNNNNNNNNNNNNNN").Build()
	s.Require().NoError(s.store.PutHistory(testutil.MustDate("19.12.2025"), replaced))

	got, err = s.store.GetHistory(testutil.MustDate("19.12.2025"), testutil.MustDate("19.12.2025"))
	s.Require().NoError(err)
	s.Require().Len(got, 1)
	s.Equal(replaced, got[0].Groups)
}

func (s *BoltDBTestSuite) TestBoltDB_GetHistory_Empty() {
	got, err := s.store.GetHistory(testutil.MustDate("01.12.2025"), testutil.MustDate("31.12.2025"))
	s.Require().NoError(err)
	s.Empty(got)
}

func (s *BoltDBTestSuite) TestBoltDB_CleanupHistory() {
	for _, d := range []string{"30.11.2025", "17.12.2025", "18.12.2025", "19.12.2025"} {
		s.Require().NoError(s.store.PutHistory(testutil.MustDate(d), testutil.NewDayTable().Build()))
	}
	s.now.Set(time.Date(2025, time.December, 20, 12, 0, 0, 0, time.UTC))

	removed, err := s.store.CleanupHistory(0)
	s.Require().NoError(err)
	s.Zero(removed, "zero TTL keeps everything")

	removed, err = s.store.CleanupHistory(48 * time.Hour)
	s.Require().NoError(err)
	s.Equal(2, removed)

	got, err := s.store.GetHistory(testutil.MustDate("01.11.2025"), testutil.MustDate("31.12.2025"))
	s.Require().NoError(err)
	s.Require().Len(got, 2)
	s.Equal(testutil.MustDate("18.12.2025"), got[0].Date)
	s.Equal(testutil.MustDate("19.12.2025"), got[1].Date)
}

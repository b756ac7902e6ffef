package parser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Roma7-7-7/cek-notifier/internal/schedule"
)

func TestDateMatchers(t *testing.T) {
	require.Len(t, dateMatchers, 3)
	caps, weekday, plain := dateMatchers[0], dateMatchers[1], dateMatchers[2]
	assert.Equal(t, "caps_month", caps.name())
	assert.Equal(t, "weekday", weekday.name())
	assert.Equal(t, "plain_month", plain.name())

	tests := []struct {
		name    string
		matcher dateMatcher
		text    string
		want    schedule.Date
		wantOK  bool
	}{
		{name: "caps", matcher: caps, text: "19 ГРУДНЯ", want: schedule.Date{Year: 2025, Month: time.December, Day: 19}, wantOK: true},
		{name: "caps_ignores_case", matcher: caps, text: "19 грудня", want: schedule.Date{Year: 2025, Month: time.December, Day: 19}, wantOK: true},
		{name: "caps_nothing", matcher: caps, text: "грудень", wantOK: false},
		{name: "weekday_accusative", matcher: weekday, text: "у пʼятницю, 19 грудня", want: schedule.Date{Year: 2025, Month: time.December, Day: 19}, wantOK: true},
		{name: "weekday_ascii_apostrophe", matcher: weekday, text: "у п'ятницю, 19 грудня", want: schedule.Date{Year: 2025, Month: time.December, Day: 19}, wantOK: true},
		{name: "weekday_genitive", matcher: weekday, text: "У неділі, 21 грудня", want: schedule.Date{Year: 2025, Month: time.December, Day: 21}, wantOK: true},
		{name: "weekday_rejects_other_words", matcher: weekday, text: "у місті, 19 грудня", wantOK: false},
		{name: "weekday_skips_to_valid", matcher: weekday, text: "у місті, 19 грудня; у суботу, 20 грудня", want: schedule.Date{Year: 2025, Month: time.December, Day: 20}, wantOK: true},
		{name: "plain", matcher: plain, text: "1 травня", want: schedule.Date{Year: 2025, Month: time.May, Day: 1}, wantOK: true},
		{name: "plain_invalid_day", matcher: plain, text: "32 травня", wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.matcher.match(tt.text, 2025)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsWeekday(t *testing.T) {
	assert.True(t, isWeekday("Понеділок"))
	assert.True(t, isWeekday("п’ятниці"))
	assert.False(t, isWeekday("місті"))
}

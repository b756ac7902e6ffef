package parser_test

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Roma7-7-7/cek-notifier/internal/parser"
	"github.com/Roma7-7-7/cek-notifier/internal/schedule"
)

func TestParser_ExtractDate(t *testing.T) {
	now := time.Date(2025, time.December, 18, 20, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		text   string
		want   schedule.Date
		wantOK bool
	}{
		{
			name:   "caps_month",
			text:   "Графіки на 19 ГРУДНЯ",
			want:   schedule.Date{Year: 2025, Month: time.December, Day: 19},
			wantOK: true,
		},
		{
			name:   "weekday",
			text:   "у суботу, 20 грудня, діятимуть графіки",
			want:   schedule.Date{Year: 2025, Month: time.December, Day: 20},
			wantOK: true,
		},
		{
			name:   "plain_month",
			text:   "Оновлено графік на 3 січня",
			want:   schedule.Date{Year: 2025, Month: time.January, Day: 3},
			wantOK: true,
		},
		{
			name:   "first_match_wins",
			text:   "Замість 19 грудня графік діятиме 20 грудня",
			want:   schedule.Date{Year: 2025, Month: time.December, Day: 19},
			wantOK: true,
		},
		{
			name:   "invalid_day_skipped",
			text:   "31 лютого або 2 березня",
			want:   schedule.Date{Year: 2025, Month: time.March, Day: 2},
			wantOK: true,
		},
		{
			name:   "non_breaking_space",
			text:   "на 7 листопада",
			want:   schedule.Date{Year: 2025, Month: time.November, Day: 7},
			wantOK: true,
		},
		{
			name:   "no_date",
			text:   "Графік відключень буде оприлюднено пізніше",
			wantOK: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := parser.New(slog.New(slog.DiscardHandler))
			got, ok := p.ExtractDate(tt.text, now)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
			if ok {
				assert.Equal(t, tt.want.String(), got.String())
			}
		})
	}
}

package service

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/Roma7-7-7/cek-notifier/internal/schedule"
)

// GroupAverage is the mean confirmed outage time of a group over the days it was announced.
type GroupAverage struct {
	Group       schedule.GroupID
	Days        int
	OutageHours float64
}

type Stats struct {
	history HistoryStore
	clock   Clock
	log     *slog.Logger
}

func NewStats(history HistoryStore, clock Clock, log *slog.Logger) *Stats {
	return &Stats{
		history: history,
		clock:   clock,
		log:     log.With("component", "service").With("service", "stats"),
	}
}

// Averages covers the last days days including today. Groups are sorted by (major, minor).
func (s *Stats) Averages(ctx context.Context, days int) ([]GroupAverage, error) {
	if days <= 0 {
		return nil, nil
	}

	today := schedule.DateOf(s.clock.Now())
	records, err := s.history.GetHistory(today.AddDays(-(days - 1)), today)
	if err != nil {
		return nil, fmt.Errorf("get history: %w", err)
	}

	totals := make(map[schedule.GroupID]*GroupAverage)
	for _, rec := range records {
		for g, hours := range rec.Groups {
			avg, ok := totals[g]
			if !ok {
				avg = &GroupAverage{Group: g}
				totals[g] = avg
			}
			avg.Days++
			avg.OutageHours += hours.OutageHours()
		}
	}

	res := make([]GroupAverage, 0, len(totals))
	for _, avg := range totals {
		avg.OutageHours /= float64(avg.Days)
		res = append(res, *avg)
	}
	slices.SortFunc(res, func(a, b GroupAverage) int {
		return a.Group.Compare(b.Group)
	})

	s.log.DebugContext(ctx, "averages calculated", "days", days, "records", len(records), "groups", len(res))
	return res, nil
}

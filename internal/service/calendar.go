package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/Roma7-7-7/cek-notifier/internal/calendar"
	"github.com/Roma7-7-7/cek-notifier/internal/schedule"
)

//go:generate mockgen -package mocks -destination mocks/calendar.go . Calendar

// Calendar event color IDs (Google Calendar palette)
const (
	colorIDOff   = "11" // Tomato
	colorIDMaybe = "5"  // Banana
)

const (
	summaryOff   = "Відключення"
	summaryMaybe = "Можливе відключення"
)

type (
	CalendarConfig struct {
		CalendarID string
		Group      schedule.GroupID
	}

	Calendar interface {
		ListOurEvents(ctx context.Context, calendarID string, timeMin, timeMax time.Time) ([]string, error)
		InsertEvent(ctx context.Context, calendarID, summary string, start, end time.Time, params calendar.EventParams) (string, error)
		DeleteEvent(ctx context.Context, calendarID, eventID string) error
	}

	// CalendarService mirrors the outages of one group for today and tomorrow as calendar events.
	CalendarService struct {
		calendar  Calendar
		documents DocumentReader
		clock     Clock
		conf      CalendarConfig

		todayCache    string
		tomorrowCache string

		mx  sync.Mutex
		log *slog.Logger
	}

	eventPayload struct {
		summary   string
		start     time.Time
		end       time.Time
		colorID   string
		dateLabel string
	}
)

func NewCalendarService(conf CalendarConfig, calendar Calendar, documents DocumentReader, clock Clock, log *slog.Logger) *CalendarService {
	return &CalendarService{
		calendar:  calendar,
		documents: documents,
		clock:     clock,
		conf:      conf,
		log:       log.With("component", "service").With("service", "calendar_sync").With("group", conf.Group.String()),
	}
}

// SyncEvents deletes our events in [today, end of tomorrow] and recreates them from the stored tables.
// Nothing is touched while the group's hours stay the same.
func (s *CalendarService) SyncEvents(ctx context.Context) error {
	s.mx.Lock()
	defer s.mx.Unlock()

	doc, found, err := s.documents.GetDocument()
	if err != nil {
		return fmt.Errorf("get document: %w", err)
	}
	if !found {
		s.log.DebugContext(ctx, "skipping calendar sync: no schedule document")
		return nil
	}

	loc := s.clock.Location()
	now := s.clock.Now()
	today := schedule.DateOf(now)
	tomorrow := today.AddDays(1)

	todayHours, hasToday := doc.Fact.Data[today.Key(loc)][s.conf.Group]
	tomorrowHours, hasTomorrow := doc.Fact.Data[tomorrow.Key(loc)][s.conf.Group]
	if !hasToday && !hasTomorrow {
		s.log.WarnContext(ctx, "skipping calendar sync: group not found for today or tomorrow")
		return nil
	}

	todayHash, tomorrowHash := hoursHash(todayHours, hasToday), hoursHash(tomorrowHours, hasTomorrow)
	if s.todayCache == todayHash && s.tomorrowCache == tomorrowHash {
		s.log.DebugContext(ctx, "skipping calendar sync: schedules not changed")
		return nil
	}

	timeMin := today.Midnight(loc)
	timeMax := tomorrow.AddDays(1).Midnight(loc).Add(-time.Second)
	ids, err := s.cleanupEvents(ctx, timeMin, timeMax)
	if err != nil {
		return err
	}

	var toCreate []eventPayload
	if hasToday {
		toCreate = append(toCreate, buildEvents(todayHours, today, loc)...)
	}
	if hasTomorrow {
		toCreate = append(toCreate, buildEvents(tomorrowHours, tomorrow, loc)...)
	}
	if err = s.createEvents(ctx, toCreate); err != nil {
		return err
	}

	s.todayCache = todayHash
	s.tomorrowCache = tomorrowHash
	s.log.InfoContext(ctx, "calendar sync completed", "deleted", len(ids), "created", len(toCreate))
	return nil
}

// CleanupStaleEvents deletes our events from the past lookbackDays, today excluded.
func (s *CalendarService) CleanupStaleEvents(ctx context.Context, lookbackDays int) error {
	s.mx.Lock()
	defer s.mx.Unlock()

	todayStart := schedule.DateOf(s.clock.Now()).Midnight(s.clock.Location())
	timeMin := todayStart.AddDate(0, 0, -lookbackDays)
	ids, err := s.cleanupEvents(ctx, timeMin, todayStart.Add(-time.Second))
	if err != nil {
		return fmt.Errorf("calendar cleanup: %w", err)
	}
	s.log.InfoContext(ctx, "calendar stale cleanup completed", "deleted", len(ids))
	return nil
}

func (s *CalendarService) cleanupEvents(ctx context.Context, timeMin, timeMax time.Time) ([]string, error) {
	ids, err := s.calendar.ListOurEvents(ctx, s.conf.CalendarID, timeMin, timeMax)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	for _, id := range ids {
		if err = s.calendar.DeleteEvent(ctx, s.conf.CalendarID, id); err != nil {
			return nil, fmt.Errorf("delete event=%s: %w", id, err)
		}
	}
	return ids, nil
}

func (s *CalendarService) createEvents(ctx context.Context, toCreate []eventPayload) error {
	for _, ev := range toCreate {
		_, err := s.calendar.InsertEvent(ctx, s.conf.CalendarID, ev.summary, ev.start, ev.end, calendar.EventParams{
			ColorID:     ev.colorID,
			Description: fmt.Sprintf("Черга %s, %s", s.conf.Group.Number(), ev.dateLabel),
		})
		if err != nil {
			return fmt.Errorf("insert event: %w", err)
		}
	}
	return nil
}

// buildEvents turns half-hour runs without guaranteed power into events.
func buildEvents(hours schedule.HourMap, day schedule.Date, loc *time.Location) []eventPayload {
	var res []eventPayload
	for _, p := range hours.Outages() {
		ev := eventPayload{
			start:     clockTime(day, p.From, loc),
			end:       clockTime(day, p.To, loc),
			dateLabel: day.String(),
		}
		switch p.State {
		case schedule.Off:
			ev.summary, ev.colorID = summaryOff, colorIDOff
		case schedule.PossiblyOff:
			ev.summary, ev.colorID = summaryMaybe, colorIDMaybe
		default:
			continue
		}
		res = append(res, ev)
	}
	return res
}

// clockTime converts fractional hours of day into wall time; 24 is the next midnight.
func clockTime(day schedule.Date, h float64, loc *time.Location) time.Time {
	minutes := int(h * 60) //nolint:mnd // minutes per hour
	return time.Date(day.Year, day.Month, day.Day, minutes/60, minutes%60, 0, 0, loc) //nolint:mnd // minutes per hour
}

func hoursHash(hours schedule.HourMap, ok bool) string {
	if !ok {
		return ""
	}
	var sb strings.Builder
	for _, s := range hours {
		sb.WriteString(string(s))
		sb.WriteByte(',')
	}
	return sb.String()
}

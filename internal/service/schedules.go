package service

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"sync"
	"time"

	"github.com/Roma7-7-7/cek-notifier/internal/dal"
	"github.com/Roma7-7-7/cek-notifier/internal/observability"
	"github.com/Roma7-7-7/cek-notifier/internal/parser"
	"github.com/Roma7-7-7/cek-notifier/internal/providers"
	"github.com/Roma7-7-7/cek-notifier/internal/schedule"
)

//go:generate mockgen -package mocks -destination mocks/schedules.go . DocumentStore,PostsProvider,HistoryStore,SourceStore

type (
	Clock interface {
		Now() time.Time
		Location() *time.Location
	}

	DocumentReader interface {
		GetDocument() (schedule.Document, bool, error)
	}

	DocumentStore interface {
		DocumentReader
		PutDocument(doc schedule.Document) error
	}

	PostsProvider interface {
		Posts(ctx context.Context, limit int) ([]providers.Post, error)
	}

	HistoryStore interface {
		PutHistory(date schedule.Date, table schedule.DayTable) error
		GetHistory(from, to schedule.Date) ([]dal.HistoryRecord, error)
		CleanupHistory(olderThan time.Duration) (int, error)
	}

	// SourceStore keeps the tables parsed from full schedule posts, before updates are
	// merged into them.
	SourceStore interface {
		GetSource(date schedule.Date) (schedule.DayTable, bool, error)
		PutSource(date schedule.Date, table schedule.DayTable) error
		CleanupSources(before schedule.Date) (int, error)
	}

	SchedulesConfig struct {
		RegionID     string
		PostsLimit   int
		FetchTimeout time.Duration
		HistoryTTL   time.Duration
	}

	// Schedules rebuilds today's and tomorrow's tables from full schedule announcements.
	Schedules struct {
		store    DocumentStore
		sources  SourceStore
		history  HistoryStore
		provider PostsProvider
		parser   *parser.Parser
		clock    Clock
		metrics  *observability.Metrics
		conf     SchedulesConfig

		log *slog.Logger
		mx  sync.Locker
	}
)

func NewSchedules(
	conf SchedulesConfig,
	store DocumentStore,
	sources SourceStore,
	history HistoryStore,
	provider PostsProvider,
	p *parser.Parser,
	clock Clock,
	metrics *observability.Metrics,
	documentLock sync.Locker,
	log *slog.Logger,
) *Schedules {
	if documentLock == nil {
		documentLock = &sync.Mutex{}
	}
	return &Schedules{
		store:    store,
		sources:  sources,
		history:  history,
		provider: provider,
		parser:   p,
		clock:    clock,
		metrics:  metrics,
		conf:     conf,

		log: log.With("component", "service").With("service", "schedules"),
		mx:  documentLock,
	}
}

// Refresh parses the recent channel posts and stores the result when the day tables changed.
// A day whose full schedule post parses to the same table as last time keeps its stored
// table, so updates merged into it survive. Returns true when the document was written.
// documentLock must be shared with every other writer of the document.
func (s *Schedules) Refresh(ctx context.Context) (bool, error) {
	s.mx.Lock()
	defer s.mx.Unlock()
	s.log.InfoContext(ctx, "refreshing schedules")

	start := time.Now()
	defer func() {
		s.metrics.CycleDuration.WithLabelValues("refresh").Observe(time.Since(start).Seconds())
	}()

	posts, err := fetchPosts(ctx, s.provider, s.conf.PostsLimit, s.conf.FetchTimeout, s.metrics)
	if err != nil {
		return false, err
	}

	now := s.clock.Now()
	loc := s.clock.Location()
	today := schedule.DateOf(now)
	tomorrow := today.AddDays(1)

	fresh := s.collect(ctx, posts, now, today, tomorrow)
	if len(fresh) == 0 {
		s.log.InfoContext(ctx, "no schedules for today or tomorrow found")
		return false, nil
	}

	doc, found, err := s.store.GetDocument()
	if err != nil {
		return false, fmt.Errorf("get document: %w", err)
	}
	if !found {
		doc = schedule.NewDocument(s.conf.RegionID)
	}

	republished, err := s.republished(fresh, doc.Fact.Data, loc)
	if err != nil {
		return false, err
	}

	todayKey := today.Key(loc)
	candidate := doc.Fact.Data.Merge(republished, todayKey, tomorrow.Key(loc))
	if found && candidate.Equal(doc.Fact.Data) {
		s.log.InfoContext(ctx, "schedules not changed")
		return false, s.putSources(republished, loc)
	}

	doc.RegionID = s.conf.RegionID
	doc.Fact.Data = candidate
	doc.Fact.Today = int64(todayKey)
	doc.Touch(now, loc)
	if err = s.store.PutDocument(doc); err != nil {
		return false, fmt.Errorf("put document: %w", err)
	}
	s.metrics.DocumentWrites.WithLabelValues("refresh").Inc()
	s.log.InfoContext(ctx, "schedules updated", "days", len(candidate), "republished_days", len(republished))

	for key, table := range republished {
		archive(ctx, s.history, key.Date(loc), table, s.log)
	}
	return true, s.putSources(republished, loc)
}

// republished keeps the fresh tables that differ from the last parse of their day or
// whose day is missing from the stored days.
func (s *Schedules) republished(fresh, stored schedule.Days, loc *time.Location) (schedule.Days, error) {
	res := make(schedule.Days, len(fresh))
	for key, table := range fresh {
		if _, ok := stored[key]; !ok {
			res[key] = table
			continue
		}
		date := key.Date(loc)
		prev, found, err := s.sources.GetSource(date)
		if err != nil {
			return nil, fmt.Errorf("get source for date=%s: %w", date, err)
		}
		if found && maps.Equal(prev, table) {
			continue
		}
		res[key] = table
	}
	return res, nil
}

func (s *Schedules) putSources(days schedule.Days, loc *time.Location) error {
	for key, table := range days {
		date := key.Date(loc)
		if err := s.sources.PutSource(date, table); err != nil {
			return fmt.Errorf("put source for date=%s: %w", date, err)
		}
	}
	return nil
}

// Day returns the stored table of a date.
func (s *Schedules) Day(_ context.Context, date schedule.Date) (schedule.DayTable, bool, error) {
	doc, found, err := s.store.GetDocument()
	if err != nil {
		return nil, false, fmt.Errorf("get document: %w", err)
	}
	if !found {
		return nil, false, nil
	}
	table, ok := doc.Fact.Data[date.Key(s.clock.Location())]
	return table, ok, nil
}

// Cleanup purges archived days older than the history TTL and sources of past days.
func (s *Schedules) Cleanup(ctx context.Context) error {
	removed, err := s.history.CleanupHistory(s.conf.HistoryTTL)
	if err != nil {
		return fmt.Errorf("cleanup history: %w", err)
	}
	s.log.InfoContext(ctx, "history cleaned up", "removed", removed)

	removed, err = s.sources.CleanupSources(schedule.DateOf(s.clock.Now()))
	if err != nil {
		return fmt.Errorf("cleanup sources: %w", err)
	}
	s.log.InfoContext(ctx, "sources cleaned up", "removed", removed)
	return nil
}

// collect walks posts most recent first; the first usable post of a date wins.
func (s *Schedules) collect(ctx context.Context, posts []providers.Post, now time.Time, today, tomorrow schedule.Date) schedule.Days {
	loc := s.clock.Location()
	res := schedule.Days{}

	for _, post := range posts {
		log := s.log.With("post_id", post.ID)

		if !parser.IsSchedulePost(post.Text) {
			s.skip(ctx, log, observability.SkipNotSchedule)
			continue
		}
		date, ok := s.parser.ExtractDate(post.Text, now)
		if !ok {
			s.skip(ctx, log, observability.SkipNoDate)
			continue
		}
		if date != today && date != tomorrow {
			s.skip(ctx, log.With("date", date.String()), observability.SkipOutOfWindow)
			continue
		}
		key := date.Key(loc)
		if _, seen := res[key]; seen {
			s.skip(ctx, log.With("date", date.String()), observability.SkipSuperseded)
			continue
		}

		table := s.parser.ParseSchedule(post.Text)
		if len(table) == 0 {
			s.skip(ctx, log.With("date", date.String()), observability.SkipUnparsable)
			continue
		}
		res[key] = table
		log.InfoContext(ctx, "schedule parsed", "date", date.String(), "groups", len(table))
	}

	return res
}

func (s *Schedules) skip(ctx context.Context, log *slog.Logger, reason string) {
	s.metrics.PostsSkipped.WithLabelValues(reason).Inc()
	log.DebugContext(ctx, "post skipped", "reason", reason)
}

func fetchPosts(
	ctx context.Context,
	provider PostsProvider,
	limit int,
	timeout time.Duration,
	metrics *observability.Metrics,
) ([]providers.Post, error) {
	if timeout <= 0 {
		timeout = time.Minute
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	posts, err := provider.Posts(ctx, limit)
	if err != nil {
		metrics.FetchFailures.Inc()
		return nil, fmt.Errorf("get posts: %w", err)
	}
	metrics.PostsFetched.Add(float64(len(posts)))
	return posts, nil
}

// archive stores the accepted table in history. Failures are logged only.
func archive(ctx context.Context, history HistoryStore, date schedule.Date, table schedule.DayTable, log *slog.Logger) {
	if err := history.PutHistory(date, table); err != nil {
		log.ErrorContext(ctx, "failed to archive day", "date", date.String(), "error", err)
	}
}

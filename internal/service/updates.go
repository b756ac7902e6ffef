package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/Roma7-7-7/cek-notifier/internal/dal"
	"github.com/Roma7-7-7/cek-notifier/internal/observability"
	"github.com/Roma7-7-7/cek-notifier/internal/parser"
	"github.com/Roma7-7-7/cek-notifier/internal/providers"
	"github.com/Roma7-7-7/cek-notifier/internal/schedule"
)

//go:generate mockgen -package mocks -destination mocks/updates.go . WatermarkStore

type (
	WatermarkStore interface {
		GetWatermark() (dal.Watermark, error)
		PutWatermark(w dal.Watermark) error
	}

	UpdatesConfig struct {
		PostsLimit   int
		FetchTimeout time.Duration
	}

	// Updates applies incremental announcements to the stored document.
	Updates struct {
		store      DocumentStore
		history    HistoryStore
		watermarks WatermarkStore
		provider   PostsProvider
		parser     *parser.Parser
		clock      Clock
		metrics    *observability.Metrics
		conf       UpdatesConfig

		log *slog.Logger
		mx  sync.Locker
	}
)

func NewUpdates(
	conf UpdatesConfig,
	store DocumentStore,
	history HistoryStore,
	watermarks WatermarkStore,
	provider PostsProvider,
	p *parser.Parser,
	clock Clock,
	metrics *observability.Metrics,
	documentLock sync.Locker,
	log *slog.Logger,
) *Updates {
	if documentLock == nil {
		documentLock = &sync.Mutex{}
	}
	return &Updates{
		store:      store,
		history:    history,
		watermarks: watermarks,
		provider:   provider,
		parser:     p,
		clock:      clock,
		metrics:    metrics,
		conf:       conf,

		log: log.With("component", "service").With("service", "updates"),
		mx:  documentLock,
	}
}

// Monitor applies update posts newer than the watermark to today's table.
// Returns true when at least one cell changed. documentLock must be shared with every
// other writer of the document.
func (s *Updates) Monitor(ctx context.Context) (bool, error) {
	s.mx.Lock()
	defer s.mx.Unlock()
	s.log.InfoContext(ctx, "monitoring updates")

	start := time.Now()
	defer func() {
		s.metrics.CycleDuration.WithLabelValues("monitor").Observe(time.Since(start).Seconds())
	}()

	posts, err := fetchPosts(ctx, s.provider, s.conf.PostsLimit, s.conf.FetchTimeout, s.metrics)
	if err != nil {
		return false, err
	}

	mark, err := s.watermarks.GetWatermark()
	if err != nil {
		return false, fmt.Errorf("get watermark: %w", err)
	}

	now := s.clock.Now()
	today := schedule.DateOf(now)
	next := mark

	var (
		doc     schedule.Document
		loaded  bool
		found   bool
		changed int
	)
	// oldest first, so the watermark ends on the newest post
	for i := len(posts) - 1; i >= 0; i-- {
		post := posts[i]
		log := s.log.With("post_id", post.ID)

		if !mark.IsNewer(post.ID, post.Date) {
			s.metrics.PostsSkipped.WithLabelValues(observability.SkipSeen).Inc()
			continue
		}
		next = advance(next, post)

		if !parser.IsUpdatePost(post.Text) {
			s.metrics.PostsSkipped.WithLabelValues(observability.SkipNotUpdate).Inc()
			log.DebugContext(ctx, "post skipped", "reason", observability.SkipNotUpdate)
			continue
		}

		upd, err := s.parser.ParseUpdate(post.Text, now)
		if err != nil {
			s.metrics.PostsSkipped.WithLabelValues(observability.SkipUnparsable).Inc()
			log.WarnContext(ctx, "failed to parse update", "error", err)
			continue
		}

		if !loaded {
			if doc, found, err = s.store.GetDocument(); err != nil {
				return false, fmt.Errorf("get document: %w", err)
			}
			loaded = true
		}
		if !found {
			log.WarnContext(ctx, "update skipped", "error", ErrDocumentNotFound)
			continue
		}

		changes, err := doc.ApplyUpdate(upd, today, now, s.clock.Location())
		if err != nil {
			log.WarnContext(ctx, "update skipped", "error", err)
			continue
		}
		if len(changes) > 0 {
			s.metrics.UpdatesApplied.Inc()
			s.metrics.CellsChanged.Add(float64(len(changes)))
		}
		changed += len(changes)
		log.InfoContext(ctx, "update applied", "groups", len(upd.Groups), "intervals", len(upd.Intervals), "changes", len(changes))
	}

	if changed > 0 {
		if err = s.store.PutDocument(doc); err != nil {
			return false, fmt.Errorf("put document: %w", err)
		}
		s.metrics.DocumentWrites.WithLabelValues("monitor").Inc()
		archive(ctx, s.history, today, doc.Fact.Data[today.Key(s.clock.Location())], s.log)
	}

	if !next.Equal(mark) {
		next.ProcessedAt = &now
		if err = s.watermarks.PutWatermark(next); err != nil {
			return changed > 0, fmt.Errorf("put watermark: %w", err)
		}
	}

	s.log.InfoContext(ctx, "updates monitored", "changes", changed)
	return changed > 0, nil
}

// Apply merges a literal update text into the table of target, or today when target is nil.
// Returns true when the document was written.
func (s *Updates) Apply(ctx context.Context, text string, target *schedule.Date) (bool, error) {
	s.mx.Lock()
	defer s.mx.Unlock()

	now := s.clock.Now()
	date := schedule.DateOf(now)
	if target != nil {
		date = *target
	}

	upd, err := s.parser.ParseUpdate(text, now)
	if err != nil {
		return false, fmt.Errorf("parse update: %w", err)
	}

	doc, found, err := s.store.GetDocument()
	if err != nil {
		return false, fmt.Errorf("get document: %w", err)
	}
	if !found {
		return false, ErrDocumentNotFound
	}

	changes, err := doc.ApplyUpdate(upd, date, now, s.clock.Location())
	if err != nil {
		return false, fmt.Errorf("apply update: %w", err)
	}
	if len(changes) == 0 {
		s.log.InfoContext(ctx, "update changed nothing", "date", date.String())
		return false, nil
	}

	if err = s.store.PutDocument(doc); err != nil {
		return false, fmt.Errorf("put document: %w", err)
	}
	s.metrics.UpdatesApplied.Inc()
	s.metrics.CellsChanged.Add(float64(len(changes)))
	s.metrics.DocumentWrites.WithLabelValues("update").Inc()
	s.log.InfoContext(ctx, "update applied", "date", date.String(), "changes", len(changes))

	archive(ctx, s.history, date, doc.Fact.Data[date.Key(s.clock.Location())], s.log)
	return true, nil
}

func advance(w dal.Watermark, post providers.Post) dal.Watermark {
	id := post.ID
	w.LastID = &id
	if post.Date.IsZero() {
		w.LastDate = nil
	} else {
		date := post.Date
		w.LastDate = &date
	}
	return w
}

// IsInputError reports whether err is caused by the update text itself rather than storage.
func IsInputError(err error) bool {
	return errors.Is(err, parser.ErrNotUpdate) ||
		errors.Is(err, parser.ErrNoGroups) ||
		errors.Is(err, parser.ErrNoIntervals) ||
		errors.Is(err, schedule.ErrDayNotFound)
}

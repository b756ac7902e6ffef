package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/Roma7-7-7/telegram"

	"github.com/Roma7-7-7/cek-notifier/internal/dal"
	"github.com/Roma7-7-7/cek-notifier/internal/observability"
	"github.com/Roma7-7-7/cek-notifier/internal/schedule"
)

//go:generate mockgen -package mocks -destination mocks/telegram.go . TelegramClient

//go:generate mockgen -package mocks -destination mocks/notifications.go . PublicationsStore

type (
	TelegramClient interface {
		SendMessage(context.Context, string, string) error
	}

	PublicationsStore interface {
		GetPublication(chatID int64, date schedule.Date) (dal.Publication, bool, error)
		PutPublication(p dal.Publication) error
		CleanupPublications(olderThan time.Duration) (int, error)
	}

	// Notifications announces schedule changes and process failures to the operator chat.
	Notifications struct {
		documents    DocumentReader
		publications PublicationsStore
		telegram     TelegramClient
		clock        Clock
		metrics      *observability.Metrics

		chatID          int64
		publicationsTTL time.Duration
		log             *slog.Logger
		mx              *sync.Mutex
	}
)

func NewNotifications(
	chatID int64,
	documents DocumentReader,
	publications PublicationsStore,
	telegram TelegramClient,
	clock Clock,
	metrics *observability.Metrics,
	publicationsTTL time.Duration,
	log *slog.Logger,
) *Notifications {
	return &Notifications{
		documents:    documents,
		publications: publications,
		telegram:     telegram,
		clock:        clock,
		metrics:      metrics,

		chatID:          chatID,
		publicationsTTL: publicationsTTL,
		log:             log.With("component", "service").With("service", "notifications"),
		mx:              &sync.Mutex{},
	}
}

// NotifyScheduleUpdates sends today's and tomorrow's tables when they differ from what was announced last.
func (s *Notifications) NotifyScheduleUpdates(ctx context.Context) error {
	s.mx.Lock()
	defer s.mx.Unlock()
	s.log.InfoContext(ctx, "notifying about schedule updates")

	doc, found, err := s.documents.GetDocument()
	if err != nil {
		return fmt.Errorf("get document: %w", err)
	}
	if !found {
		s.log.InfoContext(ctx, "no schedule document yet")
		return nil
	}

	now := s.clock.Now()
	today := schedule.DateOf(now)

	var (
		dates   []DateSchedule
		pending []dal.Publication
	)
	for _, date := range []schedule.Date{today, today.AddDays(1)} {
		table, ok := doc.Fact.Data[date.Key(s.clock.Location())]
		if !ok {
			continue
		}

		hash, err := dayHash(table)
		if err != nil {
			return fmt.Errorf("hash day=%s: %w", date, err)
		}
		last, ok, err := s.publications.GetPublication(s.chatID, date)
		if err != nil {
			return fmt.Errorf("get publication for day=%s: %w", date, err)
		}
		if ok && last.Hash == hash {
			continue
		}

		dates = append(dates, buildDateSchedule(date, table))
		pending = append(pending, dal.Publication{ChatID: s.chatID, Date: date, Hash: hash})
	}

	if len(dates) == 0 {
		s.log.DebugContext(ctx, "nothing new to announce")
		return nil
	}

	msg, err := renderScheduleMessage(dates)
	if err != nil {
		return fmt.Errorf("render message: %w", err)
	}
	delivered, err := s.send(ctx, msg)
	if err != nil {
		return err
	}
	if !delivered {
		return nil
	}
	s.metrics.MessagesSent.WithLabelValues("schedule").Inc()

	for _, p := range pending {
		p.SentAt = now
		if err = s.publications.PutPublication(p); err != nil {
			s.log.ErrorContext(ctx, "failed to store publication", "date", p.Date.String(), "error", err)
		}
	}
	s.log.InfoContext(ctx, "schedule updates announced", "days", len(dates))
	return nil
}

// NotifyError reports a failed process. Failures to deliver are logged only.
func (s *Notifications) NotifyError(ctx context.Context, process string, procErr error) {
	msg, err := renderErrorMessage(process, procErr)
	if err != nil {
		s.log.ErrorContext(ctx, "failed to render error message", "error", err)
		return
	}
	delivered, err := s.send(ctx, msg)
	if err != nil {
		s.log.ErrorContext(ctx, "failed to report error", "process", process, "error", err)
		return
	}
	if delivered {
		s.metrics.MessagesSent.WithLabelValues("error").Inc()
	}
}

func (s *Notifications) Cleanup(ctx context.Context) error {
	s.mx.Lock()
	defer s.mx.Unlock()

	removed, err := s.publications.CleanupPublications(s.publicationsTTL)
	if err != nil {
		return fmt.Errorf("cleanup publications: %w", err)
	}
	s.log.InfoContext(ctx, "publications cleaned up", "removed", removed)
	return nil
}

// send reports false without an error when the bot is blocked in the operator chat.
// Nothing is recorded as announced then, so the days go out once the bot is unblocked.
func (s *Notifications) send(ctx context.Context, msg string) (bool, error) {
	err := s.telegram.SendMessage(ctx, strconv.FormatInt(s.chatID, 10), msg)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, telegram.ErrForbidden) {
		s.log.WarnContext(ctx, "bot is blocked in operator chat", "chatID", s.chatID)
		return false, nil
	}
	return false, fmt.Errorf("send message: %w", err)
}

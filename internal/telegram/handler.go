package telegram

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	tb "gopkg.in/telebot.v3"

	"github.com/Roma7-7-7/cek-notifier/internal/schedule"
	"github.com/Roma7-7-7/cek-notifier/internal/service"
)

//go:generate mockgen -package mocks -destination mocks/handler.go . Schedules,Stats

const (
	genericErrorMsg = "Щось пішло не так. Будь ласка, спробуйте пізніше."
	welcomeMsg      = `Привіт! Я показую графік погодинних відключень Дніпра та області.

/schedule - графік на сьогодні та завтра
/schedule 4.2 - графік однієї черги
/stats - середня тривалість відключень по чергах
/stats 4.2 - середня тривалість для однієї черги`
	noScheduleMsg = "Графік на сьогодні та завтра ще не опубліковано."

	requestTimeout = 10 * time.Second
)

type (
	Schedules interface {
		Day(ctx context.Context, date schedule.Date) (schedule.DayTable, bool, error)
	}

	Stats interface {
		Averages(ctx context.Context, days int) ([]service.GroupAverage, error)
	}

	Clock interface {
		Now() time.Time
	}
)

type Handler struct {
	schedules Schedules
	stats     Stats
	clock     Clock
	statsDays int

	log *slog.Logger
}

func NewHandler(schedules Schedules, stats Stats, clock Clock, statsDays int, log *slog.Logger) *Handler {
	return &Handler{
		schedules: schedules,
		stats:     stats,
		clock:     clock,
		statsDays: statsDays,
		log:       log.With("component", "handler"),
	}
}

func (h *Handler) Start(c tb.Context) error {
	h.log.Debug("start handler called", "chatID", c.Sender().ID)
	return c.Send(welcomeMsg)
}

// Schedule replies with today's and tomorrow's tables, optionally narrowed to one group.
func (h *Handler) Schedule(c tb.Context) error {
	chatID := c.Sender().ID
	group, ok := groupArg(c.Args())
	if !ok {
		return c.Send(unknownGroupMsg(c.Args()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	today := schedule.DateOf(h.clock.Now())
	var days []service.Day
	for _, date := range []schedule.Date{today, today.AddDays(1)} {
		table, found, err := h.schedules.Day(ctx, date)
		if err != nil {
			h.log.Error("failed to get schedule", "error", err, "chatID", chatID, "date", date.String())
			return c.Send(genericErrorMsg)
		}
		if !found {
			continue
		}
		if group != "" {
			hours, ok := table[group]
			if !ok {
				continue
			}
			table = schedule.DayTable{group: hours}
		}
		days = append(days, service.Day{Date: date, Table: table})
	}

	if len(days) == 0 {
		return c.Send(noScheduleMsg)
	}

	msg, err := service.RenderSchedule(days...)
	if err != nil {
		h.log.Error("failed to render schedule", "error", err, "chatID", chatID)
		return c.Send(genericErrorMsg)
	}
	return c.Send(msg)
}

// Stats replies with mean confirmed outage hours per group over the configured window.
func (h *Handler) Stats(c tb.Context) error {
	chatID := c.Sender().ID
	group, ok := groupArg(c.Args())
	if !ok {
		return c.Send(unknownGroupMsg(c.Args()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	averages, err := h.stats.Averages(ctx, h.statsDays)
	if err != nil {
		h.log.Error("failed to calculate averages", "error", err, "chatID", chatID)
		return c.Send(genericErrorMsg)
	}

	var sb strings.Builder
	for _, avg := range averages {
		if group != "" && avg.Group != group {
			continue
		}
		fmt.Fprintf(&sb, "Черга %s: %.1f год (днів: %d)\n", avg.Group.Number(), avg.OutageHours, avg.Days)
	}
	if sb.Len() == 0 {
		return c.Send(fmt.Sprintf("Немає даних за останні %d дн.", h.statsDays))
	}

	return c.Send(fmt.Sprintf("Середня тривалість відключень за останні %d дн.:\n%s", h.statsDays, sb.String()))
}

// groupArg returns an empty ID when no group was requested.
func groupArg(args []string) (schedule.GroupID, bool) {
	if len(args) == 0 {
		return "", true
	}
	g, err := schedule.GroupIDFromNumber(args[0])
	if err != nil {
		return "", false
	}
	return g, true
}

func unknownGroupMsg(args []string) string {
	return fmt.Sprintf("Невідома черга %q. Вкажіть номер у форматі 4.2", strings.Join(args, " "))
}

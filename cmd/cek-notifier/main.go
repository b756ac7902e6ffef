package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync"
	"syscall"
	"time"

	tc "github.com/Roma7-7-7/telegram"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.etcd.io/bbolt"

	"github.com/Roma7-7-7/cek-notifier/internal/calendar"
	"github.com/Roma7-7-7/cek-notifier/internal/config"
	"github.com/Roma7-7-7/cek-notifier/internal/dal"
	"github.com/Roma7-7-7/cek-notifier/internal/dal/migrations"
	"github.com/Roma7-7-7/cek-notifier/internal/observability"
	"github.com/Roma7-7-7/cek-notifier/internal/parser"
	"github.com/Roma7-7-7/cek-notifier/internal/providers"
	"github.com/Roma7-7-7/cek-notifier/internal/schedule"
	"github.com/Roma7-7-7/cek-notifier/internal/service"
	"github.com/Roma7-7-7/cek-notifier/internal/telegram"
	"github.com/Roma7-7-7/cek-notifier/pkg/clock"
)

const (
	exitOK         = 0
	exitFailure    = 1
	exitUsage      = 2
	shutdownWindow = 5 * time.Second
)

const usage = `Usage: cek-notifier <command> [options]

Commands:
  parse                               rebuild today's and tomorrow's schedule from the channel
  monitor                             apply update posts published since the last run
  update [-date DD.MM.YYYY] <text>    apply a literal update announcement
  run                                 run all processes on schedule, the bot and /metrics`

type app struct {
	conf  *config.Config
	clock *clock.Clock
	store *dal.BoltDB
	docs  *dal.DocumentFile
	reg   *prometheus.Registry

	schedules     *service.Schedules
	updates       *service.Updates
	stats         *service.Stats
	notifications *service.Notifications

	log *slog.Logger
}

func main() {
	os.Exit(run())
}

func run() int {
	if len(os.Args) < 2 { //nolint:mnd // program name and command
		fmt.Fprintln(os.Stderr, usage)
		return exitUsage
	}
	command, args := os.Args[1], os.Args[2:]

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	conf, err := config.NewConfig(ctx)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		return exitFailure
	}
	log := mustLogger(conf.Dev)

	a, err := newApp(conf, log)
	if err != nil {
		log.Error("failed to initialize", "error", err)
		return exitFailure
	}
	defer a.close()

	switch command {
	case "parse":
		return a.parse(ctx)
	case "monitor":
		return a.monitor(ctx)
	case "update":
		return a.update(ctx, args)
	case "run":
		return a.daemon(ctx)
	default:
		fmt.Fprintln(os.Stderr, usage)
		return exitUsage
	}
}

func newApp(conf *config.Config, log *slog.Logger) (*app, error) {
	loc, err := conf.Location()
	if err != nil {
		return nil, err
	}
	clk := clock.NewWithLocation(loc)

	db, err := openDB(conf.DBPath)
	if err != nil {
		return nil, err
	}
	if err = migrations.RunMigrations(db, log); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	store, err := dal.NewBoltDB(db)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create bolt store: %w", err)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := observability.NewMetrics(reg)

	p := parser.New(log)
	provider := providers.NewCEKProvider(conf.ChannelURL, &http.Client{Timeout: conf.FetchTimeout})
	docs := dal.NewDocumentFile(conf.DocumentPath)
	watermarks := dal.NewWatermarkFile(conf.WatermarkPath)
	// refresh, monitor and update all rewrite the same document
	documentLock := &sync.Mutex{}

	a := &app{
		conf:  conf,
		clock: clk,
		store: store,
		docs:  docs,
		reg:   reg,

		schedules: service.NewSchedules(service.SchedulesConfig{
			RegionID:     conf.RegionID,
			PostsLimit:   conf.PostsLimit,
			FetchTimeout: conf.FetchTimeout,
			HistoryTTL:   conf.HistoryTTL,
		}, docs, store, store, provider, p, clk, metrics, documentLock, log),
		updates: service.NewUpdates(service.UpdatesConfig{
			PostsLimit:   conf.MonitorPostsLimit,
			FetchTimeout: conf.FetchTimeout,
		}, docs, store, watermarks, provider, p, clk, metrics, documentLock, log),
		stats: service.NewStats(store, clk, log),

		log: log,
	}

	if conf.AdminChatID != 0 {
		sender := tc.NewClient(http.DefaultClient, conf.TelegramToken)
		a.notifications = service.NewNotifications(conf.AdminChatID, docs, store, sender, clk, metrics, conf.PublicationsTTL, log)
	}

	return a, nil
}

func (a *app) close() {
	if err := a.store.Close(); err != nil {
		a.log.Error("failed to close database", "error", err)
	}
}

func (a *app) parse(ctx context.Context) int {
	changed, err := a.schedules.Refresh(ctx)
	if err != nil {
		a.reportError(ctx, "parse", err)
		return exitFailure
	}
	a.announce(ctx, changed)
	a.log.InfoContext(ctx, "parse finished", "changed", changed, "path", a.docs.Path())
	return exitOK
}

func (a *app) monitor(ctx context.Context) int {
	changed, err := a.updates.Monitor(ctx)
	if err != nil {
		a.reportError(ctx, "monitor", err)
		return exitFailure
	}
	a.announce(ctx, changed)
	a.log.InfoContext(ctx, "monitor finished", "changed", changed)
	return exitOK
}

func (a *app) update(ctx context.Context, args []string) int {
	fs := flag.NewFlagSet("update", flag.ContinueOnError)
	dateFlag := fs.String("date", "", "target date DD.MM.YYYY, today by default")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	text := strings.TrimSpace(strings.Join(fs.Args(), " "))
	if text == "" {
		fmt.Fprintln(os.Stderr, usage)
		return exitUsage
	}

	var target *schedule.Date
	if *dateFlag != "" {
		d, err := schedule.ParseDate(*dateFlag)
		if err != nil {
			a.log.ErrorContext(ctx, "invalid date", "error", err)
			return exitUsage
		}
		target = &d
	}

	changed, err := a.updates.Apply(ctx, text, target)
	if err != nil {
		if service.IsInputError(err) {
			a.log.ErrorContext(ctx, "update rejected", "error", err)
			return exitUsage
		}
		a.reportError(ctx, "update", err)
		return exitFailure
	}
	a.announce(ctx, changed)
	a.log.InfoContext(ctx, "update finished", "changed", changed)
	return exitOK
}

func (a *app) daemon(ctx context.Context) int {
	conf := a.conf
	wg := &sync.WaitGroup{}

	scheduler := service.NewScheduler(clockwork.NewRealClock(), a.log).
		WithJob("refresh", conf.RefreshInterval, func(ctx context.Context) error {
			_, err := a.schedules.Refresh(ctx)
			return err
		}).
		WithJob("monitor", conf.MonitorInterval, func(ctx context.Context) error {
			_, err := a.updates.Monitor(ctx)
			return err
		}).
		WithJob("cleanup", conf.CleanupInterval, a.cleanup)

	if a.notifications != nil {
		scheduler = scheduler.
			WithJob("notify", conf.NotifyInterval, a.notifications.NotifyScheduleUpdates).
			WithErrorReporter(a.notifications.NotifyError)
	}

	if conf.CalendarEnabled {
		cal, err := a.newCalendar(ctx)
		if err != nil {
			a.log.ErrorContext(ctx, "failed to create calendar service", "error", err)
			return exitFailure
		}
		scheduler = scheduler.
			WithJob("calendar_sync", conf.CalendarSyncInterval, cal.SyncEvents).
			WithJob("calendar_cleanup", conf.CalendarCleanupInterval, func(ctx context.Context) error {
				return cal.CleanupStaleEvents(ctx, conf.CalendarLookbackDays)
			})
	}

	if conf.MetricsAddr != "" {
		srv := observability.NewServer(conf.MetricsAddr, a.reg, a.log)
		wg.Go(func() {
			if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				a.log.Error("metrics server failed", "error", err)
			}
		})
		wg.Go(func() {
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownWindow)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				a.log.Error("failed to shutdown metrics server", "error", err)
			}
		})
	}

	if conf.BotEnabled {
		handler := telegram.NewHandler(a.schedules, a.stats, a.clock, conf.StatsDays, a.log)
		bot, err := telegram.NewBot(conf.TelegramToken, handler, a.log)
		if err != nil {
			a.log.ErrorContext(ctx, "failed to create telegram bot", "error", err)
			return exitFailure
		}
		wg.Go(func() {
			a.log.InfoContext(ctx, "starting bot")
			bot.Start(ctx)
		})
	}

	a.log.InfoContext(ctx, "starting scheduler")
	scheduler.Start(ctx)

	wg.Wait()
	a.log.Info("stopped")
	return exitOK
}

func (a *app) cleanup(ctx context.Context) error {
	var errs []error
	if err := a.schedules.Cleanup(ctx); err != nil {
		errs = append(errs, err)
	}
	if a.notifications != nil {
		if err := a.notifications.Cleanup(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (a *app) newCalendar(ctx context.Context) (*service.CalendarService, error) {
	group, err := a.conf.CalendarGroupID()
	if err != nil {
		return nil, err
	}
	client, err := calendar.NewGoogle(ctx, a.conf.CalendarCredentialsPath)
	if err != nil {
		return nil, fmt.Errorf("create google calendar client: %w", err)
	}
	return service.NewCalendarService(service.CalendarConfig{
		CalendarID: a.conf.CalendarID,
		Group:      group,
	}, client, a.docs, a.clock, a.log), nil
}

// announce sends the changed days right away in one-shot commands.
func (a *app) announce(ctx context.Context, changed bool) {
	if !changed || a.notifications == nil {
		return
	}
	if err := a.notifications.NotifyScheduleUpdates(ctx); err != nil {
		a.log.ErrorContext(ctx, "failed to announce schedule", "error", err)
	}
}

func (a *app) reportError(ctx context.Context, process string, err error) {
	a.log.ErrorContext(ctx, "process failed", "process", process, "error", err)
	if a.notifications != nil {
		a.notifications.NotifyError(ctx, process, err)
	}
}

func openDB(path string) (*bbolt.DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil { //nolint:mnd // directory permissions
		return nil, fmt.Errorf("create database directory: %w", err)
	}
	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: time.Second}) //nolint:mnd // file permissions
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return db, nil
}

func mustLogger(dev bool) *slog.Logger {
	var handler slog.Handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})

	if dev {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})
	}

	return slog.New(handler)
}

package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

const heartbeatInterval = 5 * time.Minute

type (
	ProcessFn func(ctx context.Context) error

	// ErrorReporter is notified of every failed process run except cancellations.
	ErrorReporter func(ctx context.Context, process string, err error)

	job struct {
		process  string
		interval time.Duration
		fn       ProcessFn
	}

	Scheduler struct {
		clock   clockwork.Clock
		jobs    []job
		onError ErrorReporter
		log     *slog.Logger
	}
)

func NewScheduler(clock clockwork.Clock, log *slog.Logger) *Scheduler {
	return &Scheduler{
		clock: clock,
		log:   log.With("component", "scheduler"),
	}
}

// WithJob registers a process that runs at start and then every interval. A nil fn or a
// non-positive interval disables the process.
func (s *Scheduler) WithJob(process string, interval time.Duration, fn ProcessFn) *Scheduler {
	if fn == nil || interval <= 0 {
		s.log.Info("process disabled", "process", process)
		return s
	}
	s.jobs = append(s.jobs, job{process: process, interval: interval, fn: fn})
	return s
}

func (s *Scheduler) WithErrorReporter(fn ErrorReporter) *Scheduler {
	s.onError = fn
	return s
}

// Start blocks until ctx is done.
func (s *Scheduler) Start(ctx context.Context) {
	wg := &sync.WaitGroup{}
	for _, j := range s.jobs {
		wg.Go(func() {
			s.run(ctx, j)
		})
	}
	wg.Wait()
}

func (s *Scheduler) run(ctx context.Context, j job) {
	log := s.log.With("process", j.process)
	defer func() {
		log.InfoContext(ctx, "stopped scheduler")
	}()

	log.InfoContext(ctx, "starting scheduler", "interval", j.interval)
	pastHeartbeat := s.clock.Now()
	for {
		s.execute(ctx, j, log)

		if now := s.clock.Now(); now.Sub(pastHeartbeat) >= heartbeatInterval {
			log.InfoContext(ctx, "process is still running")
			pastHeartbeat = now
		}

		select {
		case <-ctx.Done():
			return
		case <-s.clock.After(j.interval):
		}
	}
}

func (s *Scheduler) execute(ctx context.Context, j job, log *slog.Logger) {
	err := withRecovery(ctx, j.fn)
	if err == nil {
		return
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		log.InfoContext(ctx, "process execution interrupted", "error", err)
		return
	}

	log.ErrorContext(ctx, "failed to run process", "error", err)
	if s.onError != nil {
		s.onError(ctx, j.process, err)
	}
}

func withRecovery(ctx context.Context, fn ProcessFn) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrPanic, r)
		}
	}()
	return fn(ctx)
}

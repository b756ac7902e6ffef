package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "cek_notifier"

// Post skip reasons, used as the "reason" label of PostsSkipped.
const (
	SkipNotSchedule = "not_schedule"
	SkipNoDate      = "no_date"
	SkipOutOfWindow = "out_of_window"
	SkipSuperseded  = "superseded"
	SkipSeen        = "seen"
	SkipNotUpdate   = "not_update"
	SkipUnparsable  = "unparsable"
)

// Metrics holds the Prometheus collectors of the notifier.
type Metrics struct {
	PostsFetched   prometheus.Counter
	PostsSkipped   *prometheus.CounterVec // labels: reason
	FetchFailures  prometheus.Counter
	DocumentWrites *prometheus.CounterVec // labels: source={refresh,monitor,update}
	UpdatesApplied prometheus.Counter
	CellsChanged   prometheus.Counter
	MessagesSent   *prometheus.CounterVec // labels: kind={schedule,error}
	CycleDuration  *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := newMetrics()
	reg.MustRegister(
		m.PostsFetched,
		m.PostsSkipped,
		m.FetchFailures,
		m.DocumentWrites,
		m.UpdatesApplied,
		m.CellsChanged,
		m.MessagesSent,
		m.CycleDuration,
	)
	return m
}

// NewMetricsForTesting creates unregistered collectors, so tests can build as many as they need.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		PostsFetched: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "posts_fetched_total",
			Help:      "Total channel posts read from the preview page.",
		}),
		PostsSkipped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "posts_skipped_total",
			Help:      "Posts ignored by the parsers, by reason.",
		}, []string{"reason"}),
		FetchFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fetch_failures_total",
			Help:      "Failed attempts to load the channel page.",
		}),
		DocumentWrites: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "document_writes_total",
			Help:      "Schedule document writes, by the operation that caused them.",
		}, []string{"source"}),
		UpdatesApplied: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "updates_applied_total",
			Help:      "Incremental updates that changed at least one cell.",
		}),
		CellsChanged: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cells_changed_total",
			Help:      "Hour cells changed by incremental updates.",
		}),
		MessagesSent: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "messages_sent_total",
			Help:      "Messages sent to the operator chat, by kind.",
		}, []string{"kind"}),
		CycleDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "cycle_duration_seconds",
			Help:      "Duration of refresh and monitor cycles.",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}, []string{"process"}),
	}
}

package syncer

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	syncRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "casesync",
			Name:      "sync_runs_total",
			Help:      "Case sync passes by final status.",
		},
		[]string{"status"},
	)

	syncDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "casesync",
			Name:      "sync_duration_seconds",
			Help:      "Wall time of one case sync pass.",
			Buckets:   prometheus.ExponentialBuckets(0.5, 2, 10),
		},
		[]string{"status"},
	)

	fetchAttemptsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "casesync",
			Name:      "fetch_attempts_total",
			Help:      "Snapshot fetch attempts by outcome.",
		},
		[]string{"outcome"},
	)

	updatesDetectedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "casesync",
			Name:      "updates_detected_total",
			Help:      "Detected case updates by importance.",
		},
		[]string{"importance"},
	)

	deadlinesRegisteredTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "casesync",
			Name:      "deadlines_registered_total",
			Help:      "Deadline records written by the registrar.",
		},
		[]string{"op"},
	)

	writeErrorsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "casesync",
			Name:      "write_errors_total",
			Help:      "Record writes that failed and were skipped during a pass.",
		},
	)
)

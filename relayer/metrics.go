package relayer

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	submissionsMetric = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "relay",
		Subsystem: "proofs",
		Name:      "submissions_total",
		Help:      "Number of proof submissions by outcome",
	}, []string{"outcome"})

	topUpsMetric = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "relay",
		Subsystem: "billing",
		Name:      "topups_total",
		Help:      "Number of credit top-ups issued",
	})

	submitLatencyMetric = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "relay",
		Subsystem: "proofs",
		Name:      "submit_latency_seconds",
		Help:      "Latency of the whole submission workflow",
		Buckets:   prometheus.ExponentialBuckets(0.01, 2, 16),
	})
)

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// APILatency measures HTTP request latencies.
	APILatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "orgdir_api_latency_seconds",
			Help:    "API endpoint latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// DirectoryWrites counts directory inserts by entity and outcome (success|conflict|error).
	DirectoryWrites = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "orgdir_directory_writes_total",
			Help: "Total number of directory write attempts",
		},
		[]string{"entity", "result"},
	)

	// SearchQueries counts search requests by entity.
	SearchQueries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "orgdir_search_queries_total",
			Help: "Total number of directory search queries",
		},
		[]string{"entity"},
	)
)

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Data file metrics
	DataLoadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "meteodata_loads_total",
			Help: "Total number of data file loads by outcome",
		},
		[]string{"outcome"}, // outcome: ok, not_found, invalid_json, unreadable, canceled
	)

	DataLoadDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "meteodata_load_duration_seconds",
			Help:    "Duration of data file read and validation in seconds",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		},
		[]string{"outcome"},
	)

	DataResponseBytes = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "meteodata_response_bytes",
			Help:    "Size of served data documents in bytes, before compression",
			Buckets: prometheus.ExponentialBuckets(1024, 4, 8),
		},
	)

	// Data file gauges, refreshed by Collector
	DataFilePresent = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "meteodata_file_present",
			Help: "1 if the data file exists and is a regular file, 0 otherwise",
		},
	)

	DataFileSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "meteodata_file_size_bytes",
			Help: "Size of the data file on disk in bytes",
		},
	)

	DataFileModified = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "meteodata_file_modified_timestamp_seconds",
			Help: "Modification time of the data file as a Unix timestamp",
		},
	)

	// Metrics collection error tracking
	MetricsCollectionErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "metrics_collection_errors_total",
			Help: "Total number of errors during metrics collection",
		},
		[]string{"collector"},
	)

	// API request metrics
	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "Duration of API requests in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2, 5},
		},
		[]string{"endpoint", "method", "status"},
	)

	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"endpoint", "method", "status"},
	)

	APIRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_requests_in_flight",
			Help: "Number of API requests currently being served",
		},
	)
)

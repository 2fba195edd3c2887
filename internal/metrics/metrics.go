// Package metrics метрики Prometheus для загрузки, карты, фоновых задач и HTTP.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"

	SourceFile = "file"
	SourceBulk = "bulk"
)

var (
	// Ingestion Metrics
	IngestedRows = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "observatory_ingested_rows_total",
			Help: "Total number of ingested rows by source and outcome",
		},
		[]string{"source", "outcome"},
	)

	IngestionDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "observatory_ingestion_duration_seconds",
			Help:    "Duration of a whole ingestion batch in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"source"},
	)

	// Map Metrics
	MapRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "observatory_map_requests_total",
			Help: "Total number of map requests by privilege tier",
		},
		[]string{"mode"},
	)

	// Insight Metrics
	InsightCacheResults = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "observatory_insight_cache_total",
			Help: "Insight cache lookups by result (hit, miss)",
		},
		[]string{"result"},
	)

	InsightGenerationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "observatory_insight_generation_errors_total",
			Help: "Narrative generation failures by provider",
		},
		[]string{"provider"},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "observatory_circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "observatory_circuit_breaker_requests_total",
			Help: "Requests through circuit breaker by result (success, failure, rejected)",
		},
		[]string{"name", "result"},
	)

	// Job Metrics
	JobRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "observatory_job_runs_total",
			Help: "Background job runs by kind and final status",
		},
		[]string{"kind", "status"},
	)

	JobRecords = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "observatory_job_records_total",
			Help: "National statistics records by result (inserted, skipped)",
		},
		[]string{"result"},
	)

	// API Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "observatory_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "observatory_api_request_duration_seconds",
			Help:    "API request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)
)

// RecordRow учитывает результат одной строки пакета
func RecordRow(source string, err error) {
	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeError
	}
	IngestedRows.WithLabelValues(source, outcome).Inc()
}

// RecordIngestion учитывает длительность пакета
func RecordIngestion(source string, duration time.Duration) {
	IngestionDuration.WithLabelValues(source).Observe(duration.Seconds())
}

// RecordJob учитывает завершение фоновой задачи
func RecordJob(kind, status string, inserted, skipped int) {
	JobRuns.WithLabelValues(kind, status).Inc()
	JobRecords.WithLabelValues("inserted").Add(float64(inserted))
	JobRecords.WithLabelValues("skipped").Add(float64(skipped))
}

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint string, statusCode int, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, strconv.Itoa(statusCode)).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request latency (seconds).
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		[]string{"method", "path", "status"},
	)

	// Database query latency (seconds).
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Database query duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
		},
		[]string{"operation", "table"},
	)

	// Recognized intents by resulting action tag.
	IntentCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assistant_intent_count",
			Help: "Total number of interpreted commands by action",
		},
		[]string{"action"},
	)

	// Replies served from the canned fallback table instead of the model.
	ReplyFallbackCount = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "assistant_reply_fallback_count",
			Help: "Total number of replies served from the fallback table",
		},
	)

	// Speech-to-text call latency (milliseconds).
	TranscriptionLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "transcription_latency_ms",
			Help:    "Speech-to-text call latency in milliseconds",
			Buckets: prometheus.ExponentialBuckets(10, 2, 10), // 10ms to ~10s
		},
		[]string{"status"},
	)
)

func RecordHTTPRequestDuration(method, path, status string, duration time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

func RecordDBQueryDuration(operation, table string, duration time.Duration) {
	DBQueryDuration.WithLabelValues(operation, table).Observe(duration.Seconds())
}

func IncrementIntent(action string) {
	IntentCount.WithLabelValues(action).Inc()
}

func IncrementReplyFallback() {
	ReplyFallbackCount.Inc()
}

func RecordTranscriptionLatency(status string, duration time.Duration) {
	TranscriptionLatency.WithLabelValues(status).Observe(float64(duration.Milliseconds()))
}

package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP/gRPC request metrics
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "requests_total",
			Help: "Total number of requests",
		},
		[]string{"service", "method", "status"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "request_duration_seconds",
			Help:    "Request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"service", "method"},
	)

	KafkaMessagesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_total",
			Help: "Total number of Kafka messages",
		},
		[]string{"service", "topic", "status"},
	)

	// Pipeline metrics
	FilesIngested = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "trial_files_ingested_total",
			Help: "Uploaded files by final processing status",
		},
		[]string{"status"},
	)

	ReportsGenerated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "trial_reports_generated_total",
			Help: "Report generation attempts by report type and outcome",
		},
		[]string{"report_type", "status"},
	)

	InferenceDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "inference_duration_seconds",
			Help:    "Latency of calls to the text generation provider",
			Buckets: []float64{0.5, 1, 2.5, 5, 10, 20, 40, 60, 120},
		},
		[]string{"provider", "outcome"},
	)

	BlobBytesStored = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "blob_bytes_stored_total",
			Help: "Bytes written to the blob store",
		},
	)
)

func init() {
	prometheus.MustRegister(
		RequestsTotal,
		RequestDuration,
		KafkaMessagesTotal,
		FilesIngested,
		ReportsGenerated,
		InferenceDuration,
		BlobBytesStored,
	)
}

// StartMetricsServer serves /metrics on its own listener in the background.
func StartMetricsServer(port string) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			panic("failed to start metrics server: " + err.Error())
		}
	}()
	return srv
}

func RecordRequest(service, method, status string, duration time.Duration) {
	RequestsTotal.WithLabelValues(service, method, status).Inc()
	RequestDuration.WithLabelValues(service, method).Observe(duration.Seconds())
}

func RecordIngestion(status string) {
	FilesIngested.WithLabelValues(status).Inc()
}

func RecordReport(reportType, status string) {
	ReportsGenerated.WithLabelValues(reportType, status).Inc()
}

func RecordInference(provider, outcome string, duration time.Duration) {
	InferenceDuration.WithLabelValues(provider, outcome).Observe(duration.Seconds())
}

func RecordKafkaMessage(service, topic, status string) {
	KafkaMessagesTotal.WithLabelValues(service, topic, status).Inc()
}

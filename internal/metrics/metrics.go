package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	namespace = "docsense"

	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "path", "code"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	documentExtractTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "document_extract_total",
			Help:      "Number of document text extractions",
		},
		[]string{"status", "file_format"},
	)

	documentExtractDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "document_extract_duration_seconds",
			Help:      "Document text extraction duration in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"status", "file_format"},
	)
)

func HttpRequestsTotal(method, path, code string) {
	httpRequestsTotal.With(prometheus.Labels{
		"method": method,
		"path":   path,
		"code":   code,
	}).Inc()
}

func HttpRequestDuration(method, path string, duration time.Duration) {
	httpRequestDuration.With(prometheus.Labels{
		"method": method,
		"path":   path,
	}).Observe(duration.Seconds())
}

func DocumentExtractTotal(status, fileFormat string) {
	documentExtractTotal.With(prometheus.Labels{
		"status":      status,
		"file_format": fileFormat,
	}).Inc()
}

func DocumentExtractDuration(status, fileFormat string, duration time.Duration) {
	documentExtractDuration.With(prometheus.Labels{
		"status":      status,
		"file_format": fileFormat,
	}).Observe(duration.Seconds())
}

func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		ww := &statusResponseWriter{w, 200}
		next.ServeHTTP(ww, r)

		duration := time.Since(start)
		HttpRequestsTotal(r.Method, r.URL.Path, strconv.Itoa(ww.status))
		HttpRequestDuration(r.Method, r.URL.Path, duration)
	})
}

type statusResponseWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusResponseWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

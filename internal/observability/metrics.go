package observability

import (
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	registerOnce          sync.Once
	submissionsTotal      *prometheus.CounterVec
	spamScoreDistribution prometheus.Histogram
	adminRequestsTotal    *prometheus.CounterVec
	adminLatencySeconds   *prometheus.HistogramVec
	adminErrorsTotal      *prometheus.CounterVec
)

// RegisterMetrics initialises the Prometheus collectors.
func RegisterMetrics() {
	registerOnce.Do(func() {
		submissionsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "contact_submissions_total",
			Help: "Contact form submissions by outcome.",
		}, []string{"outcome"})

		spamScoreDistribution = prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "contact_spam_score",
			Help:    "Spam heuristic score distribution across submissions.",
			Buckets: []float64{0, 1, 2, 3, 5, 10, 20},
		})

		adminRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "admin_requests_total",
			Help: "Total number of admin API requests served.",
		}, []string{"method", "route", "status"})

		adminLatencySeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "admin_latency_seconds",
			Help:    "Latency distribution for admin API requests.",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.0},
		}, []string{"method", "route"})

		adminErrorsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "admin_errors_total",
			Help: "Total number of error responses returned by admin endpoints.",
		}, []string{"method", "route", "status"})

		prometheus.MustRegister(submissionsTotal, spamScoreDistribution, adminRequestsTotal, adminLatencySeconds, adminErrorsTotal)
	})
}

// ContactSubmissions exposes the submission outcome counter.
func ContactSubmissions() *prometheus.CounterVec {
	RegisterMetrics()
	return submissionsTotal
}

// SpamScores exposes the spam score histogram.
func SpamScores() prometheus.Histogram {
	RegisterMetrics()
	return spamScoreDistribution
}

// AdminRequests exposes the counter for admin requests.
func AdminRequests() *prometheus.CounterVec {
	RegisterMetrics()
	return adminRequestsTotal
}

// AdminLatency exposes the latency histogram for admin requests.
func AdminLatency() *prometheus.HistogramVec {
	RegisterMetrics()
	return adminLatencySeconds
}

// AdminErrors exposes the counter for admin error responses.
func AdminErrors() *prometheus.CounterVec {
	RegisterMetrics()
	return adminErrorsTotal
}

// MetricsHandler serves the scrape endpoint for the collectors above,
// bridged into fiber through the net/http adaptor.
func MetricsHandler() fiber.Handler {
	RegisterMetrics()
	return adaptor.HTTPHandler(promhttp.Handler())
}

package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "learnsmart_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "route", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "learnsmart_api_request_duration_seconds",
			Help:    "API request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "learnsmart_api_active_requests",
			Help: "Requests currently being served",
		},
	)

	// learning activity
	EnrollmentsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "learnsmart_enrollments_total",
			Help: "Total number of course enrollments",
		},
	)

	LessonCompletionsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "learnsmart_lesson_completions_total",
			Help: "Total number of lessons marked complete",
		},
	)

	QuizSubmissionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "learnsmart_quiz_submissions_total",
			Help: "Total number of quiz submissions by outcome",
		},
		[]string{"outcome"}, // "passed", "failed"
	)
)

// RecordAPIRequest records one finished request. route should be the chi pattern, not the raw path.
func RecordAPIRequest(method, route string, statusCode int, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, route, strconv.Itoa(statusCode)).Inc()
	APIRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

func TrackActiveRequest(start bool) {
	if start {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

func RecordEnrollment() {
	EnrollmentsTotal.Inc()
}

func RecordLessonCompletion() {
	LessonCompletionsTotal.Inc()
}

func RecordQuizSubmission(passed bool) {
	outcome := "failed"
	if passed {
		outcome = "passed"
	}
	QuizSubmissionsTotal.WithLabelValues(outcome).Inc()
}

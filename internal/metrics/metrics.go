// Package metrics registers the prometheus collectors of the survey map
// services.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SurveyLoadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "roadsurvey_loads_total",
			Help: "Survey collection load attempts by source and status",
		},
		[]string{"source", "status"},
	)

	SurveyLoadDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "roadsurvey_load_duration_seconds",
			Help:    "Time spent fetching and decoding the survey collection",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"source"},
	)

	SurveyFeatures = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "roadsurvey_features",
			Help: "Number of roads in the loaded survey collection",
		},
	)

	SessionEventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "roadsurvey_session_events_total",
			Help: "Interaction events applied to viewer sessions",
		},
		[]string{"type", "status"},
	)

	ActiveSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "roadsurvey_active_sessions",
			Help: "Number of viewer sessions held in memory",
		},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "roadsurvey_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0},
		},
		[]string{"method", "route", "status"},
	)

	RateLimitedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "roadsurvey_rate_limited_total",
			Help: "Requests rejected by the per-client rate limiter",
		},
	)
)

// RecordLoad records the outcome of one survey load.
func RecordLoad(source string, duration time.Duration, features int, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	SurveyLoadsTotal.WithLabelValues(source, status).Inc()
	SurveyLoadDuration.WithLabelValues(source).Observe(duration.Seconds())
	if err == nil {
		SurveyFeatures.Set(float64(features))
	}
}

// RecordSessionEvent counts one applied or rejected interaction event.
func RecordSessionEvent(eventType string, err error) {
	status := "applied"
	if err != nil {
		status = "rejected"
	}
	SessionEventsTotal.WithLabelValues(eventType, status).Inc()
}

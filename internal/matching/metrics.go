// internal/matching/metrics.go

package matching

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	matchRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "matching_runs_total",
			Help: "Total number of matching runs",
		},
		[]string{"source"},
	)

	dealBreakerExclusions = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "matching_deal_breaker_exclusions_total",
			Help: "Total number of candidates excluded by deal-breakers",
		},
	)

	compatibilityScores = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "matching_compatibility_scores",
			Help:    "Distribution of compatibility scores",
			Buckets: prometheus.LinearBuckets(0, 10, 11),
		},
	)

	matchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "matching_run_duration_seconds",
			Help: "Time spent filtering and scoring one candidate set",
		},
		[]string{"source"},
	)

	cacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "matching_cache_requests_total",
			Help: "Match cache lookups by result",
		},
		[]string{"result"},
	)

	notificationsSent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "matching_notifications_sent_total",
			Help: "Total number of match notification emails sent",
		},
	)
)

func recordMatchRun(source string, outcome *MatchOutcome, elapsed time.Duration) {
	matchRunsTotal.WithLabelValues(source).Inc()
	matchDuration.WithLabelValues(source).Observe(elapsed.Seconds())
	dealBreakerExclusions.Add(float64(outcome.FilteredByDealBreakers))
	for _, m := range outcome.Matches {
		compatibilityScores.Observe(m.CompatibilityScore)
	}
}

func recordCacheHit(hit bool) {
	if hit {
		cacheHits.WithLabelValues("hit").Inc()
	} else {
		cacheHits.WithLabelValues("miss").Inc()
	}
}

func recordNotification() {
	notificationsSent.Inc()
}

package services

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsNamespace = "dropscore"

// Run outcomes reported in dropscore_runs_total.
const (
	OutcomeOK            = "ok"
	OutcomeInvalidURL    = "invalid_url"
	OutcomeFetchError    = "fetch_error"
	OutcomeNoComments    = "no_comments"
	OutcomeAnalysisError = "analysis_error"
)

type Metrics struct {
	Runs            *prometheus.CounterVec
	FetchDuration   prometheus.Histogram
	CommentsFetched prometheus.Histogram
	ViralScore      prometheus.Histogram
}

// NewMetrics registers the pipeline metrics on reg, or on the default registerer
// when reg is nil.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		Runs: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "runs_total",
				Help:      "Pipeline runs by outcome",
			},
			[]string{"outcome"},
		),
		FetchDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "fetch_duration_seconds",
			Help:      "Time spent fetching comments from YouTube",
			Buckets:   prometheus.ExponentialBuckets(0.05, 2, 10),
		}),
		CommentsFetched: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "comments_fetched",
			Help:      "Comments fetched per run",
			Buckets:   []float64{0, 10, 25, 50, 100, 200, 500, 1000},
		}),
		ViralScore: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "viral_score",
			Help:      "Clamped viral score per successful run",
			Buckets:   prometheus.LinearBuckets(0, 10, 11),
		}),
	}
}

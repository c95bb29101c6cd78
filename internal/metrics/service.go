package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ Metrics = (*Service)(nil)

// Service is the Prometheus-backed Metrics implementation.
type Service struct {
	MatchesSubmitted    prometheus.Counter
	MatchesRejected     prometheus.Counter
	SubmissionDuration  prometheus.Histogram
	LeaderboardRequests prometheus.Counter
	ExportRuns          prometheus.Counter
	StartupTimeSeconds  prometheus.Gauge
}

// NewMetricsHandler returns an http.Handler for the given Gatherer.
// If no gatherer is provided, it uses the default one.
func NewMetricsHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the Prometheus metrics.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		MatchesSubmitted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "league_matches_submitted_total",
			Help: "The total number of match submissions accepted and applied.",
		}),
		MatchesRejected: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "league_matches_rejected_total",
			Help: "The total number of match submissions rejected by validation.",
		}),
		SubmissionDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "league_match_submission_duration_seconds",
			Help:    "The duration of individual match submissions.",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		LeaderboardRequests: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "league_leaderboard_requests_total",
			Help: "The total number of leaderboard requests served.",
		}),
		ExportRuns: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "league_export_runs_total",
			Help: "The total number of data export downloads.",
		}),
		StartupTimeSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "league_startup_duration_seconds",
			Help: "The duration of the application startup in seconds.",
		}),
	}

	reg.MustRegister(
		s.MatchesSubmitted,
		s.MatchesRejected,
		s.SubmissionDuration,
		s.LeaderboardRequests,
		s.ExportRuns,
		s.StartupTimeSeconds,
	)

	return s
}

func (s *Service) IncMatchesSubmitted() {
	s.MatchesSubmitted.Inc()
}

func (s *Service) IncMatchesRejected() {
	s.MatchesRejected.Inc()
}

func (s *Service) ObserveSubmissionDuration(duration float64) {
	s.SubmissionDuration.Observe(duration)
}

func (s *Service) IncLeaderboardRequests() {
	s.LeaderboardRequests.Inc()
}

func (s *Service) IncExportRuns() {
	s.ExportRuns.Inc()
}

func (s *Service) SetStartupTime(duration float64) {
	s.StartupTimeSeconds.Set(duration)
}

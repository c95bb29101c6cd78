package metrics

// Metrics defines the interface for collecting application metrics.
// This decouples the application from the specific metrics implementation (e.g., Prometheus).
type Metrics interface {
	IncMatchesSubmitted()
	IncMatchesRejected()
	ObserveSubmissionDuration(duration float64)
	IncLeaderboardRequests()
	IncExportRuns()
	SetStartupTime(duration float64)
}

package metrics

import "sync"

// Mock is a no-op Metrics implementation that records call counts for tests.
type Mock struct {
	mu sync.Mutex

	MatchesSubmittedCalls    int
	MatchesRejectedCalls     int
	SubmissionDurations      []float64
	LeaderboardRequestsCalls int
	ExportRunsCalls          int
	StartupTimes             []float64
}

var _ Metrics = (*Mock)(nil)

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) IncMatchesSubmitted() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.MatchesSubmittedCalls++
}

func (m *Mock) IncMatchesRejected() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.MatchesRejectedCalls++
}

func (m *Mock) ObserveSubmissionDuration(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SubmissionDurations = append(m.SubmissionDurations, duration)
}

func (m *Mock) IncLeaderboardRequests() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LeaderboardRequestsCalls++
}

func (m *Mock) IncExportRuns() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ExportRunsCalls++
}

func (m *Mock) SetStartupTime(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.StartupTimes = append(m.StartupTimes, duration)
}

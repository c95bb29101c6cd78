package ingest

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/dieleague/backend/internal/league"
	"github.com/dieleague/backend/internal/metrics"
	"github.com/google/uuid"
)

// Ingester validates match submissions and applies their aggregated effects.
type Ingester struct {
	store   Store
	metrics metrics.Metrics
}

// New creates a new Ingester.
func New(store Store, metrics metrics.Metrics) *Ingester {
	return &Ingester{
		store:   store,
		metrics: metrics,
	}
}

// Submit ingests one match: it resolves the two teams, validates and sums the
// per-game stat lines, and commits all effects atomically. Rejections leave
// every record untouched. There is deliberately no submission dedup, so the
// same match submitted twice counts twice; the audit record makes that
// traceable.
func (i *Ingester) Submit(sub MatchSubmission) (*Result, error) {
	startTime := time.Now()

	teamA, err := i.store.GetTeam(sub.TeamAID)
	if err != nil {
		i.metrics.IncMatchesRejected()
		return nil, errf(InvalidTeamReference, "team %d not found", sub.TeamAID)
	}
	teamB, err := i.store.GetTeam(sub.TeamBID)
	if err != nil {
		i.metrics.IncMatchesRejected()
		return nil, errf(InvalidTeamReference, "team %d not found", sub.TeamBID)
	}

	players, err := i.store.ListPlayers()
	if err != nil {
		return nil, err
	}

	deltas, err := Aggregate(sub, players, *teamA, *teamB)
	if err != nil {
		log.Warn("Rejected match submission", "teamA", sub.TeamAID, "teamB", sub.TeamBID, "error", err)
		i.metrics.IncMatchesRejected()
		return nil, err
	}

	loserID := teamA.ID
	if sub.WinnerID == teamA.ID {
		loserID = teamB.ID
	}

	record := league.SubmissionRecord{
		ID:             uuid.NewString(),
		TeamAID:        sub.TeamAID,
		TeamBID:        sub.TeamBID,
		WinnerID:       sub.WinnerID,
		NumGames:       sub.NumGames,
		PlayersUpdated: len(deltas),
		SubmittedAt:    time.Now().Unix(),
	}
	if err := i.store.ApplyMatchResult(deltas, sub.WinnerID, loserID, record); err != nil {
		return nil, err
	}

	i.metrics.IncMatchesSubmitted()
	i.metrics.ObserveSubmissionDuration(time.Since(startTime).Seconds())
	log.Info("Match submitted", "submissionID", record.ID, "winner", sub.WinnerID, "players_updated", len(deltas))

	return &Result{
		Message:        "Match submitted successfully",
		PlayersUpdated: len(deltas),
		TeamsUpdated:   2,
	}, nil
}

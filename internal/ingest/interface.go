package ingest

import "github.com/dieleague/backend/internal/league"

// Store defines the database operations required by the ingester.
type Store interface {
	ListPlayers() ([]league.Player, error)
	GetTeam(id int) (*league.Team, error)
	ApplyMatchResult(deltas map[int]league.StatLine, winnerID, loserID int, record league.SubmissionRecord) error
}

package ingest

import "github.com/dieleague/backend/internal/league"

// PlayerLine is one player's raw counters for a single game.
type PlayerLine struct {
	PlayerID int `json:"player_id"`
	league.StatLine
}

// GameStats holds both rosters' stat lines for one game of a match.
type GameStats struct {
	TeamAPlayers []PlayerLine `json:"team_a_players"`
	TeamBPlayers []PlayerLine `json:"team_b_players"`
}

// MatchSubmission is the ephemeral input to match ingestion: 1-7 games
// between two teams with per-game per-player stat lines and a declared
// winner. It is never persisted verbatim; only its aggregated effects are.
type MatchSubmission struct {
	TeamAID  int         `json:"team_a_id"`
	TeamBID  int         `json:"team_b_id"`
	NumGames int         `json:"num_games"`
	Games    []GameStats `json:"games"`
	WinnerID int         `json:"winner_id"`
}

// Result reports what a successful submission changed.
type Result struct {
	Message        string `json:"message"`
	PlayersUpdated int    `json:"players_updated"`
	TeamsUpdated   int    `json:"teams_updated"`
}

// MinGames and MaxGames bound the declared game count of a match.
const (
	MinGames = 1
	MaxGames = 7
)

package ingest

import "fmt"

// ErrorKind classifies why a submission was rejected. Every rejection happens
// before any mutation, so a returned Error always means zero records changed.
type ErrorKind string

const (
	// InvalidTeamReference - team_a or team_b does not resolve to a team.
	InvalidTeamReference ErrorKind = "invalid_team_reference"
	// InvalidWinner - winner_id is neither team_a nor team_b.
	InvalidWinner ErrorKind = "invalid_winner"
	// InvalidGameCount - num_games outside [1,7] or not matching len(games).
	InvalidGameCount ErrorKind = "invalid_game_count"
	// UnknownPlayer - a stat line references a player that does not exist or
	// is not on either roster.
	UnknownPlayer ErrorKind = "unknown_player"
	// InvalidStatValue - a stat line carries a negative counter.
	InvalidStatValue ErrorKind = "invalid_stat_value"
)

// Error is the structured rejection surfaced to callers: a machine-readable
// kind plus human-readable detail. Presentation is the caller's job.
type Error struct {
	Kind   ErrorKind
	Detail string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
}

// NotFound reports whether the rejection was a missing-reference error rather
// than malformed input.
func (e *Error) NotFound() bool {
	return e.Kind == InvalidTeamReference || e.Kind == UnknownPlayer
}

func errf(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Detail: fmt.Sprintf(format, args...)}
}

// Package schedule resolves which game applies to a team in a given week and
// orders full team schedules for display.
package schedule

import (
	"sort"

	"github.com/dieleague/backend/internal/league"
)

// OutcomeKind is the result of resolving a team's game for a week.
type OutcomeKind string

const (
	// NoGame - no game scheduled for the team in that week.
	NoGame OutcomeKind = "no_game"
	// Bye - a scheduled game with no real opponent.
	Bye OutcomeKind = "bye"
	// Scheduled - a scheduled game against a real opponent.
	Scheduled OutcomeKind = "scheduled"
)

// Outcome describes a team's game for the resolved week. Home is true when
// the team appears as team_a. Game is nil for NoGame.
type Outcome struct {
	Kind       OutcomeKind
	Home       bool
	OpponentID int
	Game       *league.Game
}

// ResolveWeek finds the game, if any, where the team plays in exactly the
// given week. There is no fallback to a nearest week, and during the
// preseason no game ever matches.
func ResolveWeek(teamID int, current league.Week, games []league.Game) Outcome {
	if current == league.Preseason {
		return Outcome{Kind: NoGame}
	}
	for i, g := range games {
		if g.Week != int(current) {
			continue
		}
		if g.TeamAID != teamID && g.TeamBID != teamID {
			continue
		}
		home := g.TeamAID == teamID
		opponent := g.TeamBID
		if !home {
			opponent = g.TeamAID
		}
		if opponent == league.ByeOpponent {
			return Outcome{Kind: Bye, Home: home, Game: &games[i]}
		}
		return Outcome{Kind: Scheduled, Home: home, OpponentID: opponent, Game: &games[i]}
	}
	return Outcome{Kind: NoGame}
}

// Sort orders a team's full schedule for display: week ascending with
// week-less games after all numbered weeks, then date string lexicographically.
func Sort(games []league.Game) {
	sort.SliceStable(games, func(i, j int) bool {
		wi, wj := games[i].Week, games[j].Week
		if wi != wj {
			if wi == 0 {
				return false
			}
			if wj == 0 {
				return true
			}
			return wi < wj
		}
		return games[i].Date < games[j].Date
	})
}

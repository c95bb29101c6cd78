package league

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"
)

// store handles all database operations for the league.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}

// Player is a league member together with their cumulative raw counters.
// Counters only ever grow through match ingestion; direct commissioner edits
// may set them to any non-negative value.
type Player struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Rank      int    `json:"rank"`
	Points    int    `json:"points"`
	TableHits int    `json:"table_hits"`
	Throws    int    `json:"throws"`
	Catches   int    `json:"catches"`
	Drops     int    `json:"drops"`
	Fifas     int    `json:"fifas"`
}

// Team references exactly three players by id. Wins and losses are
// incremented by match ingestion or edited directly.
type Team struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Player1ID int    `json:"player1_id"`
	Player2ID int    `json:"player2_id"`
	Player3ID int    `json:"player3_id"`
	Wins      int    `json:"wins"`
	Losses    int    `json:"losses"`
}

// PlayerIDs returns the team's roster in declaration order.
func (t Team) PlayerIDs() [3]int {
	return [3]int{t.Player1ID, t.Player2ID, t.Player3ID}
}

// ByeOpponent is the sentinel team id marking a bye game.
const ByeOpponent = 0

// Game is a scheduled or played game between two teams. TeamBID == ByeOpponent
// marks a bye. Week 0 means no week assigned; Date is an optional ISO date.
type Game struct {
	ID      int    `json:"id"`
	TeamAID int    `json:"team_a_id"`
	TeamBID int    `json:"team_b_id"`
	ScoreA  int    `json:"score_a"`
	ScoreB  int    `json:"score_b"`
	Date    string `json:"date,omitempty"`
	Week    int    `json:"week,omitempty"`
}

// Played reports whether the game has a recorded result. A game with both
// scores zero is scheduled but unplayed.
func (g Game) Played() bool {
	return g.ScoreA != 0 || g.ScoreB != 0
}

// StatLine holds the six raw counters tracked per player. It is used both for
// per-game submissions and for the summed deltas applied to a player.
type StatLine struct {
	Points    int `json:"points"`
	TableHits int `json:"table_hits"`
	Throws    int `json:"throws"`
	Catches   int `json:"catches"`
	Drops     int `json:"drops"`
	Fifas     int `json:"fifas"`
}

// Add accumulates another line into this one.
func (s *StatLine) Add(o StatLine) {
	s.Points += o.Points
	s.TableHits += o.TableHits
	s.Throws += o.Throws
	s.Catches += o.Catches
	s.Drops += o.Drops
	s.Fifas += o.Fifas
}

// Negative reports whether any counter is below zero.
func (s StatLine) Negative() bool {
	return s.Points < 0 || s.TableHits < 0 || s.Throws < 0 || s.Catches < 0 || s.Drops < 0 || s.Fifas < 0
}

// SubmissionRecord is the audit row written for every accepted match
// submission. Submissions are not deduplicated; resubmitting the same match
// counts twice, and the audit trail is how a double-submit gets noticed.
type SubmissionRecord struct {
	ID             string `json:"id"`
	TeamAID        int    `json:"team_a_id"`
	TeamBID        int    `json:"team_b_id"`
	WinnerID       int    `json:"winner_id"`
	NumGames       int    `json:"num_games"`
	PlayersUpdated int    `json:"players_updated"`
	SubmittedAt    int64  `json:"submitted_at"`
}

// Week is the league's current week: 1 through 14, or Preseason.
// It marshals as the string "preseason" or a plain integer.
type Week int

// Preseason is the sentinel week before the regular season starts.
const Preseason Week = 0

// MaxWeek is the last week of the regular season.
const MaxWeek Week = 14

// Valid reports whether w is Preseason or within the 1-14 season range.
func (w Week) Valid() bool {
	return w == Preseason || (w >= 1 && w <= MaxWeek)
}

func (w Week) String() string {
	if w == Preseason {
		return "preseason"
	}
	return fmt.Sprintf("week %d", int(w))
}

func (w Week) MarshalJSON() ([]byte, error) {
	if w == Preseason {
		return json.Marshal("preseason")
	}
	return json.Marshal(int(w))
}

func (w *Week) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		if !Week(n).Valid() || Week(n) == Preseason {
			return fmt.Errorf("week must be preseason or between 1 and %d", MaxWeek)
		}
		*w = Week(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("week must be preseason or between 1 and %d", MaxWeek)
	}
	if s != "preseason" {
		return fmt.Errorf("week must be preseason or between 1 and %d", MaxWeek)
	}
	*w = Preseason
	return nil
}

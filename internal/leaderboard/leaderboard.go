// Package leaderboard ranks the full player set by each tracked statistic.
package leaderboard

import (
	"sort"

	"github.com/dieleague/backend/internal/league"
	"github.com/dieleague/backend/internal/stats"
)

// Category describes one tracked statistic: how to read it off a player, how
// to render it, and which direction ranks first. Reverse categories are
// negative indicators where the lowest value wins.
type Category struct {
	Key     string
	Label   string
	Value   func(p league.Player) float64
	Format  func(v float64) string
	Reverse bool
}

// Categories is the fixed set of eight tracked statistics, in display order.
var Categories = []Category{
	{Key: "points", Label: "Points", Value: func(p league.Player) float64 { return float64(p.Points) }, Format: stats.FormatCount},
	{Key: "table_hits", Label: "Table Hits", Value: func(p league.Player) float64 { return float64(p.TableHits) }, Format: stats.FormatCount},
	{Key: "throws", Label: "Throws", Value: func(p league.Player) float64 { return float64(p.Throws) }, Format: stats.FormatCount},
	{Key: "catches", Label: "Catches", Value: func(p league.Player) float64 { return float64(p.Catches) }, Format: stats.FormatCount},
	{Key: "drops", Label: "Drops", Value: func(p league.Player) float64 { return float64(p.Drops) }, Format: stats.FormatCount, Reverse: true},
	{Key: "fifas", Label: "Fifas", Value: func(p league.Player) float64 { return float64(p.Fifas) }, Format: stats.FormatCount},
	{Key: "points_per_throw", Label: "Points per Throw", Value: func(p league.Player) float64 { return stats.PointsPerThrow(p.Points, p.Throws) }, Format: stats.FormatPointsPerThrow},
	{Key: "catch_percentage", Label: "Catch %", Value: func(p league.Player) float64 { return stats.CatchPercentage(p.Catches, p.Drops) }, Format: stats.FormatCatchPercentage},
}

// Entry is one row of a category ranking, 1-indexed.
type Entry struct {
	Position   int    `json:"position"`
	PlayerID   int    `json:"player_id"`
	PlayerName string `json:"player_name"`
	Value      string `json:"value"`
}

// Ranking is the full ordering of all players for one category.
type Ranking struct {
	Key     string  `json:"key"`
	Label   string  `json:"label"`
	Entries []Entry `json:"entries"`
}

// Rankings produces the per-category rankings for the given players. The sort
// is stable, so ties keep the input order; callers pass players in league-rank
// order, which makes the tie-break deterministic.
func Rankings(players []league.Player) []Ranking {
	rankings := make([]Ranking, 0, len(Categories))
	for _, cat := range Categories {
		sorted := make([]league.Player, len(players))
		copy(sorted, players)
		sort.SliceStable(sorted, func(i, j int) bool {
			a, b := cat.Value(sorted[i]), cat.Value(sorted[j])
			if cat.Reverse {
				return a < b
			}
			return a > b
		})

		entries := make([]Entry, 0, len(sorted))
		for i, p := range sorted {
			entries = append(entries, Entry{
				Position:   i + 1,
				PlayerID:   p.ID,
				PlayerName: p.Name,
				Value:      cat.Format(cat.Value(p)),
			})
		}
		rankings = append(rankings, Ranking{Key: cat.Key, Label: cat.Label, Entries: entries})
	}
	return rankings
}

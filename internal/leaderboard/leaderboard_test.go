package leaderboard_test

import (
	"testing"

	"github.com/dieleague/backend/internal/leaderboard"
	"github.com/dieleague/backend/internal/league"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPlayers() []league.Player {
	return []league.Player{
		{ID: 1, Name: "Ace", Rank: 1, Points: 30, TableHits: 4, Throws: 60, Catches: 10, Drops: 5, Fifas: 2},
		{ID: 2, Name: "Bo", Rank: 2, Points: 45, TableHits: 9, Throws: 50, Catches: 20, Drops: 1, Fifas: 0},
		{ID: 3, Name: "Cy", Rank: 3, Points: 45, TableHits: 1, Throws: 90, Catches: 8, Drops: 12, Fifas: 7},
	}
}

func rankingFor(t *testing.T, rankings []leaderboard.Ranking, key string) leaderboard.Ranking {
	t.Helper()
	for _, r := range rankings {
		if r.Key == key {
			return r
		}
	}
	t.Fatalf("no ranking for category %q", key)
	return leaderboard.Ranking{}
}

func TestRankingsCoversAllCategories(t *testing.T) {
	rankings := leaderboard.Rankings(testPlayers())
	require.Len(t, rankings, len(leaderboard.Categories))
	for i, cat := range leaderboard.Categories {
		assert.Equal(t, cat.Key, rankings[i].Key)
		assert.Len(t, rankings[i].Entries, 3)
	}
}

func TestRankingsDescendingWithStableTies(t *testing.T) {
	points := rankingFor(t, leaderboard.Rankings(testPlayers()), "points")

	// Bo and Cy tie on 45; Bo keeps the earlier slot because the input is
	// already in league-rank order and the sort is stable.
	require.Len(t, points.Entries, 3)
	assert.Equal(t, 1, points.Entries[0].Position)
	assert.Equal(t, "Bo", points.Entries[0].PlayerName)
	assert.Equal(t, "Cy", points.Entries[1].PlayerName)
	assert.Equal(t, "Ace", points.Entries[2].PlayerName)
	assert.Equal(t, "45", points.Entries[0].Value)
}

func TestDropsRankAscending(t *testing.T) {
	drops := rankingFor(t, leaderboard.Rankings(testPlayers()), "drops")

	// Fewest drops ranks first.
	assert.Equal(t, "Bo", drops.Entries[0].PlayerName)
	assert.Equal(t, "Ace", drops.Entries[1].PlayerName)
	assert.Equal(t, "Cy", drops.Entries[2].PlayerName)
}

func TestDerivedCategoryFormatting(t *testing.T) {
	rankings := leaderboard.Rankings(testPlayers())

	ppt := rankingFor(t, rankings, "points_per_throw")
	assert.Equal(t, "Bo", ppt.Entries[0].PlayerName)
	assert.Equal(t, "0.900", ppt.Entries[0].Value)

	catch := rankingFor(t, rankings, "catch_percentage")
	assert.Equal(t, "Bo", catch.Entries[0].PlayerName)
	assert.Equal(t, "95.2%", catch.Entries[0].Value)
	assert.Equal(t, "40.0%", catch.Entries[2].Value)
}

func TestRankingsEmptyLeague(t *testing.T) {
	rankings := leaderboard.Rankings(nil)
	require.Len(t, rankings, len(leaderboard.Categories))
	for _, r := range rankings {
		assert.Empty(t, r.Entries)
	}
}

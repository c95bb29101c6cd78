package schedule_test

import (
	"testing"

	"github.com/dieleague/backend/internal/league"
	"github.com/dieleague/backend/internal/schedule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testGames() []league.Game {
	return []league.Game{
		{ID: 1, TeamAID: 10, TeamBID: 20, Week: 4, Date: "2026-06-01"},
		{ID: 2, TeamAID: 30, TeamBID: 10, Week: 5, Date: "2026-06-08"},
		{ID: 3, TeamAID: 10, TeamBID: league.ByeOpponent, Week: 6, Date: "2026-06-15"},
	}
}

func TestResolveWeekScheduled(t *testing.T) {
	out := schedule.ResolveWeek(10, 4, testGames())
	assert.Equal(t, schedule.Scheduled, out.Kind)
	assert.True(t, out.Home)
	assert.Equal(t, 20, out.OpponentID)
	require.NotNil(t, out.Game)
	assert.Equal(t, 1, out.Game.ID)

	out = schedule.ResolveWeek(10, 5, testGames())
	assert.Equal(t, schedule.Scheduled, out.Kind)
	assert.False(t, out.Home)
	assert.Equal(t, 30, out.OpponentID)
}

func TestResolveWeekBye(t *testing.T) {
	out := schedule.ResolveWeek(10, 6, testGames())
	assert.Equal(t, schedule.Bye, out.Kind)
	assert.True(t, out.Home)
	require.NotNil(t, out.Game)
	assert.Equal(t, 3, out.Game.ID)
}

func TestResolveWeekNoGame(t *testing.T) {
	// Week 7 has nothing scheduled; there is no fallback to a nearby week.
	out := schedule.ResolveWeek(10, 7, testGames())
	assert.Equal(t, schedule.NoGame, out.Kind)
	assert.Nil(t, out.Game)

	// Team 20 only plays in week 4.
	out = schedule.ResolveWeek(20, 5, testGames())
	assert.Equal(t, schedule.NoGame, out.Kind)
}

func TestResolveWeekPreseason(t *testing.T) {
	out := schedule.ResolveWeek(10, league.Preseason, testGames())
	assert.Equal(t, schedule.NoGame, out.Kind)
}

func TestSortOrdersWeeksThenDates(t *testing.T) {
	games := []league.Game{
		{ID: 1, Week: 0, Date: "2026-07-01"},
		{ID: 2, Week: 3, Date: "2026-06-10"},
		{ID: 3, Week: 1, Date: "2026-05-20"},
		{ID: 4, Week: 3, Date: "2026-06-01"},
		{ID: 5, Week: 0, Date: "2026-04-01"},
	}
	schedule.Sort(games)

	order := make([]int, 0, len(games))
	for _, g := range games {
		order = append(order, g.ID)
	}
	// Numbered weeks ascending, dates breaking the tie inside week 3, and the
	// two week-less games last by date.
	assert.Equal(t, []int{3, 4, 2, 5, 1}, order)
}

package league_test

import (
	"database/sql"
	"testing"

	"github.com/dieleague/backend/internal/database"
	"github.com/dieleague/backend/internal/league"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestDB creates a temporary in-memory SQLite database for testing.
func setupTestDB(t *testing.T) (league.LeagueStore, *sql.DB, func()) {
	t.Helper()

	db, err := database.InitDB(":memory:", "", "")
	require.NoError(t, err)

	store := league.New(db)
	teardown := func() {
		db.Close()
	}
	return store, db, teardown
}

func seedRoster(t *testing.T, store league.LeagueStore) (league.Team, league.Team) {
	t.Helper()

	names := []string{"Ace", "Bo", "Cy", "Dee", "Ed", "Fay"}
	for i, name := range names {
		_, err := store.CreatePlayer(league.Player{Name: name, Rank: i + 1})
		require.NoError(t, err)
	}
	teamA, err := store.CreateTeam(league.Team{Name: "Table Kings", Player1ID: 1, Player2ID: 2, Player3ID: 3})
	require.NoError(t, err)
	teamB, err := store.CreateTeam(league.Team{Name: "Die Hards", Player1ID: 4, Player2ID: 5, Player3ID: 6})
	require.NoError(t, err)
	return teamA, teamB
}

func TestCreateAndListPlayers(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	p2, err := store.CreatePlayer(league.Player{Name: "Bo", Rank: 2})
	require.NoError(t, err)
	p1, err := store.CreatePlayer(league.Player{Name: "Ace", Rank: 1})
	require.NoError(t, err)

	assert.Equal(t, 1, p2.ID)
	assert.Equal(t, 2, p1.ID)

	players, err := store.ListPlayers()
	require.NoError(t, err)
	require.Len(t, players, 2)

	// Listing is ordered by league rank, not id.
	assert.Equal(t, "Ace", players[0].Name)
	assert.Equal(t, "Bo", players[1].Name)
}

func TestUpdateAndDeletePlayer(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	p, err := store.CreatePlayer(league.Player{Name: "Ace", Rank: 1})
	require.NoError(t, err)

	p.Points = 12
	p.Name = "Ace Jr"
	require.NoError(t, store.UpdatePlayer(p))

	got, err := store.GetPlayer(p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ace Jr", got.Name)
	assert.Equal(t, 12, got.Points)

	assert.Error(t, store.UpdatePlayer(league.Player{ID: 999, Name: "Ghost"}))

	require.NoError(t, store.DeletePlayer(p.ID))
	_, err = store.GetPlayer(p.ID)
	assert.Error(t, err)
}

func TestTeamCRUD(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	teamA, teamB := seedRoster(t, store)
	assert.Equal(t, 1, teamA.ID)
	assert.Equal(t, 2, teamB.ID)

	teams, err := store.ListTeams()
	require.NoError(t, err)
	assert.Len(t, teams, 2)

	teamA.Name = "New Kings"
	require.NoError(t, store.UpdateTeam(teamA))
	got, err := store.GetTeam(teamA.ID)
	require.NoError(t, err)
	assert.Equal(t, "New Kings", got.Name)

	_, err = store.GetTeam(999)
	assert.Error(t, err)
}

func TestGamesForTeam(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	teamA, teamB := seedRoster(t, store)

	_, err := store.CreateGame(league.Game{TeamAID: teamA.ID, TeamBID: teamB.ID, Week: 1})
	require.NoError(t, err)
	_, err = store.CreateGame(league.Game{TeamAID: teamB.ID, TeamBID: teamA.ID, Week: 2})
	require.NoError(t, err)
	_, err = store.CreateGame(league.Game{TeamAID: teamB.ID, TeamBID: league.ByeOpponent, Week: 3})
	require.NoError(t, err)

	games, err := store.GamesForTeam(teamA.ID)
	require.NoError(t, err)
	assert.Len(t, games, 2)

	games, err = store.GamesForTeam(teamB.ID)
	require.NoError(t, err)
	assert.Len(t, games, 3)
}

func TestCurrentWeek(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	// Defaults to week 1 before anything is set.
	week, err := store.CurrentWeek()
	require.NoError(t, err)
	assert.Equal(t, league.Week(1), week)

	require.NoError(t, store.SetCurrentWeek(5))
	week, err = store.CurrentWeek()
	require.NoError(t, err)
	assert.Equal(t, league.Week(5), week)

	require.NoError(t, store.SetCurrentWeek(league.Preseason))
	week, err = store.CurrentWeek()
	require.NoError(t, err)
	assert.Equal(t, league.Preseason, week)

	assert.Error(t, store.SetCurrentWeek(15))
	assert.Error(t, store.SetCurrentWeek(-1))
}

func applyTestMatch(t *testing.T, store league.LeagueStore, teamA, teamB league.Team, id string) {
	t.Helper()

	deltas := map[int]league.StatLine{
		1: {Points: 8, TableHits: 2, Throws: 17, Catches: 5, Drops: 1},
		4: {Points: 5, Throws: 15, Fifas: 1},
	}
	record := league.SubmissionRecord{
		ID: id, TeamAID: teamA.ID, TeamBID: teamB.ID, WinnerID: teamA.ID,
		NumGames: 2, PlayersUpdated: 2, SubmittedAt: 1700000000,
	}
	require.NoError(t, store.ApplyMatchResult(deltas, teamA.ID, teamB.ID, record))
}

func TestApplyMatchResult(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	teamA, teamB := seedRoster(t, store)
	applyTestMatch(t, store, teamA, teamB, "sub-1")

	p1, err := store.GetPlayer(1)
	require.NoError(t, err)
	assert.Equal(t, 8, p1.Points)
	assert.Equal(t, 2, p1.TableHits)
	assert.Equal(t, 17, p1.Throws)
	assert.Equal(t, 5, p1.Catches)
	assert.Equal(t, 1, p1.Drops)

	// Players not in the delta map stay untouched.
	p2, err := store.GetPlayer(2)
	require.NoError(t, err)
	assert.Equal(t, league.Player{ID: 2, Name: "Bo", Rank: 2}, *p2)

	winner, err := store.GetTeam(teamA.ID)
	require.NoError(t, err)
	loser, err := store.GetTeam(teamB.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, winner.Wins)
	assert.Equal(t, 0, winner.Losses)
	assert.Equal(t, 0, loser.Wins)
	assert.Equal(t, 1, loser.Losses)
	assert.Equal(t, 2, winner.Wins+winner.Losses+loser.Wins+loser.Losses)

	records, err := store.ListSubmissions()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "sub-1", records[0].ID)
}

func TestResubmissionDoubleCounts(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	teamA, teamB := seedRoster(t, store)
	applyTestMatch(t, store, teamA, teamB, "sub-1")
	applyTestMatch(t, store, teamA, teamB, "sub-2")

	// There is no submission dedup: the same match applied twice counts twice.
	p1, err := store.GetPlayer(1)
	require.NoError(t, err)
	assert.Equal(t, 16, p1.Points)
	assert.Equal(t, 34, p1.Throws)

	winner, err := store.GetTeam(teamA.ID)
	require.NoError(t, err)
	loser, err := store.GetTeam(teamB.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, winner.Wins)
	assert.Equal(t, 2, loser.Losses)
}

func TestApplyMatchResultRollsBackOnMissingPlayer(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	teamA, teamB := seedRoster(t, store)

	deltas := map[int]league.StatLine{
		1:   {Points: 8},
		999: {Points: 3},
	}
	record := league.SubmissionRecord{ID: "sub-bad", TeamAID: teamA.ID, TeamBID: teamB.ID, WinnerID: teamA.ID}
	err := store.ApplyMatchResult(deltas, teamA.ID, teamB.ID, record)
	require.Error(t, err)

	// The whole transaction rolled back; nothing was applied.
	p1, getErr := store.GetPlayer(1)
	require.NoError(t, getErr)
	assert.Equal(t, 0, p1.Points)

	winner, getErr := store.GetTeam(teamA.ID)
	require.NoError(t, getErr)
	assert.Equal(t, 0, winner.Wins)

	records, getErr := store.ListSubmissions()
	require.NoError(t, getErr)
	assert.Empty(t, records)
}

func TestClear(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	seedRoster(t, store)
	store.Clear()

	players, err := store.ListPlayers()
	require.NoError(t, err)
	assert.Empty(t, players)

	teams, err := store.ListTeams()
	require.NoError(t, err)
	assert.Empty(t, teams)
}

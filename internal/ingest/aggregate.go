package ingest

import "github.com/dieleague/backend/internal/league"

// Aggregate validates a submission against the current player and team sets
// and folds it into one summed counter delta per roster player. It is pure:
// the store is only touched by the caller, and a returned error guarantees
// nothing should be applied.
//
// Each roster player known to the store gets an entry, even an all-zero one,
// matching the submission report's players_updated count. Stat lines must
// reference a known roster player and carry no negative counters.
func Aggregate(sub MatchSubmission, players []league.Player, teamA, teamB league.Team) (map[int]league.StatLine, error) {
	if sub.WinnerID != teamA.ID && sub.WinnerID != teamB.ID {
		return nil, errf(InvalidWinner, "winner %d must be one of the participating teams %d and %d", sub.WinnerID, teamA.ID, teamB.ID)
	}
	if sub.NumGames < MinGames || sub.NumGames > MaxGames {
		return nil, errf(InvalidGameCount, "num_games %d outside [%d, %d]", sub.NumGames, MinGames, MaxGames)
	}
	if sub.NumGames != len(sub.Games) {
		return nil, errf(InvalidGameCount, "num_games %d does not match %d supplied games", sub.NumGames, len(sub.Games))
	}

	known := make(map[int]bool, len(players))
	for _, p := range players {
		known[p.ID] = true
	}

	deltas := make(map[int]league.StatLine)
	for _, team := range []league.Team{teamA, teamB} {
		for _, id := range team.PlayerIDs() {
			if known[id] {
				deltas[id] = league.StatLine{}
			}
		}
	}

	for i, game := range sub.Games {
		for _, line := range append(append([]PlayerLine{}, game.TeamAPlayers...), game.TeamBPlayers...) {
			if !known[line.PlayerID] {
				return nil, errf(UnknownPlayer, "game %d references unknown player %d", i+1, line.PlayerID)
			}
			delta, ok := deltas[line.PlayerID]
			if !ok {
				return nil, errf(UnknownPlayer, "game %d references player %d who is on neither roster", i+1, line.PlayerID)
			}
			if line.StatLine.Negative() {
				return nil, errf(InvalidStatValue, "game %d carries negative counters for player %d", i+1, line.PlayerID)
			}
			delta.Add(line.StatLine)
			deltas[line.PlayerID] = delta
		}
	}

	return deltas, nil
}

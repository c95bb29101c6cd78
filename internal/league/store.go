package league

import (
	"database/sql"
	"fmt"
	"strconv"

	"github.com/charmbracelet/log"
)

// New creates a new LeagueStore.
func New(db *sql.DB) LeagueStore {
	return &store{
		db: db,
	}
}

const playerColumns = "id, name, rank, points, table_hits, throws, catches, drops, fifas"

func (s *store) scanPlayer(scanner interface{ Scan(...any) error }) (*Player, error) {
	var p Player
	err := scanner.Scan(&p.ID, &p.Name, &p.Rank, &p.Points, &p.TableHits, &p.Throws, &p.Catches, &p.Drops, &p.Fifas)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ListPlayers returns all players sorted by league rank ascending
// (lower rank number = better).
func (s *store) ListPlayers() ([]Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query("SELECT " + playerColumns + " FROM players ORDER BY rank, id")
	if err != nil {
		log.Error("Failed to query players", "error", err)
		return nil, err
	}
	defer rows.Close()

	var players []Player
	for rows.Next() {
		p, err := s.scanPlayer(rows)
		if err != nil {
			log.Error("Failed to scan player row", "error", err)
			continue
		}
		players = append(players, *p)
	}
	return players, rows.Err()
}

func (s *store) GetPlayer(id int) (*Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRow("SELECT "+playerColumns+" FROM players WHERE id = ?", id)
	p, err := s.scanPlayer(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("player %d not found", id)
	}
	return p, err
}

// CreatePlayer inserts a player, assigning max(id)+1 when no id is provided.
func (s *store) CreatePlayer(p Player) (Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p.ID == 0 {
		if err := s.db.QueryRow("SELECT COALESCE(MAX(id), 0) + 1 FROM players").Scan(&p.ID); err != nil {
			return Player{}, err
		}
	}
	_, err := s.db.Exec(
		"INSERT INTO players ("+playerColumns+") VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)",
		p.ID, p.Name, p.Rank, p.Points, p.TableHits, p.Throws, p.Catches, p.Drops, p.Fifas,
	)
	if err != nil {
		log.Error("Failed to add player", "error", err, "playerID", p.ID)
		return Player{}, err
	}
	log.Info("Added new player", "playerID", p.ID, "name", p.Name, "rank", p.Rank)
	return p, nil
}

func (s *store) UpdatePlayer(p Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec(
		"UPDATE players SET name = ?, rank = ?, points = ?, table_hits = ?, throws = ?, catches = ?, drops = ?, fifas = ? WHERE id = ?",
		p.Name, p.Rank, p.Points, p.TableHits, p.Throws, p.Catches, p.Drops, p.Fifas, p.ID,
	)
	if err != nil {
		return err
	}
	return requireRow(res, "player", p.ID)
}

func (s *store) DeletePlayer(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec("DELETE FROM players WHERE id = ?", id)
	return err
}

const teamColumns = "id, name, player1_id, player2_id, player3_id, wins, losses"

func (s *store) scanTeam(scanner interface{ Scan(...any) error }) (*Team, error) {
	var t Team
	err := scanner.Scan(&t.ID, &t.Name, &t.Player1ID, &t.Player2ID, &t.Player3ID, &t.Wins, &t.Losses)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *store) ListTeams() ([]Team, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query("SELECT " + teamColumns + " FROM teams ORDER BY id")
	if err != nil {
		log.Error("Failed to query teams", "error", err)
		return nil, err
	}
	defer rows.Close()

	var teams []Team
	for rows.Next() {
		t, err := s.scanTeam(rows)
		if err != nil {
			log.Error("Failed to scan team row", "error", err)
			continue
		}
		teams = append(teams, *t)
	}
	return teams, rows.Err()
}

func (s *store) GetTeam(id int) (*Team, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.getTeamLocked(id)
}

func (s *store) getTeamLocked(id int) (*Team, error) {
	row := s.db.QueryRow("SELECT "+teamColumns+" FROM teams WHERE id = ?", id)
	t, err := s.scanTeam(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("team %d not found", id)
	}
	return t, err
}

func (s *store) CreateTeam(t Team) (Team, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t.ID == 0 {
		if err := s.db.QueryRow("SELECT COALESCE(MAX(id), 0) + 1 FROM teams").Scan(&t.ID); err != nil {
			return Team{}, err
		}
	}
	_, err := s.db.Exec(
		"INSERT INTO teams ("+teamColumns+") VALUES (?, ?, ?, ?, ?, ?, ?)",
		t.ID, t.Name, t.Player1ID, t.Player2ID, t.Player3ID, t.Wins, t.Losses,
	)
	if err != nil {
		log.Error("Failed to add team", "error", err, "teamID", t.ID)
		return Team{}, err
	}
	log.Info("Added new team", "teamID", t.ID, "name", t.Name)
	return t, nil
}

func (s *store) UpdateTeam(t Team) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec(
		"UPDATE teams SET name = ?, player1_id = ?, player2_id = ?, player3_id = ?, wins = ?, losses = ? WHERE id = ?",
		t.Name, t.Player1ID, t.Player2ID, t.Player3ID, t.Wins, t.Losses, t.ID,
	)
	if err != nil {
		return err
	}
	return requireRow(res, "team", t.ID)
}

func (s *store) DeleteTeam(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec("DELETE FROM teams WHERE id = ?", id)
	return err
}

const gameColumns = "id, team_a_id, team_b_id, score_a, score_b, date, week"

func (s *store) scanGame(scanner interface{ Scan(...any) error }) (*Game, error) {
	var g Game
	err := scanner.Scan(&g.ID, &g.TeamAID, &g.TeamBID, &g.ScoreA, &g.ScoreB, &g.Date, &g.Week)
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (s *store) ListGames() ([]Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.queryGames("SELECT " + gameColumns + " FROM games ORDER BY id")
}

// GamesForTeam returns every game where the team appears on either side.
func (s *store) GamesForTeam(teamID int) ([]Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.queryGames(
		"SELECT "+gameColumns+" FROM games WHERE team_a_id = ? OR team_b_id = ? ORDER BY id",
		teamID, teamID,
	)
}

func (s *store) queryGames(query string, args ...any) ([]Game, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		log.Error("Failed to query games", "error", err)
		return nil, err
	}
	defer rows.Close()

	var games []Game
	for rows.Next() {
		g, err := s.scanGame(rows)
		if err != nil {
			log.Error("Failed to scan game row", "error", err)
			continue
		}
		games = append(games, *g)
	}
	return games, rows.Err()
}

func (s *store) GetGame(id int) (*Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRow("SELECT "+gameColumns+" FROM games WHERE id = ?", id)
	g, err := s.scanGame(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("game %d not found", id)
	}
	return g, err
}

func (s *store) CreateGame(g Game) (Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if g.ID == 0 {
		if err := s.db.QueryRow("SELECT COALESCE(MAX(id), 0) + 1 FROM games").Scan(&g.ID); err != nil {
			return Game{}, err
		}
	}
	_, err := s.db.Exec(
		"INSERT INTO games ("+gameColumns+") VALUES (?, ?, ?, ?, ?, ?, ?)",
		g.ID, g.TeamAID, g.TeamBID, g.ScoreA, g.ScoreB, g.Date, g.Week,
	)
	if err != nil {
		log.Error("Failed to add game", "error", err, "gameID", g.ID)
		return Game{}, err
	}
	return g, nil
}

func (s *store) UpdateGame(g Game) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec(
		"UPDATE games SET team_a_id = ?, team_b_id = ?, score_a = ?, score_b = ?, date = ?, week = ? WHERE id = ?",
		g.TeamAID, g.TeamBID, g.ScoreA, g.ScoreB, g.Date, g.Week, g.ID,
	)
	if err != nil {
		return err
	}
	return requireRow(res, "game", g.ID)
}

func (s *store) DeleteGame(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec("DELETE FROM games WHERE id = ?", id)
	return err
}

const currentWeekKey = "current_week"

// CurrentWeek returns the league's current week, defaulting to week 1 when
// none has been set yet.
func (s *store) CurrentWeek() (Week, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var value string
	err := s.db.QueryRow("SELECT value FROM settings WHERE key = ?", currentWeekKey).Scan(&value)
	if err == sql.ErrNoRows {
		return 1, nil
	}
	if err != nil {
		return 0, err
	}
	if value == "preseason" {
		return Preseason, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("corrupt current week value %q: %w", value, err)
	}
	return Week(n), nil
}

func (s *store) SetCurrentWeek(w Week) error {
	if !w.Valid() {
		return fmt.Errorf("week must be preseason or between 1 and %d", MaxWeek)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	value := strconv.Itoa(int(w))
	if w == Preseason {
		value = "preseason"
	}
	_, err := s.db.Exec(`
		INSERT INTO settings (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, currentWeekKey, value)
	return err
}

// ApplyMatchResult commits all effects of one accepted match submission in a
// single transaction. Counters are incremented, never recomputed from game
// history, so replaying a submission counts twice.
func (s *store) ApplyMatchResult(deltas map[int]StatLine, winnerID, loserID int, record SubmissionRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}

	stmt, err := tx.Prepare(`
		UPDATE players SET
			points = points + ?,
			table_hits = table_hits + ?,
			throws = throws + ?,
			catches = catches + ?,
			drops = drops + ?,
			fifas = fifas + ?
		WHERE id = ?
	`)
	if err != nil {
		tx.Rollback()
		return err
	}
	defer stmt.Close()

	for playerID, delta := range deltas {
		res, err := stmt.Exec(delta.Points, delta.TableHits, delta.Throws, delta.Catches, delta.Drops, delta.Fifas, playerID)
		if err != nil {
			tx.Rollback()
			return err
		}
		if err := requireRow(res, "player", playerID); err != nil {
			tx.Rollback()
			return err
		}
	}

	if _, err := tx.Exec("UPDATE teams SET wins = wins + 1 WHERE id = ?", winnerID); err != nil {
		tx.Rollback()
		return err
	}
	if _, err := tx.Exec("UPDATE teams SET losses = losses + 1 WHERE id = ?", loserID); err != nil {
		tx.Rollback()
		return err
	}

	_, err = tx.Exec(`
		INSERT INTO match_submissions (id, team_a_id, team_b_id, winner_id, num_games, players_updated, submitted_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, record.ID, record.TeamAID, record.TeamBID, record.WinnerID, record.NumGames, record.PlayersUpdated, record.SubmittedAt)
	if err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	log.Info("Applied match result", "submissionID", record.ID, "winner", winnerID, "loser", loserID, "players", len(deltas))
	return nil
}

func (s *store) ListSubmissions() ([]SubmissionRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT id, team_a_id, team_b_id, winner_id, num_games, players_updated, submitted_at
		FROM match_submissions ORDER BY submitted_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []SubmissionRecord
	for rows.Next() {
		var r SubmissionRecord
		if err := rows.Scan(&r.ID, &r.TeamAID, &r.TeamBID, &r.WinnerID, &r.NumGames, &r.PlayersUpdated, &r.SubmittedAt); err != nil {
			log.Error("Failed to scan submission row", "error", err)
			continue
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

func (s *store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		log.Error("Failed to begin transaction for clearing store", "error", err)
		return
	}
	for _, table := range []string{"players", "teams", "games", "settings", "match_submissions"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			log.Error("Failed to clear table", "table", table, "error", err)
			tx.Rollback()
			return
		}
	}
	if err := tx.Commit(); err != nil {
		log.Error("Failed to commit transaction for clearing store", "error", err)
	}
}

func requireRow(res sql.Result, kind string, id int) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%s %d not found", kind, id)
	}
	return nil
}

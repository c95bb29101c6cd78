package database

import (
	"database/sql"
	"fmt"

	"github.com/charmbracelet/log"
	_ "github.com/mattn/go-sqlite3"
	_ "github.com/tursodatabase/libsql-client-go/libsql"
)

// InitDB initializes the database and ensures the schema is up to date.
// For local-only databases, dbPath is the filename. When primaryUrl is set,
// the remote libsql primary is used instead.
func InitDB(dbPath string, primaryUrl string, authToken string) (*sql.DB, error) {
	if primaryUrl == "" {
		log.Info("Initializing local-only SQLite database", "path", dbPath)
		db, err := sql.Open("libsql", "file:"+dbPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open local database: %w", err)
		}
		if err = createTables(db); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to create tables: %w", err)
		}
		return db, nil
	}
	log.Info("Initializing remote libsql database", "url", primaryUrl)
	db, err := sql.Open("libsql", primaryUrl+"?authToken="+authToken)
	if err != nil {
		return nil, fmt.Errorf("failed to open db %s: %w", primaryUrl, err)
	}
	if err = createTables(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}
	return db, nil
}

func createTables(db *sql.DB) error {
	// Foreign key support is not enabled by default in SQLite
	_, err := db.Exec("PRAGMA foreign_keys = ON;")
	if err != nil {
		log.Error("Error enabling foreign keys:", "error", err)
		return err
	}

	createPlayersTable := `
	CREATE TABLE IF NOT EXISTS players (
		id INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		rank INTEGER NOT NULL DEFAULT 0,
		points INTEGER NOT NULL DEFAULT 0,
		table_hits INTEGER NOT NULL DEFAULT 0,
		throws INTEGER NOT NULL DEFAULT 0,
		catches INTEGER NOT NULL DEFAULT 0,
		drops INTEGER NOT NULL DEFAULT 0,
		fifas INTEGER NOT NULL DEFAULT 0
	);`

	createTeamsTable := `
	CREATE TABLE IF NOT EXISTS teams (
		id INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		player1_id INTEGER NOT NULL,
		player2_id INTEGER NOT NULL,
		player3_id INTEGER NOT NULL,
		wins INTEGER NOT NULL DEFAULT 0,
		losses INTEGER NOT NULL DEFAULT 0
	);`

	// team_b_id 0 is the bye sentinel, so game team columns carry no FK.
	createGamesTable := `
	CREATE TABLE IF NOT EXISTS games (
		id INTEGER PRIMARY KEY,
		team_a_id INTEGER NOT NULL,
		team_b_id INTEGER NOT NULL,
		score_a INTEGER NOT NULL DEFAULT 0,
		score_b INTEGER NOT NULL DEFAULT 0,
		date TEXT NOT NULL DEFAULT '',
		week INTEGER NOT NULL DEFAULT 0
	);`

	createSettingsTable := `
	CREATE TABLE IF NOT EXISTS settings (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);`

	createSubmissionsTable := `
	CREATE TABLE IF NOT EXISTS match_submissions (
		id TEXT PRIMARY KEY,
		team_a_id INTEGER NOT NULL,
		team_b_id INTEGER NOT NULL,
		winner_id INTEGER NOT NULL,
		num_games INTEGER NOT NULL,
		players_updated INTEGER NOT NULL,
		submitted_at INTEGER NOT NULL
	);`

	for _, stmt := range []string{
		createPlayersTable,
		createTeamsTable,
		createGamesTable,
		createSettingsTable,
		createSubmissionsTable,
	} {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	log.Info("Database initialized successfully")
	return nil
}

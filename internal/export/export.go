// Package export builds the downloadable backup archive of all league data.
package export

import (
	"archive/zip"
	"encoding/json"
	"fmt"
	"io"

	"github.com/dieleague/backend/internal/league"
)

// Filename is the suggested name for the downloaded archive.
const Filename = "die_league_backup.zip"

// Write serializes the full league state as a zip of four JSON files:
// players.json, teams.json, games.json and current_week.json.
func Write(w io.Writer, store league.LeagueStore) error {
	players, err := store.ListPlayers()
	if err != nil {
		return fmt.Errorf("export players: %w", err)
	}
	teams, err := store.ListTeams()
	if err != nil {
		return fmt.Errorf("export teams: %w", err)
	}
	games, err := store.ListGames()
	if err != nil {
		return fmt.Errorf("export games: %w", err)
	}
	week, err := store.CurrentWeek()
	if err != nil {
		return fmt.Errorf("export current week: %w", err)
	}

	zw := zip.NewWriter(w)
	files := []struct {
		name string
		data any
	}{
		{"players.json", players},
		{"teams.json", teams},
		{"games.json", games},
		{"current_week.json", map[string]league.Week{"week": week}},
	}
	for _, f := range files {
		entry, err := zw.Create(f.name)
		if err != nil {
			return err
		}
		enc := json.NewEncoder(entry)
		enc.SetIndent("", "  ")
		if err := enc.Encode(f.data); err != nil {
			return fmt.Errorf("encode %s: %w", f.name, err)
		}
	}
	return zw.Close()
}

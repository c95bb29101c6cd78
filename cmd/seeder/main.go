package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/dieleague/backend/internal/database"
	"github.com/dieleague/backend/internal/league"
	"github.com/joho/godotenv"
)

// Simplified config loading for the script
func loadConfig() map[string]string {
	err := godotenv.Load()
	if err != nil {
		log.Warn("No .env file found, reading from environment variables")
	}

	config := map[string]string{
		"DB_NAME":           "league.db",
		"TURSO_PRIMARY_URL": "",
		"TURSO_AUTH_TOKEN":  "",
	}
	for key := range config {
		if value, ok := os.LookupEnv(key); ok {
			config[key] = value
		}
	}
	return config
}

var playerNames = []string{
	"Sam Porter", "Alex Reyes", "Jordan Lake", "Casey Bloom", "Riley Stone", "Morgan Fry",
	"Quinn Harper", "Drew Callas", "Jamie Voss", "Taylor Finch", "Rowan Pike", "Avery Hale",
}

var teamNames = []string{"Table Kings", "Die Hards", "Snake Eyes", "Full Send"}

func main() {
	log.Info("Starting database seeder...")
	cfg := loadConfig()

	db, err := database.InitDB(cfg["DB_NAME"], cfg["TURSO_PRIMARY_URL"], cfg["TURSO_AUTH_TOKEN"])
	if err != nil {
		log.Fatalf("Failed to open database: %s", err)
	}
	defer db.Close()

	store := league.New(db)
	startTime := time.Now()

	for i, name := range playerNames {
		p, err := store.CreatePlayer(league.Player{Name: name, Rank: i + 1})
		if err != nil {
			log.Fatalf("Failed to insert player %s: %s", name, err)
		}
		log.Info("Created player", "id", p.ID, "name", p.Name)
	}

	teams := make([]league.Team, 0, len(teamNames))
	for i, name := range teamNames {
		t, err := store.CreateTeam(league.Team{
			Name:      name,
			Player1ID: i*3 + 1,
			Player2ID: i*3 + 2,
			Player3ID: i*3 + 3,
		})
		if err != nil {
			log.Fatalf("Failed to insert team %s: %s", name, err)
		}
		teams = append(teams, t)
		log.Info("Created team", "id", t.ID, "name", t.Name)
	}

	// A round-robin style schedule over the regular season. Each week two
	// teams play each other and the rest draw a bye.
	opening := time.Date(2026, time.May, 18, 0, 0, 0, 0, time.UTC)
	gamesCreated := 0
	for week := 1; week <= int(league.MaxWeek); week++ {
		date := opening.AddDate(0, 0, (week-1)*7).Format("2006-01-02")
		shuffled := make([]league.Team, len(teams))
		copy(shuffled, teams)
		rand.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

		for i := 0; i+1 < len(shuffled); i += 2 {
			_, err := store.CreateGame(league.Game{
				TeamAID: shuffled[i].ID,
				TeamBID: shuffled[i+1].ID,
				Week:    week,
				Date:    date,
			})
			if err != nil {
				log.Fatalf("Failed to insert game for week %d: %s", week, err)
			}
			gamesCreated++
		}
		if len(shuffled)%2 == 1 {
			_, err := store.CreateGame(league.Game{
				TeamAID: shuffled[len(shuffled)-1].ID,
				TeamBID: league.ByeOpponent,
				Week:    week,
				Date:    date,
			})
			if err != nil {
				log.Fatalf("Failed to insert bye for week %d: %s", week, err)
			}
			gamesCreated++
		}
	}

	if err := store.SetCurrentWeek(league.Preseason); err != nil {
		log.Fatalf("Failed to set current week: %s", err)
	}

	fmt.Println()
	log.Info("Seeding complete.",
		"players", len(playerNames),
		"teams", len(teams),
		"games", gamesCreated,
		"duration", time.Since(startTime),
	)
}

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/dieleague/backend/internal/export"
	"github.com/dieleague/backend/internal/ingest"
	"github.com/dieleague/backend/internal/leaderboard"
	"github.com/dieleague/backend/internal/league"
	"github.com/dieleague/backend/internal/schedule"
)

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("Failed to write response", "error", err)
	}
}

func respondError(w http.ResponseWriter, status int, detail string) {
	respondJSON(w, status, map[string]string{"detail": detail})
}

// pathID parses the {id} path segment.
func pathID(r *http.Request) (int, error) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", r.PathValue("id"))
	}
	return id, nil
}

func (s *Server) HomeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"message": "Die League API running"})
	}
}

func (s *Server) HealthCheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Debug("Received health check request")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK!")
	}
}

func (s *Server) LoginHandler() http.HandlerFunc {
	type request struct {
		Password string `json:"password"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		var req request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, "invalid JSON")
			return
		}
		token, err := s.Auth.Login(req.Password)
		if err != nil {
			log.Warn("Failed commissioner login attempt")
			respondError(w, http.StatusUnauthorized, "invalid credentials")
			return
		}
		respondJSON(w, http.StatusOK, map[string]string{"token": token})
	}
}

func (s *Server) ListPlayersHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		players, err := s.Store.ListPlayers()
		if err != nil {
			log.Error("Failed to get players from store", "error", err)
			respondError(w, http.StatusInternalServerError, "failed to get players")
			return
		}
		if players == nil {
			players = []league.Player{}
		}
		respondJSON(w, http.StatusOK, players)
	}
}

func (s *Server) CreatePlayerHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var p league.Player
		if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
			respondError(w, http.StatusBadRequest, "invalid JSON")
			return
		}
		created, err := s.Store.CreatePlayer(p)
		if err != nil {
			respondError(w, http.StatusInternalServerError, "failed to create player")
			return
		}
		respondJSON(w, http.StatusOK, created)
	}
}

func (s *Server) UpdatePlayerHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		var p league.Player
		if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
			respondError(w, http.StatusBadRequest, "invalid JSON")
			return
		}
		p.ID = id
		if err := s.Store.UpdatePlayer(p); err != nil {
			respondError(w, http.StatusNotFound, err.Error())
			return
		}
		respondJSON(w, http.StatusOK, p)
	}
}

func (s *Server) DeletePlayerHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		if err := s.Store.DeletePlayer(id); err != nil {
			respondError(w, http.StatusInternalServerError, "failed to delete player")
			return
		}
		respondJSON(w, http.StatusOK, map[string]string{"message": "Player deleted"})
	}
}

func (s *Server) ListTeamsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		teams, err := s.Store.ListTeams()
		if err != nil {
			log.Error("Failed to get teams from store", "error", err)
			respondError(w, http.StatusInternalServerError, "failed to get teams")
			return
		}
		if teams == nil {
			teams = []league.Team{}
		}
		respondJSON(w, http.StatusOK, teams)
	}
}

func (s *Server) CreateTeamHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var t league.Team
		if err := json.NewDecoder(r.Body).Decode(&t); err != nil {
			respondError(w, http.StatusBadRequest, "invalid JSON")
			return
		}
		created, err := s.Store.CreateTeam(t)
		if err != nil {
			respondError(w, http.StatusInternalServerError, "failed to create team")
			return
		}
		respondJSON(w, http.StatusOK, created)
	}
}

func (s *Server) UpdateTeamHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		var t league.Team
		if err := json.NewDecoder(r.Body).Decode(&t); err != nil {
			respondError(w, http.StatusBadRequest, "invalid JSON")
			return
		}
		t.ID = id
		if err := s.Store.UpdateTeam(t); err != nil {
			respondError(w, http.StatusNotFound, err.Error())
			return
		}
		respondJSON(w, http.StatusOK, t)
	}
}

func (s *Server) DeleteTeamHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		if err := s.Store.DeleteTeam(id); err != nil {
			respondError(w, http.StatusInternalServerError, "failed to delete team")
			return
		}
		respondJSON(w, http.StatusOK, map[string]string{"message": "Team deleted"})
	}
}

// TeamScheduleHandler returns a team's full schedule, ordered by week with
// week-less games last.
func (s *Server) TeamScheduleHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		games, err := s.Store.GamesForTeam(id)
		if err != nil {
			respondError(w, http.StatusInternalServerError, "failed to get schedule")
			return
		}
		schedule.Sort(games)
		if games == nil {
			games = []league.Game{}
		}
		respondJSON(w, http.StatusOK, games)
	}
}

// TeamThisWeekHandler resolves a team's game for the league's current week:
// no game, a bye, or a home/away matchup with the opponent's name.
func (s *Server) TeamThisWeekHandler() http.HandlerFunc {
	type response struct {
		Week         league.Week          `json:"week"`
		Kind         schedule.OutcomeKind `json:"kind"`
		Home         bool                 `json:"home,omitempty"`
		OpponentID   int                  `json:"opponent_id,omitempty"`
		OpponentName string               `json:"opponent_name,omitempty"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		if _, err := s.Store.GetTeam(id); err != nil {
			respondError(w, http.StatusNotFound, err.Error())
			return
		}
		week, err := s.Store.CurrentWeek()
		if err != nil {
			respondError(w, http.StatusInternalServerError, "failed to get current week")
			return
		}
		games, err := s.Store.GamesForTeam(id)
		if err != nil {
			respondError(w, http.StatusInternalServerError, "failed to get games")
			return
		}

		outcome := schedule.ResolveWeek(id, week, games)
		resp := response{Week: week, Kind: outcome.Kind, Home: outcome.Home, OpponentID: outcome.OpponentID}
		if outcome.Kind == schedule.Scheduled {
			opponent, err := s.Store.GetTeam(outcome.OpponentID)
			if err == nil {
				resp.OpponentName = opponent.Name
			} else {
				resp.OpponentName = fmt.Sprintf("Team %d", outcome.OpponentID)
			}
		}
		respondJSON(w, http.StatusOK, resp)
	}
}

func (s *Server) ListGamesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		games, err := s.Store.ListGames()
		if err != nil {
			log.Error("Failed to get games from store", "error", err)
			respondError(w, http.StatusInternalServerError, "failed to get games")
			return
		}
		if games == nil {
			games = []league.Game{}
		}
		respondJSON(w, http.StatusOK, games)
	}
}

func (s *Server) CreateGameHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var g league.Game
		if err := json.NewDecoder(r.Body).Decode(&g); err != nil {
			respondError(w, http.StatusBadRequest, "invalid JSON")
			return
		}
		if g.Week != 0 && (g.Week < 1 || g.Week > int(league.MaxWeek)) {
			respondError(w, http.StatusBadRequest, fmt.Sprintf("week must be between 1 and %d", league.MaxWeek))
			return
		}
		created, err := s.Store.CreateGame(g)
		if err != nil {
			respondError(w, http.StatusInternalServerError, "failed to create game")
			return
		}
		respondJSON(w, http.StatusOK, created)
	}
}

func (s *Server) UpdateGameHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		var g league.Game
		if err := json.NewDecoder(r.Body).Decode(&g); err != nil {
			respondError(w, http.StatusBadRequest, "invalid JSON")
			return
		}
		g.ID = id
		if err := s.Store.UpdateGame(g); err != nil {
			respondError(w, http.StatusNotFound, err.Error())
			return
		}
		respondJSON(w, http.StatusOK, g)
	}
}

func (s *Server) DeleteGameHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		if err := s.Store.DeleteGame(id); err != nil {
			respondError(w, http.StatusInternalServerError, "failed to delete game")
			return
		}
		respondJSON(w, http.StatusOK, map[string]string{"message": "Game deleted"})
	}
}

// SubmitMatchHandler is the entry point for match-result ingestion.
func (s *Server) SubmitMatchHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var sub ingest.MatchSubmission
		if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
			respondError(w, http.StatusBadRequest, "invalid JSON")
			return
		}
		result, err := s.Ingester.Submit(sub)
		if err != nil {
			var ingestErr *ingest.Error
			if errors.As(err, &ingestErr) {
				status := http.StatusBadRequest
				if ingestErr.NotFound() {
					status = http.StatusNotFound
				}
				respondError(w, status, ingestErr.Detail)
				return
			}
			log.Error("Failed to apply match submission", "error", err)
			respondError(w, http.StatusInternalServerError, "failed to submit match")
			return
		}
		respondJSON(w, http.StatusOK, result)
	}
}

func (s *Server) ListSubmissionsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		records, err := s.Store.ListSubmissions()
		if err != nil {
			respondError(w, http.StatusInternalServerError, "failed to get submissions")
			return
		}
		if records == nil {
			records = []league.SubmissionRecord{}
		}
		respondJSON(w, http.StatusOK, records)
	}
}

// LeaderboardHandler serves all eight category rankings. Players enter the
// ranker in league-rank order, which is the tie-break.
func (s *Server) LeaderboardHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.Metrics.IncLeaderboardRequests()
		players, err := s.Store.ListPlayers()
		if err != nil {
			log.Error("Failed to get players from store", "error", err)
			respondError(w, http.StatusInternalServerError, "failed to get players")
			return
		}
		respondJSON(w, http.StatusOK, leaderboard.Rankings(players))
	}
}

// StandingsHandler serves teams ordered by wins descending, losses ascending.
func (s *Server) StandingsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		teams, err := s.Store.ListTeams()
		if err != nil {
			respondError(w, http.StatusInternalServerError, "failed to get teams")
			return
		}
		sort.SliceStable(teams, func(i, j int) bool {
			if teams[i].Wins != teams[j].Wins {
				return teams[i].Wins > teams[j].Wins
			}
			return teams[i].Losses < teams[j].Losses
		})
		if teams == nil {
			teams = []league.Team{}
		}
		respondJSON(w, http.StatusOK, teams)
	}
}

func (s *Server) GetCurrentWeekHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		week, err := s.Store.CurrentWeek()
		if err != nil {
			respondError(w, http.StatusInternalServerError, "failed to get current week")
			return
		}
		respondJSON(w, http.StatusOK, map[string]league.Week{"week": week})
	}
}

func (s *Server) SetCurrentWeekHandler() http.HandlerFunc {
	type request struct {
		Week league.Week `json:"week"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		var req request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, fmt.Sprintf("week must be preseason or between 1 and %d", league.MaxWeek))
			return
		}
		if err := s.Store.SetCurrentWeek(req.Week); err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		log.Info("Current week updated", "week", req.Week)
		respondJSON(w, http.StatusOK, map[string]league.Week{"week": req.Week})
	}
}

// ExportDataHandler streams a zip backup of all league data.
func (s *Server) ExportDataHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.Metrics.IncExportRuns()
		w.Header().Set("Content-Type", "application/zip")
		w.Header().Set("Content-Disposition", "attachment; filename="+export.Filename)
		if err := export.Write(w, s.Store); err != nil {
			log.Error("Failed to write export archive", "error", err)
		}
	}
}

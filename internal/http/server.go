package http

import (
	"net/http"

	"github.com/dieleague/backend/internal/auth"
	"github.com/dieleague/backend/internal/config"
	"github.com/dieleague/backend/internal/ingest"
	"github.com/dieleague/backend/internal/league"
	"github.com/dieleague/backend/internal/metrics"
)

func NewServer(store league.LeagueStore, ingester *ingest.Ingester, metricsSvc metrics.Metrics, metricsHandler http.Handler, authSvc *auth.Service, cfg config.Config) *Server {
	server := &Server{
		Store:          store,
		Ingester:       ingester,
		Metrics:        metricsSvc,
		MetricsHandler: metricsHandler,
		Auth:           authSvc,
		Cfg:            cfg,
		Router:         http.NewServeMux(),
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	// Reads are public; every mutating route goes through the commissioner
	// token check.
	public := func(h http.Handler) http.Handler { return Chain(h, paramsMiddleware) }
	commissioner := func(h http.Handler) http.Handler {
		return Chain(h, paramsMiddleware, s.commissionerMiddleware)
	}

	s.Router.Handle("/metrics", s.MetricsHandler)
	s.Router.Handle("GET /{$}", public(s.HomeHandler()))
	s.Router.Handle("GET /health", public(s.HealthCheckHandler()))
	s.Router.Handle("POST /login", public(s.LoginHandler()))

	s.Router.Handle("GET /players", public(s.ListPlayersHandler()))
	s.Router.Handle("POST /players", commissioner(s.CreatePlayerHandler()))
	s.Router.Handle("PUT /players/{id}", commissioner(s.UpdatePlayerHandler()))
	s.Router.Handle("DELETE /players/{id}", commissioner(s.DeletePlayerHandler()))

	s.Router.Handle("GET /teams", public(s.ListTeamsHandler()))
	s.Router.Handle("POST /teams", commissioner(s.CreateTeamHandler()))
	s.Router.Handle("PUT /teams/{id}", commissioner(s.UpdateTeamHandler()))
	s.Router.Handle("DELETE /teams/{id}", commissioner(s.DeleteTeamHandler()))
	s.Router.Handle("GET /teams/{id}/schedule", public(s.TeamScheduleHandler()))
	s.Router.Handle("GET /teams/{id}/this-week", public(s.TeamThisWeekHandler()))

	s.Router.Handle("GET /games", public(s.ListGamesHandler()))
	s.Router.Handle("POST /games", commissioner(s.CreateGameHandler()))
	s.Router.Handle("PUT /games/{id}", commissioner(s.UpdateGameHandler()))
	s.Router.Handle("DELETE /games/{id}", commissioner(s.DeleteGameHandler()))

	s.Router.Handle("POST /matches", commissioner(s.SubmitMatchHandler()))
	s.Router.Handle("GET /submissions", commissioner(s.ListSubmissionsHandler()))

	s.Router.Handle("GET /leaderboard", public(s.LeaderboardHandler()))
	s.Router.Handle("GET /standings", public(s.StandingsHandler()))

	s.Router.Handle("GET /current-week", public(s.GetCurrentWeekHandler()))
	s.Router.Handle("PUT /current-week", commissioner(s.SetCurrentWeekHandler()))

	s.Router.Handle("GET /export-data", public(s.ExportDataHandler()))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}

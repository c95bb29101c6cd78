package http

import (
	"net/http"

	"github.com/dieleague/backend/internal/auth"
	"github.com/dieleague/backend/internal/config"
	"github.com/dieleague/backend/internal/ingest"
	"github.com/dieleague/backend/internal/league"
	"github.com/dieleague/backend/internal/metrics"
)

type Server struct {
	Store          league.LeagueStore
	Ingester       *ingest.Ingester
	Metrics        metrics.Metrics
	MetricsHandler http.Handler
	Auth           *auth.Service
	Cfg            config.Config
	Router         *http.ServeMux
}

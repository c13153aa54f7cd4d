package api

import (
	"context"
	"net/http"
	"time"

	"github.com/limbo/salatchecker/pkg/httputil"
	"go.uber.org/zap"
)

const healthPingTimeout = 2 * time.Second

type HealthResponse struct {
	Status      string `json:"status"`
	Message     string `json:"message"`
	Timestamp   string `json:"timestamp"`
	Port        int    `json:"port"`
	Environment string `json:"environment"`
	Storage     string `json:"storage"`
	Database    string `json:"database"`
}

// Health stays 200 while the process is alive; the database field shows the store state.
func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	database := "down"
	if s.storage != nil {
		ctx, cancel := context.WithTimeout(r.Context(), healthPingTimeout)
		defer cancel()
		if err := s.storage.Ping(ctx); err != nil {
			GetLoggerFromCtx(r.Context()).Warn("health: storage ping failed", zap.Error(err))
		} else {
			database = "up"
		}
	}
	httputil.WriteJSONResponse(w, http.StatusOK, HealthResponse{
		Status:      "ok",
		Message:     "SalatChecker API is running",
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
		Port:        s.port,
		Environment: s.environment,
		Storage:     s.storageDriver,
		Database:    database,
	})
}

func (s *Server) NotFound(w http.ResponseWriter, r *http.Request) {
	httputil.WriteErrorResponse(w, http.StatusNotFound, "Route not found", nil)
}

func (s *Server) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	httputil.WriteErrorResponse(w, http.StatusMethodNotAllowed, "method not allowed", nil)
}

package httpapi

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/hamed0406/sharewatch/internal/config"
	"github.com/hamed0406/sharewatch/internal/domain"
	apimw "github.com/hamed0406/sharewatch/internal/httpapi/middleware"
)

// Monitor is the orchestrator surface the API needs: read and replace the
// target set, and trigger a cycle on demand.
type Monitor interface {
	Targets() domain.TargetSet
	SetTargets(domain.TargetSet)
	RunCycle(ctx context.Context) domain.Snapshot
}

// SnapshotStore is the published-snapshot surface the API needs.
type SnapshotStore interface {
	Current() (domain.Snapshot, bool)
	Publish(domain.Snapshot)
}

type Server struct {
	Logger      *zap.Logger
	Monitor     Monitor
	Snapshots   SnapshotStore
	TargetsFile string // empty disables persistence of replacements
}

func NewServer(l *zap.Logger, m Monitor, s SnapshotStore, targetsFile string) *Server {
	return &Server{Logger: l, Monitor: m, Snapshots: s, TargetsFile: targetsFile}
}

func (s *Server) Router(keys apimw.Keys, publicRPM, publicBurst, adminRPM, adminBurst int) http.Handler {
	r := chi.NewRouter()
	r.Use(cors.AllowAll().Handler)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Group(func(r chi.Router) {
		r.Use(apimw.RequireAny(keys))
		r.Use(apimw.RateLimit(publicRPM, publicBurst))
		r.Get("/api/status", s.handleStatus)
		r.Get("/api/targets", s.handleGetTargets)
	})

	r.Group(func(r chi.Router) {
		r.Use(apimw.RequireAdmin(keys))
		r.Use(apimw.RateLimit(adminRPM, adminBurst))
		r.Put("/api/targets", s.handleReplaceTargets)
		r.Post("/api/check", s.handleRunCheck)
	})

	return r
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	snap, ok := s.Snapshots.Current()
	if !ok {
		writeError(w, http.StatusServiceUnavailable, "no snapshot yet")
		return
	}
	writeJSON(w, snap)
}

func (s *Server) handleGetTargets(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.Monitor.Targets())
}

// handleReplaceTargets swaps in a whole new target set. The set is
// validated, persisted, then activated; the next cycle picks it up.
func (s *Server) handleReplaceTargets(w http.ResponseWriter, r *http.Request) {
	var ts domain.TargetSet
	if err := json.NewDecoder(r.Body).Decode(&ts); err != nil {
		writeError(w, http.StatusBadRequest, "bad payload")
		return
	}
	if err := config.ValidateTargets(ts); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if s.TargetsFile != "" {
		if err := config.SaveTargets(s.TargetsFile, ts); err != nil {
			s.Logger.Error("targets_persist_failed", zap.Error(err))
			writeError(w, http.StatusInternalServerError, "could not persist targets")
			return
		}
	}

	s.Monitor.SetTargets(ts)
	s.Logger.Info("targets_updated",
		zap.Int("websites", len(ts.Websites)),
		zap.Int("file_shares", len(ts.Stores)),
	)
	writeJSON(w, ts)
}

// handleRunCheck triggers one monitoring cycle synchronously and publishes
// the result, giving operators immediate feedback after a config change.
func (s *Server) handleRunCheck(w http.ResponseWriter, r *http.Request) {
	snap := s.Monitor.RunCycle(r.Context())
	s.Snapshots.Publish(snap)
	writeJSON(w, snap)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

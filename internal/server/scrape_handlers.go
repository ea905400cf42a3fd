package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/yourusername/odds-radar/internal/models"
	"github.com/yourusername/odds-radar/internal/orchestrator"
)

type startScrapeRequest struct {
	Platforms      []string `json:"platforms"`
	SportID        string   `json:"sport_id"`
	TournamentID   string   `json:"tournament_id"`
	TimeoutSeconds int      `json:"timeout_seconds"`
}

// handleStartScrape launches a run in the background and returns 202 with
// the run record.
func (s *Server) handleStartScrape(w http.ResponseWriter, r *http.Request) {
	var req startScrapeRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondValidation(w, "invalid request body: "+err.Error())
			return
		}
	}

	platforms := make([]models.Platform, 0, len(req.Platforms))
	for _, raw := range req.Platforms {
		p, err := models.ParsePlatform(raw)
		if err != nil {
			respondValidation(w, err.Error())
			return
		}
		platforms = append(platforms, p)
	}

	run, err := s.starter.Start(r.Context(), orchestrator.Request{
		Platforms:    platforms,
		SportID:      req.SportID,
		TournamentID: req.TournamentID,
		Timeout:      time.Duration(req.TimeoutSeconds) * time.Second,
		Trigger:      models.TriggerManual,
	})
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusAccepted, run)
}

func (s *Server) handleGetRun(w http.ResponseWriter, r *http.Request) {
	runID, ok := parseRunID(w, r)
	if !ok {
		return
	}
	run, err := s.runs.Get(r.Context(), runID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, run)
}

func (s *Server) handleListRuns(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r, "limit", 20)
	offset := queryInt(r, "offset", 0)
	list, err := s.runs.List(r.Context(), limit, offset)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"runs": list})
}

func (s *Server) handleRunStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.runs.Stats(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, stats)
}

type retryRequest struct {
	Platforms []string `json:"platforms"`
}

// handleRetryRun opens a follow-up run limited to platforms of the original.
func (s *Server) handleRetryRun(w http.ResponseWriter, r *http.Request) {
	runID, ok := parseRunID(w, r)
	if !ok {
		return
	}

	var req retryRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondValidation(w, "invalid request body: "+err.Error())
			return
		}
	}

	original, err := s.runs.Get(r.Context(), runID)
	if err != nil {
		respondError(w, err)
		return
	}

	platforms := make([]models.Platform, 0, len(req.Platforms))
	for _, raw := range req.Platforms {
		p, perr := models.ParsePlatform(raw)
		if perr != nil {
			respondValidation(w, perr.Error())
			return
		}
		platforms = append(platforms, p)
	}
	if len(platforms) == 0 {
		platforms = original.Platforms
	}
	allowed := make(map[models.Platform]bool, len(original.Platforms))
	for _, p := range original.Platforms {
		allowed[p] = true
	}
	for _, p := range platforms {
		if !allowed[p] {
			respondValidation(w, "platform "+string(p)+" was not part of the original run")
			return
		}
	}

	run, err := s.starter.Start(r.Context(), orchestrator.Request{
		Platforms: platforms,
		Trigger:   models.TriggerRetry,
	})
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusAccepted, run)
}

func (s *Server) handleListRunErrors(w http.ResponseWriter, r *http.Request) {
	runID, ok := parseRunID(w, r)
	if !ok {
		return
	}
	errs, err := s.runs.ListErrors(r.Context(), runID, queryInt(r, "limit", 50), queryInt(r, "offset", 0))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"errors": errs})
}

func (s *Server) handleListRunPhases(w http.ResponseWriter, r *http.Request) {
	runID, ok := parseRunID(w, r)
	if !ok {
		return
	}
	phases, err := s.runs.ListPhaseLogs(r.Context(), runID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"phases": phases})
}

func parseRunID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "runID"))
	if err != nil {
		respondValidation(w, "invalid run id")
		return uuid.Nil, false
	}
	return id, true
}

func queryInt(r *http.Request, key string, fallback int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return fallback
	}
	return n
}

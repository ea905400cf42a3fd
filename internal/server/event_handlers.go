package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/yourusername/odds-radar/internal/repository"
)

func (s *Server) handleListEvents(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := repository.EventFilter{
		Page:           queryInt(r, "page", 1),
		PageSize:       queryInt(r, "page_size", 20),
		MinBookmakers:  queryInt(r, "min_bookmakers", 0),
		IncludeStarted: q.Get("include_started") == "true",
	}

	if raw := q.Get("kickoff_from"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			respondValidation(w, "invalid kickoff_from: "+err.Error())
			return
		}
		filter.KickoffFrom = t
	}
	if raw := q.Get("kickoff_to"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			respondValidation(w, "invalid kickoff_to: "+err.Error())
			return
		}
		filter.KickoffTo = t
	}
	if raw := q.Get("tournament_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			respondValidation(w, "invalid tournament_id")
			return
		}
		filter.TournamentID = &id
	}
	if raw := q.Get("sport_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			respondValidation(w, "invalid sport_id")
			return
		}
		filter.SportID = &id
	}

	page, err := s.history.ListEvents(r.Context(), filter)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, page)
}

func (s *Server) handleGetEvent(w http.ResponseWriter, r *http.Request) {
	eventID, ok := parseEventID(w, r)
	if !ok {
		return
	}
	detail, err := s.history.GetEventDetail(r.Context(), eventID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, detail)
}

func (s *Server) handleOddsHistory(w http.ResponseWriter, r *http.Request) {
	eventID, marketID, bookmaker, line, from, to, ok := parseHistoryQuery(w, r)
	if !ok {
		return
	}
	points, err := s.history.OddsHistory(r.Context(), eventID, marketID, bookmaker, line, from, to)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"points": points})
}

func (s *Server) handleMarginHistory(w http.ResponseWriter, r *http.Request) {
	eventID, marketID, bookmaker, line, from, to, ok := parseHistoryQuery(w, r)
	if !ok {
		return
	}
	points, err := s.history.MarginHistory(r.Context(), eventID, marketID, bookmaker, line, from, to)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"points": points})
}

func (s *Server) handleUnmatchedEvents(w http.ResponseWriter, r *http.Request) {
	events, err := s.history.UnmatchedEvents(r.Context(), queryInt(r, "limit", 50), queryInt(r, "offset", 0))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"events": events})
}

func (s *Server) handleCoverageStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.history.CoverageStats(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, stats)
}

func parseEventID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "eventID"))
	if err != nil {
		respondValidation(w, "invalid event id")
		return uuid.Nil, false
	}
	return id, true
}

// parseHistoryQuery pulls the shared history endpoint parameters: the event
// and market path segments, the required bookmaker slug, and the optional
// line and time range.
func parseHistoryQuery(w http.ResponseWriter, r *http.Request) (eventID uuid.UUID, marketID, bookmaker string, line *float64, from, to time.Time, ok bool) {
	eventID, ok = parseEventID(w, r)
	if !ok {
		return
	}
	ok = false

	marketID = chi.URLParam(r, "marketID")
	bookmaker = r.URL.Query().Get("bookmaker_slug")
	if bookmaker == "" {
		respondValidation(w, "bookmaker_slug query parameter is required")
		return
	}

	if raw := r.URL.Query().Get("line"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			respondValidation(w, "invalid line: "+err.Error())
			return
		}
		line = &v
	}
	if raw := r.URL.Query().Get("from"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			respondValidation(w, "invalid from: "+err.Error())
			return
		}
		from = t
	}
	if raw := r.URL.Query().Get("to"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			respondValidation(w, "invalid to: "+err.Error())
			return
		}
		to = t
	}
	ok = true
	return
}

package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/odds-radar/internal/models"
)

// Problem is the error document returned by every failing endpoint.
type Problem struct {
	ErrorType   string           `json:"error_type"`
	Message     string           `json:"message"`
	Platform    *models.Platform `json:"platform,omitempty"`
	Recoverable bool             `json:"recoverable"`
}

func respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		if err := json.NewEncoder(w).Encode(body); err != nil {
			logrus.WithError(err).Error("failed to encode response")
		}
	}
}

func respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrNotFound):
		respondJSON(w, http.StatusNotFound, Problem{ErrorType: "not_found", Message: err.Error()})
	case errors.Is(err, models.ErrDuplicate):
		respondJSON(w, http.StatusConflict, Problem{ErrorType: "conflict", Message: err.Error()})
	default:
		respondJSON(w, http.StatusInternalServerError, Problem{
			ErrorType: "internal", Message: err.Error(), Recoverable: true,
		})
	}
}

func respondValidation(w http.ResponseWriter, message string) {
	respondJSON(w, http.StatusBadRequest, Problem{ErrorType: "validation", Message: message})
}

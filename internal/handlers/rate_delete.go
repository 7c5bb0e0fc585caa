package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/Rova04/gw-exchange-rates/internal/apperrors"
	"github.com/Rova04/gw-exchange-rates/internal/logger"
)

// PairDeleter defines the interface that the delete handler needs.
type PairDeleter interface {
	DeletePair(ctx context.Context, targetCurrency string) error
}

// DeletePairResponse represents a successful pair deletion
// swagger:model DeletePairResponse
type DeletePairResponse struct {
	// Success message
	// example: Rate deleted
	Message string `json:"message"`
}

// DeletePairErrorResponse represents an error response for a pair deletion
// swagger:model DeletePairErrorResponse
type DeletePairErrorResponse struct {
	// Error message
	// example: Rate not found
	Error string `json:"error"`
}

// NewDeletePairHandler returns an HTTP handler removing a pair's live record,
// leaving a tombstone entry in the history ledger.
// @Summary Delete a pair
// @Description Archives the current values as a tombstone and removes the live record
// @Tags rates
// @Produce json
// @Param target path string true "Target currency code" example(USD)
// @Success 200 {object} handlers.DeletePairResponse "Rate deleted"
// @Failure 404 {object} handlers.DeletePairErrorResponse "Rate not found"
// @Router /rates/{target} [delete]
// @Security BearerAuth
func NewDeletePairHandler(svc PairDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		target := strings.ToUpper(chi.URLParam(r, "target"))

		if err := svc.DeletePair(r.Context(), target); err != nil {
			logger.Log.Errorw("pair deletion failed", "target", target, "error", err)
			switch {
			case errors.Is(err, apperrors.ErrRateNotFound):
				w.WriteHeader(http.StatusNotFound)
				_ = json.NewEncoder(w).Encode(DeletePairErrorResponse{Error: "Rate not found"})
			default:
				w.WriteHeader(http.StatusInternalServerError)
				_ = json.NewEncoder(w).Encode(DeletePairErrorResponse{Error: "Failed to delete rate"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(DeletePairResponse{Message: "Rate deleted"})
	}
}

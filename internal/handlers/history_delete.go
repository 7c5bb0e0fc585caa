package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Rova04/gw-exchange-rates/internal/apperrors"
	"github.com/Rova04/gw-exchange-rates/internal/logger"
)

// HistoryEntryDeleter defines the interface that the handler needs.
type HistoryEntryDeleter interface {
	DeleteHistoryEntry(ctx context.Context, entryID uuid.UUID) error
}

// HistoryDeleteResponse represents a successful history entry deletion
// swagger:model HistoryDeleteResponse
type HistoryDeleteResponse struct {
	// Success message
	// example: History entry deleted
	Message string `json:"message"`
}

// HistoryDeleteErrorResponse represents an error response
// swagger:model HistoryDeleteErrorResponse
type HistoryDeleteErrorResponse struct {
	// Error message
	// example: History entry not found
	Error string `json:"error"`
}

// NewDeleteHistoryEntryHandler returns an HTTP handler hard-removing a single
// archive row. Administrative cleanup only.
// @Summary Delete a history entry
// @Description Removes one archived entry from the ledger; the live rate record is unaffected
// @Tags history
// @Produce json
// @Param entryID path string true "History entry ID" example(550e8400-e29b-41d4-a716-446655440000)
// @Success 200 {object} handlers.HistoryDeleteResponse "History entry deleted"
// @Failure 400 {object} handlers.HistoryDeleteErrorResponse "Invalid entry ID"
// @Failure 404 {object} handlers.HistoryDeleteErrorResponse "History entry not found"
// @Router /rates/history/{entryID} [delete]
// @Security BearerAuth
func NewDeleteHistoryEntryHandler(svc HistoryEntryDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entryID, err := uuid.Parse(chi.URLParam(r, "entryID"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(HistoryDeleteErrorResponse{Error: "Invalid entry ID"})
			return
		}

		if err := svc.DeleteHistoryEntry(r.Context(), entryID); err != nil {
			logger.Log.Errorw("history entry deletion failed", "entry_id", entryID, "error", err)
			switch {
			case errors.Is(err, apperrors.ErrHistoryEntryNotFound):
				w.WriteHeader(http.StatusNotFound)
				_ = json.NewEncoder(w).Encode(HistoryDeleteErrorResponse{Error: "History entry not found"})
			default:
				w.WriteHeader(http.StatusInternalServerError)
				_ = json.NewEncoder(w).Encode(HistoryDeleteErrorResponse{Error: "Failed to delete history entry"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(HistoryDeleteResponse{Message: "History entry deleted"})
	}
}

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

// PinReleaser defines the interface that the release handler needs.
type PinReleaser interface {
	ReleasePin(ctx context.Context, targetCurrency string) error
}

// ReleaseResponse represents a successful pin release
// swagger:model ReleaseResponse
type ReleaseResponse struct {
	// Success message
	// example: Automatic refresh re-enabled
	Message string `json:"message"`
}

// ReleaseErrorResponse represents an error response for a pin release
// swagger:model ReleaseErrorResponse
type ReleaseErrorResponse struct {
	// Error message
	// example: No manual edit found for this pair
	Error string `json:"error"`
}

// NewReleasePinHandler returns an HTTP handler releasing a manual override.
// @Summary Release a manual override
// @Description Re-enables automatic refresh for a manually edited pair without touching its values
// @Tags rates
// @Produce json
// @Param target path string true "Target currency code" example(USD)
// @Success 200 {object} handlers.ReleaseResponse "Automatic refresh re-enabled"
// @Failure 404 {object} handlers.ReleaseErrorResponse "No manual edit found for this pair"
// @Router /rates/{target}/release [post]
// @Security BearerAuth
func NewReleasePinHandler(svc PinReleaser) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		target := strings.ToUpper(chi.URLParam(r, "target"))

		if err := svc.ReleasePin(r.Context(), target); err != nil {
			logger.Log.Errorw("pin release failed", "target", target, "error", err)
			switch {
			case errors.Is(err, apperrors.ErrHistoryEntryNotFound), errors.Is(err, apperrors.ErrRateNotFound):
				w.WriteHeader(http.StatusNotFound)
				_ = json.NewEncoder(w).Encode(ReleaseErrorResponse{Error: "No manual edit found for this pair"})
			default:
				w.WriteHeader(http.StatusInternalServerError)
				_ = json.NewEncoder(w).Encode(ReleaseErrorResponse{Error: "Failed to release manual override"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(ReleaseResponse{Message: "Automatic refresh re-enabled"})
	}
}

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
	"github.com/Rova04/gw-exchange-rates/internal/models"
)

// RateLookuper defines the interface that the lookup handler needs.
type RateLookuper interface {
	Lookup(ctx context.Context, targetCurrency string) (*models.RateDB, error)
}

// RateLookupErrorResponse represents an error response for rate lookup
// swagger:model RateLookupErrorResponse
type RateLookupErrorResponse struct {
	// Error message
	// example: No quote available for this currency
	Error string `json:"error"`
}

// NewLookupRateHandler returns an HTTP handler looking up a pair's rate,
// creating the pair from an external quote when it is not yet known.
// @Summary Look up a rate
// @Description Returns the live rate for a target currency, fetching and creating it on first lookup
// @Tags rates
// @Produce json
// @Param target path string true "Target currency code" example(EUR)
// @Success 200 {object} models.RateDB
// @Failure 404 {object} handlers.RateLookupErrorResponse "No quote available for this currency"
// @Failure 502 {object} handlers.RateLookupErrorResponse "Rate source unavailable"
// @Router /rates/lookup/{target} [get]
func NewLookupRateHandler(svc RateLookuper) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		target := strings.ToUpper(chi.URLParam(r, "target"))

		rate, err := svc.Lookup(r.Context(), target)
		if err != nil {
			logger.Log.Errorw("rate lookup failed", "target", target, "error", err)
			switch {
			case errors.Is(err, apperrors.ErrQuoteNotFound):
				w.WriteHeader(http.StatusNotFound)
				_ = json.NewEncoder(w).Encode(RateLookupErrorResponse{Error: "No quote available for this currency"})
			case errors.Is(err, apperrors.ErrSourceUnavailable):
				w.WriteHeader(http.StatusBadGateway)
				_ = json.NewEncoder(w).Encode(RateLookupErrorResponse{Error: "Rate source unavailable"})
			default:
				w.WriteHeader(http.StatusInternalServerError)
				_ = json.NewEncoder(w).Encode(RateLookupErrorResponse{Error: "Failed to look up rate"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(rate)
	}
}

package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/Rova04/gw-exchange-rates/internal/logger"
	"github.com/Rova04/gw-exchange-rates/internal/models"
)

// RatesLister defines the interface that the handler needs for listing rates.
type RatesLister interface {
	List(ctx context.Context) ([]models.RateDB, error)
}

// RatesListErrorResponse represents an error response for the rate listing
// swagger:model RatesListErrorResponse
type RatesListErrorResponse struct {
	// Error message
	// example: Failed to list rates
	Error string `json:"error"`
}

// NewListRatesHandler returns an HTTP handler listing every live rate record.
// @Summary List rates
// @Description Returns all live buy/sell rates with their manual-override flag
// @Tags rates
// @Produce json
// @Success 200 {array} models.RateDB
// @Failure 500 {object} handlers.RatesListErrorResponse "Failed to list rates"
// @Router /rates [get]
func NewListRatesHandler(svc RatesLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rates, err := svc.List(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to list rates", "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			_ = json.NewEncoder(w).Encode(RatesListErrorResponse{Error: "Failed to list rates"})
			return
		}
		if rates == nil {
			rates = []models.RateDB{}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(rates)
	}
}

package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Rova04/gw-exchange-rates/internal/apperrors"
	"github.com/Rova04/gw-exchange-rates/internal/logger"
	"github.com/Rova04/gw-exchange-rates/internal/models"
	"github.com/Rova04/gw-exchange-rates/internal/services"
)

// ManualRateApplier defines the interface that the manual-edit handler needs.
type ManualRateApplier interface {
	ApplyManualRate(ctx context.Context, targetCurrency string, buyRate, sellRate decimal.Decimal) (*models.RateDB, error)
}

// ManualRateRequest represents the JSON body for a manual rate edit
// swagger:model ManualRateRequest
type ManualRateRequest struct {
	// Target currency code
	// required: true
	// example: USD
	TargetCurrency string `json:"target_currency"`

	// Operator-supplied buy rate
	// required: true
	// example: 4500
	BuyRate decimal.Decimal `json:"buy_rate"`

	// Operator-supplied sell rate
	// required: true
	// example: 4600
	SellRate decimal.Decimal `json:"sell_rate"`
}

// ManualRateResponse represents a successful manual edit
// swagger:model ManualRateResponse
type ManualRateResponse struct {
	// Success message
	// example: Rate updated manually
	Message string `json:"message"`

	// Updated live record, now pinned against automatic refresh
	Rate models.RateDB `json:"rate"`
}

// ManualRateErrorResponse represents an error response for a manual edit
// swagger:model ManualRateErrorResponse
type ManualRateErrorResponse struct {
	// Error message
	// example: Rate not found
	Error string `json:"error"`
}

// NewManualRateHandler returns an HTTP handler applying an operator rate edit.
// The pair becomes ineligible for automatic refresh until released.
// @Summary Manually edit a rate
// @Description Archives the current values and overwrites them with operator-supplied ones, pinning the pair
// @Tags rates
// @Accept json
// @Produce json
// @Param request body handlers.ManualRateRequest true "Manual Rate Request"
// @Success 200 {object} handlers.ManualRateResponse "Rate updated manually"
// @Failure 400 {object} handlers.ManualRateErrorResponse "Invalid request"
// @Failure 404 {object} handlers.ManualRateErrorResponse "Rate not found"
// @Router /rates/manual [post]
// @Security BearerAuth
func NewManualRateHandler(svc ManualRateApplier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ManualRateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.TargetCurrency == "" {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(ManualRateErrorResponse{Error: "Invalid request"})
			return
		}

		target := strings.ToUpper(req.TargetCurrency)

		rate, err := svc.ApplyManualRate(r.Context(), target, req.BuyRate, req.SellRate)
		if err != nil {
			logger.Log.Errorw("manual rate edit failed", "target", target, "error", err)
			switch {
			case errors.Is(err, services.ErrInvalidRate):
				w.WriteHeader(http.StatusBadRequest)
				_ = json.NewEncoder(w).Encode(ManualRateErrorResponse{Error: "Invalid request"})
			case errors.Is(err, apperrors.ErrRateNotFound):
				w.WriteHeader(http.StatusNotFound)
				_ = json.NewEncoder(w).Encode(ManualRateErrorResponse{Error: "Rate not found"})
			default:
				w.WriteHeader(http.StatusInternalServerError)
				_ = json.NewEncoder(w).Encode(ManualRateErrorResponse{Error: "Failed to update rate"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(ManualRateResponse{
			Message: "Rate updated manually",
			Rate:    *rate,
		})
	}
}

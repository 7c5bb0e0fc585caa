package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/Rova04/gw-exchange-rates/internal/logger"
	"github.com/Rova04/gw-exchange-rates/internal/models"
)

// HistoryQuerier defines the interface that the history handler needs.
type HistoryQuerier interface {
	Query(ctx context.Context, filter models.HistoryFilter) ([]models.HistoryEntryDB, error)
}

// HistoryErrorResponse represents an error response for a history query
// swagger:model HistoryErrorResponse
type HistoryErrorResponse struct {
	// Error message
	// example: Invalid date, expected YYYY-MM-DD
	Error string `json:"error"`
}

// NewHistoryHandler returns an HTTP handler querying the archive ledger.
// @Summary Query rate history
// @Description Returns archived rate entries filtered by day, target currency and origin
// @Tags history
// @Produce json
// @Param date query string false "Day filter (YYYY-MM-DD)" example(2025-06-10)
// @Param target query string false "Target currency code, empty for all pairs" example(EUR)
// @Param origin query string false "Origin filter: MANUAL or AUTOMATIC, empty for both" example(MANUAL)
// @Success 200 {array} models.HistoryEntryDB
// @Failure 400 {object} handlers.HistoryErrorResponse "Invalid filter"
// @Failure 500 {object} handlers.HistoryErrorResponse "Failed to query history"
// @Router /rates/history [get]
func NewHistoryHandler(svc HistoryQuerier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var filter models.HistoryFilter

		if date := r.URL.Query().Get("date"); date != "" {
			day, err := time.Parse("2006-01-02", date)
			if err != nil {
				w.WriteHeader(http.StatusBadRequest)
				_ = json.NewEncoder(w).Encode(HistoryErrorResponse{Error: "Invalid date, expected YYYY-MM-DD"})
				return
			}
			filter.Day = day
		}

		if target := r.URL.Query().Get("target"); target != "" && !strings.EqualFold(target, "all") {
			filter.TargetCurrency = strings.ToUpper(target)
		}

		switch origin := strings.ToUpper(r.URL.Query().Get("origin")); origin {
		case "", "ANY":
		case models.OriginManual, models.OriginAutomatic:
			filter.Origin = origin
		default:
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(HistoryErrorResponse{Error: "Invalid origin, expected MANUAL or AUTOMATIC"})
			return
		}

		entries, err := svc.Query(r.Context(), filter)
		if err != nil {
			logger.Log.Errorw("history query failed", "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			_ = json.NewEncoder(w).Encode(HistoryErrorResponse{Error: "Failed to query history"})
			return
		}
		if entries == nil {
			entries = []models.HistoryEntryDB{}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(entries)
	}
}

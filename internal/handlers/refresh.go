package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/Rova04/gw-exchange-rates/internal/logger"
	"github.com/Rova04/gw-exchange-rates/internal/models"
)

// ReportRunner defines the interface that the refresh handler needs.
type ReportRunner interface {
	RunCycle(ctx context.Context) (*models.ReconciliationReport, error)
}

// RefreshErrorResponse represents an error response for a manual refresh
// swagger:model RefreshErrorResponse
type RefreshErrorResponse struct {
	// Error message
	// example: Reconciliation failed
	Error string `json:"error"`
}

// NewRefreshHandler returns an HTTP handler triggering a reconciliation cycle
// on demand, outside the regular schedule.
// @Summary Trigger a refresh cycle
// @Description Runs one reconciliation pass over all pairs and returns its report
// @Tags rates
// @Produce json
// @Success 200 {object} models.ReconciliationReport
// @Failure 500 {object} handlers.RefreshErrorResponse "Reconciliation failed"
// @Router /rates/refresh [post]
// @Security BearerAuth
func NewRefreshHandler(svc ReportRunner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report, err := svc.RunCycle(r.Context())
		if err != nil {
			logger.Log.Errorw("manual reconciliation failed", "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			_ = json.NewEncoder(w).Encode(RefreshErrorResponse{Error: "Reconciliation failed"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(report)
	}
}

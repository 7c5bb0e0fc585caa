package handlers

import (
	"encoding/json"
	"net/http"
	"time"
)

// LastUpdateGetter defines the interface that the last-auto-update handler needs.
type LastUpdateGetter interface {
	LastAutoUpdate() (time.Time, bool)
}

// LastUpdateResponse reports whether a background refresh has completed
// swagger:model LastUpdateResponse
type LastUpdateResponse struct {
	// Whether at least one automatic refresh has completed since startup
	// example: true
	Updated bool `json:"updated"`

	// Completion time of the most recent automatic refresh, RFC 3339
	// example: 2025-06-01T12:00:00Z
	LastUpdate *time.Time `json:"last_update,omitempty"`
}

// NewLastUpdateHandler returns an HTTP handler reporting the most recent
// automatic refresh completion time.
// @Summary Get last automatic update time
// @Description Returns whether a background refresh has completed and when
// @Tags rates
// @Produce json
// @Success 200 {object} handlers.LastUpdateResponse
// @Router /rates/last-auto-update [get]
func NewLastUpdateHandler(svc LastUpdateGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := LastUpdateResponse{}
		if t, ok := svc.LastAutoUpdate(); ok {
			resp.Updated = true
			resp.LastUpdate = &t
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(resp)
	}
}

package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/Rova04/gw-exchange-rates/internal/models"
)

func TestRefreshHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockReportRunner(ctrl)

	t.Run("success", func(t *testing.T) {
		report := &models.ReconciliationReport{
			UpdatedCount: 2,
			SkippedCount: 1,
			Outcomes: []models.PairOutcome{
				{TargetCurrency: "EUR", Status: models.StatusUpdated},
				{TargetCurrency: "JPY", Status: models.StatusSkipped, Reason: models.ReasonManualOverrideActive},
				{TargetCurrency: "USD", Status: models.StatusUpdated},
			},
		}
		mockSvc.EXPECT().RunCycle(gomock.Any()).Return(report, nil)

		req := httptest.NewRequest(http.MethodPost, "/rates/refresh", nil)
		w := httptest.NewRecorder()

		NewRefreshHandler(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var got models.ReconciliationReport
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, 2, got.UpdatedCount)
		assert.Equal(t, 1, got.SkippedCount)
		assert.Len(t, got.Outcomes, 3)
	})

	t.Run("cycle aborted", func(t *testing.T) {
		mockSvc.EXPECT().RunCycle(gomock.Any()).Return(nil, errors.New("store unavailable"))

		req := httptest.NewRequest(http.MethodPost, "/rates/refresh", nil)
		w := httptest.NewRecorder()

		NewRefreshHandler(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)

		respBody := &RefreshErrorResponse{}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), respBody))
		assert.Equal(t, "Reconciliation failed", respBody.Error)
	})
}

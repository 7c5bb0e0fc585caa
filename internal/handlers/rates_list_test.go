package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/Rova04/gw-exchange-rates/internal/models"
)

func TestListRatesHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockRatesLister(ctrl)

	tests := []struct {
		name         string
		mockSetup    func()
		expectedCode int
		expectedLen  int
	}{
		{
			name: "success",
			mockSetup: func() {
				mockSvc.EXPECT().List(gomock.Any()).Return([]models.RateDB{
					{
						BaseCurrency:   models.BaseCurrency,
						TargetCurrency: "EUR",
						BuyRate:        decimal.RequireFromString("4761.90"),
						SellRate:       decimal.RequireFromString("4857.14"),
					},
					{
						BaseCurrency:   models.BaseCurrency,
						TargetCurrency: "USD",
						BuyRate:        decimal.RequireFromString("4545.45"),
						SellRate:       decimal.RequireFromString("4636.36"),
						ManualOverride: true,
					},
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  2,
		},
		{
			name: "empty store returns empty array",
			mockSetup: func() {
				mockSvc.EXPECT().List(gomock.Any()).Return(nil, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  0,
		},
		{
			name: "store error",
			mockSetup: func() {
				mockSvc.EXPECT().List(gomock.Any()).Return(nil, errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			req := httptest.NewRequest(http.MethodGet, "/rates", nil)
			w := httptest.NewRecorder()

			handler := NewListRatesHandler(mockSvc)
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)

			if tt.expectedCode == http.StatusOK {
				var rates []models.RateDB
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &rates))
				assert.Len(t, rates, tt.expectedLen)
			}
		})
	}
}

package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/Rova04/gw-exchange-rates/internal/apperrors"
	"github.com/Rova04/gw-exchange-rates/internal/models"
	"github.com/Rova04/gw-exchange-rates/internal/services"
)

func TestManualRateHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockManualRateApplier(ctrl)

	pinned := &models.RateDB{
		BaseCurrency:   models.BaseCurrency,
		TargetCurrency: "USD",
		BuyRate:        decimal.RequireFromString("4450"),
		SellRate:       decimal.RequireFromString("4550"),
		ManualOverride: true,
	}

	tests := []struct {
		name         string
		inputBody    interface{}
		mockSetup    func()
		expectedCode int
		expectedErr  *ManualRateErrorResponse
	}{
		{
			name: "success",
			inputBody: ManualRateRequest{
				TargetCurrency: "usd",
				BuyRate:        decimal.RequireFromString("4450"),
				SellRate:       decimal.RequireFromString("4550"),
			},
			mockSetup: func() {
				mockSvc.EXPECT().
					ApplyManualRate(gomock.Any(), "USD",
						decimal.RequireFromString("4450"), decimal.RequireFromString("4550")).
					Return(pinned, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "invalid JSON",
			inputBody:    "{invalid json}",
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
			expectedErr:  &ManualRateErrorResponse{Error: "Invalid request"},
		},
		{
			name: "missing target currency",
			inputBody: ManualRateRequest{
				BuyRate:  decimal.RequireFromString("4450"),
				SellRate: decimal.RequireFromString("4550"),
			},
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
			expectedErr:  &ManualRateErrorResponse{Error: "Invalid request"},
		},
		{
			name: "non-positive rates",
			inputBody: ManualRateRequest{
				TargetCurrency: "USD",
				BuyRate:        decimal.Zero,
				SellRate:       decimal.RequireFromString("4550"),
			},
			mockSetup: func() {
				mockSvc.EXPECT().
					ApplyManualRate(gomock.Any(), "USD", gomock.Any(), gomock.Any()).
					Return(nil, services.ErrInvalidRate)
			},
			expectedCode: http.StatusBadRequest,
			expectedErr:  &ManualRateErrorResponse{Error: "Invalid request"},
		},
		{
			name: "unknown pair",
			inputBody: ManualRateRequest{
				TargetCurrency: "ZZZ",
				BuyRate:        decimal.RequireFromString("100"),
				SellRate:       decimal.RequireFromString("102"),
			},
			mockSetup: func() {
				mockSvc.EXPECT().
					ApplyManualRate(gomock.Any(), "ZZZ", gomock.Any(), gomock.Any()).
					Return(nil, apperrors.ErrRateNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedErr:  &ManualRateErrorResponse{Error: "Rate not found"},
		},
		{
			name: "internal error",
			inputBody: ManualRateRequest{
				TargetCurrency: "USD",
				BuyRate:        decimal.RequireFromString("4450"),
				SellRate:       decimal.RequireFromString("4550"),
			},
			mockSetup: func() {
				mockSvc.EXPECT().
					ApplyManualRate(gomock.Any(), "USD", gomock.Any(), gomock.Any()).
					Return(nil, errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedErr:  &ManualRateErrorResponse{Error: "Failed to update rate"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			var bodyBytes []byte
			switch v := tt.inputBody.(type) {
			case string:
				bodyBytes = []byte(v)
			default:
				bodyBytes, _ = json.Marshal(v)
			}

			req := httptest.NewRequest(http.MethodPost, "/rates/manual", bytes.NewReader(bodyBytes))
			w := httptest.NewRecorder()

			handler := NewManualRateHandler(mockSvc)
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)

			if tt.expectedErr != nil {
				respBody := &ManualRateErrorResponse{}
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), respBody))
				assert.Equal(t, tt.expectedErr, respBody)
			} else {
				resp := &ManualRateResponse{}
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), resp))
				assert.Equal(t, "Rate updated manually", resp.Message)
				assert.True(t, resp.Rate.ManualOverride)
			}
		})
	}
}

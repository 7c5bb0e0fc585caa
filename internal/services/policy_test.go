package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/Rova04/gw-exchange-rates/internal/models"
)

func TestEligibleForAutoRefresh(t *testing.T) {
	assert.True(t, EligibleForAutoRefresh(models.RateDB{TargetCurrency: "USD"}))
	assert.False(t, EligibleForAutoRefresh(models.RateDB{TargetCurrency: "USD", ManualOverride: true}))
}

func TestBuyFromQuote(t *testing.T) {
	tests := []struct {
		name     string
		quote    string
		expected string
	}{
		{"typical ariary quote", "0.00021", "4761.90"},
		{"another ariary quote", "0.00022", "4545.45"},
		{"strong target currency", "2", "0.50"},
		{"unit quote", "1", "1.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quote := decimal.RequireFromString(tt.quote)
			got := BuyFromQuote(quote)
			assert.Equal(t, tt.expected, got.StringFixed(2))
		})
	}
}

func TestSellFromBuy(t *testing.T) {
	tests := []struct {
		name     string
		buy      string
		expected string
	}{
		{"typical buy rate", "4761.90", "4857.14"},
		{"round number", "100", "102.00"},
		{"small buy rate", "0.50", "0.51"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buy := decimal.RequireFromString(tt.buy)
			got := SellFromBuy(buy)
			assert.Equal(t, tt.expected, got.StringFixed(2))
		})
	}
}

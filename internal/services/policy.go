package services

import (
	"github.com/shopspring/decimal"

	"github.com/Rova04/gw-exchange-rates/internal/models"
)

// margin applied on top of the buy rate when deriving the sell rate.
var margin = decimal.NewFromFloat(0.02)

var one = decimal.New(1, 0)

// EligibleForAutoRefresh reports whether a pair may be overwritten by the
// reconciliation cycle. Sticky-pin policy: a manual edit blocks automatic
// refresh until an operator explicitly releases the pin; pairs with no
// override are always eligible.
func EligibleForAutoRefresh(rate models.RateDB) bool {
	return !rate.ManualOverride
}

// BuyFromQuote converts a source quote (how much target currency one base-unit
// buys) into a buy rate (how many base-units one target-unit costs).
func BuyFromQuote(quote decimal.Decimal) decimal.Decimal {
	return one.Div(quote).Round(2)
}

// SellFromBuy derives the sell rate by applying the fixed 2% margin.
func SellFromBuy(buy decimal.Decimal) decimal.Decimal {
	return buy.Mul(one.Add(margin)).Round(2)
}

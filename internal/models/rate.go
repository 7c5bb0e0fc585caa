package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// BaseCurrency is the fixed source currency of every pair the service manages.
const BaseCurrency = "MGA"

// RateDB is the live rate row for a currency pair. At most one row exists per
// (base, target) pair; it is mutated only through the reconciliation cycle or
// the manual-edit path, never directly.
type RateDB struct {
	BaseCurrency   string          `db:"base_currency" json:"base_currency"`
	TargetCurrency string          `db:"target_currency" json:"target_currency"`
	BuyRate        decimal.Decimal `db:"buy_rate" json:"buy_rate"`
	SellRate       decimal.Decimal `db:"sell_rate" json:"sell_rate"`
	ManualOverride bool            `db:"manual_override" json:"manual_override"`
	CreatedAt      time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time       `db:"updated_at" json:"updated_at"`
}

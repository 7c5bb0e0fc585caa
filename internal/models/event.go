package models

import "github.com/shopspring/decimal"

// RateEvent is published to Kafka whenever a pair's live rate changes, so
// downstream consumers (dashboards, alerting) can react without polling.
type RateEvent struct {
	EventID        string          `json:"event_id"`
	BaseCurrency   string          `json:"base_currency"`
	TargetCurrency string          `json:"target_currency"`
	OldBuyRate     decimal.Decimal `json:"old_buy_rate"`
	OldSellRate    decimal.Decimal `json:"old_sell_rate"`
	NewBuyRate     decimal.Decimal `json:"new_buy_rate"`
	NewSellRate    decimal.Decimal `json:"new_sell_rate"`
	Origin         string          `json:"origin"`
	Timestamp      int64           `json:"timestamp"`
}

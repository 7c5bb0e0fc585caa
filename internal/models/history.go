package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Origin of an archived rate change.
const (
	OriginAutomatic = "AUTOMATIC"
	OriginManual    = "MANUAL"
)

// HistoryEntryDB is an immutable archived snapshot of a pair's rate values as
// they were immediately before a mutation. Entries are never updated after
// insertion; a Deleted entry is the tombstone left behind by a pair deletion.
type HistoryEntryDB struct {
	EntryID        uuid.UUID       `db:"entry_id" json:"entry_id"`
	BaseCurrency   string          `db:"base_currency" json:"base_currency"`
	TargetCurrency string          `db:"target_currency" json:"target_currency"`
	BuyRate        decimal.Decimal `db:"buy_rate" json:"buy_rate"`
	SellRate       decimal.Decimal `db:"sell_rate" json:"sell_rate"`
	Origin         string          `db:"origin" json:"origin"`
	Deleted        bool            `db:"deleted" json:"deleted"`
	ArchivedAt     time.Time       `db:"archived_at" json:"archived_at"`
}

// HistoryFilter narrows a ledger query. Zero values mean "no filter":
// a zero Day matches every date, an empty TargetCurrency matches every pair,
// an empty Origin matches both origins.
type HistoryFilter struct {
	Day            time.Time
	TargetCurrency string
	Origin         string
}

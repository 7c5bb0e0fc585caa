package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"

	"github.com/Rova04/gw-exchange-rates/internal/models"
)

// RateReader reads live rate records.
type RateReader interface {
	Get(ctx context.Context, targetCurrency string) (*models.RateDB, error)
	List(ctx context.Context) ([]models.RateDB, error)
}

// RateWriter mutates live rate records. GetForUpdate locks the pair's row for
// the surrounding transaction, serializing concurrent writers of one pair.
type RateWriter interface {
	GetForUpdate(ctx context.Context, targetCurrency string) (*models.RateDB, error)
	Upsert(ctx context.Context, rate models.RateDB) error
	SetManualOverride(ctx context.Context, targetCurrency string, active bool) error
	Delete(ctx context.Context, targetCurrency string) error
}

// HistoryWriter appends to and prunes the append-only ledger.
type HistoryWriter interface {
	Append(ctx context.Context, entry models.HistoryEntryDB) error
	Delete(ctx context.Context, entryID uuid.UUID) error
}

// HistoryReader reads the ledger.
type HistoryReader interface {
	LatestManual(ctx context.Context, targetCurrency string) (*models.HistoryEntryDB, error)
}

// QuoteFetcher fetches quotes from the external rate source.
type QuoteFetcher interface {
	FetchQuote(ctx context.Context, targetCurrency string) (decimal.Decimal, error)
	FetchLatest(ctx context.Context) (map[string]decimal.Decimal, error)
}

// QuoteCache caches external quotes.
type QuoteCache interface {
	GetQuote(ctx context.Context, targetCurrency string) (decimal.Decimal, error)
	SetQuote(ctx context.Context, targetCurrency string, quote decimal.Decimal) error
}

// TxRunner executes fn inside a single database transaction.
type TxRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

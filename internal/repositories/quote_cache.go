package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/Rova04/gw-exchange-rates/internal/logger"
	"github.com/Rova04/gw-exchange-rates/internal/models"
)

// QuoteCacheRepository caches external-source quotes in Redis so that a burst
// of first-lookup requests does not hammer the provider.
type QuoteCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached quotes
}

// NewQuoteCacheRepository creates a new repository instance with the given TTL.
func NewQuoteCacheRepository(client *redis.Client, expiration time.Duration) *QuoteCacheRepository {
	return &QuoteCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// GetQuote fetches a cached quote for a target currency.
func (r *QuoteCacheRepository) GetQuote(ctx context.Context, targetCurrency string) (decimal.Decimal, error) {
	key := fmt.Sprintf("quote:%s:%s", models.BaseCurrency, targetCurrency)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		logger.Log.Infow("quote cache get",
			"key", key,
			"error", err,
		)
		if err == redis.Nil {
			return decimal.Zero, fmt.Errorf("quote not cached for %s->%s", models.BaseCurrency, targetCurrency)
		}
		return decimal.Zero, err
	}

	quote, err := decimal.NewFromString(val)
	if err != nil {
		logger.Log.Infow("quote cache get",
			"key", key,
			"value", val,
			"error", err,
		)
		return decimal.Zero, err
	}

	logger.Log.Infow("quote cache get",
		"key", key,
		"value", val,
		"error", nil,
	)

	return quote, nil
}

// SetQuote caches a quote for a target currency with expiration.
func (r *QuoteCacheRepository) SetQuote(ctx context.Context, targetCurrency string, quote decimal.Decimal) error {
	key := fmt.Sprintf("quote:%s:%s", models.BaseCurrency, targetCurrency)
	err := r.client.Set(ctx, key, quote.String(), r.exp).Err()

	logger.Log.Infow("quote cache set",
		"key", key,
		"quote", quote,
		"error", err,
	)

	return err
}

package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"

	"github.com/Rova04/gw-exchange-rates/internal/logger"
	"github.com/Rova04/gw-exchange-rates/internal/models"
)

// publishRateEvent publishes a rate-change event to Kafka. Publishing is
// fire-and-forget: a broker failure is logged, never propagated, so event
// delivery problems cannot fail a rate mutation that already committed.
func publishRateEvent(ctx context.Context, w KafkaWriter, old, updated models.RateDB, origin string) {
	if w == nil {
		logger.Log.Debugw("kafka writer not configured, skipping rate event",
			"target", updated.TargetCurrency, "origin", origin)
		return
	}

	ev := models.RateEvent{
		EventID:        uuid.NewString(),
		BaseCurrency:   updated.BaseCurrency,
		TargetCurrency: updated.TargetCurrency,
		OldBuyRate:     old.BuyRate,
		OldSellRate:    old.SellRate,
		NewBuyRate:     updated.BuyRate,
		NewSellRate:    updated.SellRate,
		Origin:         origin,
		Timestamp:      time.Now().Unix(),
	}

	data, err := json.Marshal(ev)
	if err != nil {
		logger.Log.Errorw("failed to marshal rate event", "event_id", ev.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(ev.TargetCurrency),
		Value: data,
	}

	if err := w.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish rate event",
			"event_id", ev.EventID, "target", ev.TargetCurrency, "error", err)
		return
	}

	logger.Log.Infow("rate event published",
		"event_id", ev.EventID, "target", ev.TargetCurrency, "origin", origin)
}

// deletedRate builds the "new" side of a deletion event.
func deletedRate(old models.RateDB) models.RateDB {
	gone := old
	gone.BuyRate = decimal.Zero
	gone.SellRate = decimal.Zero
	return gone
}

package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Rova04/gw-exchange-rates/internal/apperrors"
	"github.com/Rova04/gw-exchange-rates/internal/logger"
	"github.com/Rova04/gw-exchange-rates/internal/models"
)

// ErrInvalidRate is returned when an operator submits a non-positive rate.
var ErrInvalidRate = errors.New("buy and sell rates must be positive")

// RateService carries the operator-facing rate commands: first lookup of an
// unknown pair, manual edits, pin release and deletion. Every mutation
// archives the pre-change values before touching the live record, inside one
// transaction per pair.
type RateService struct {
	reader        RateReader
	writer        RateWriter
	history       HistoryWriter
	historyReader HistoryReader
	quotes        QuoteFetcher
	cache         QuoteCache
	tx            TxRunner
	kafka         KafkaWriter
}

func NewRateService(
	reader RateReader,
	writer RateWriter,
	history HistoryWriter,
	historyReader HistoryReader,
	quotes QuoteFetcher,
	cache QuoteCache,
	tx TxRunner,
	kafka KafkaWriter,
) *RateService {
	return &RateService{
		reader:        reader,
		writer:        writer,
		history:       history,
		historyReader: historyReader,
		quotes:        quotes,
		cache:         cache,
		tx:            tx,
		kafka:         kafka,
	}
}

// Lookup returns the live record for a target currency, fetching a quote and
// creating the record if the pair is not yet known. This is the only path
// that brings a new pair into the system.
func (s *RateService) Lookup(ctx context.Context, targetCurrency string) (*models.RateDB, error) {
	rate, err := s.reader.Get(ctx, targetCurrency)
	if err == nil {
		return rate, nil
	}
	if !errors.Is(err, apperrors.ErrRateNotFound) {
		return nil, err
	}

	quote, err := s.cache.GetQuote(ctx, targetCurrency)
	if err != nil {
		quote, err = s.quotes.FetchQuote(ctx, targetCurrency)
		if err != nil {
			logger.Log.Errorw("quote fetch failed on first lookup", "target", targetCurrency, "error", err)
			return nil, err
		}
		if err := s.cache.SetQuote(ctx, targetCurrency, quote); err != nil {
			logger.Log.Errorw("failed to cache quote", "target", targetCurrency, "error", err)
		}
	}

	buy := BuyFromQuote(quote)
	record := models.RateDB{
		BaseCurrency:   models.BaseCurrency,
		TargetCurrency: targetCurrency,
		BuyRate:        buy,
		SellRate:       SellFromBuy(buy),
	}

	if err := s.writer.Upsert(ctx, record); err != nil {
		return nil, err
	}

	return s.reader.Get(ctx, targetCurrency)
}

// ApplyManualRate overwrites a pair's rates with operator-supplied values and
// pins the pair against automatic refresh. The operator values are taken
// verbatim; no margin is recomputed. Fails with the rate-not-found error for
// unknown pairs: manual edits never create pairs.
func (s *RateService) ApplyManualRate(ctx context.Context, targetCurrency string, buyRate, sellRate decimal.Decimal) (*models.RateDB, error) {
	if !buyRate.IsPositive() || !sellRate.IsPositive() {
		return nil, ErrInvalidRate
	}

	var prev, updated models.RateDB
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		cur, err := s.writer.GetForUpdate(txCtx, targetCurrency)
		if err != nil {
			return err
		}
		prev = *cur

		entry := models.HistoryEntryDB{
			EntryID:        uuid.New(),
			BaseCurrency:   cur.BaseCurrency,
			TargetCurrency: cur.TargetCurrency,
			BuyRate:        cur.BuyRate,
			SellRate:       cur.SellRate,
			Origin:         models.OriginManual,
		}
		if err := s.history.Append(txCtx, entry); err != nil {
			return err
		}

		updated = models.RateDB{
			BaseCurrency:   cur.BaseCurrency,
			TargetCurrency: cur.TargetCurrency,
			BuyRate:        buyRate,
			SellRate:       sellRate,
			ManualOverride: true,
		}
		return s.writer.Upsert(txCtx, updated)
	})
	if err != nil {
		return nil, err
	}

	publishRateEvent(ctx, s.kafka, prev, updated, models.OriginManual)

	logger.Log.Infow("manual rate applied",
		"target", targetCurrency, "buy", buyRate, "sell", sellRate)

	return &updated, nil
}

// ReleasePin re-enables automatic refresh for a pair that was manually
// edited. Requires a MANUAL history entry to exist; releasing an already
// released pair is a no-op, so the call is idempotent. The live record's
// values are untouched.
func (s *RateService) ReleasePin(ctx context.Context, targetCurrency string) error {
	if _, err := s.historyReader.LatestManual(ctx, targetCurrency); err != nil {
		return err
	}

	if err := s.writer.SetManualOverride(ctx, targetCurrency, false); err != nil {
		return err
	}

	logger.Log.Infow("manual override released", "target", targetCurrency)
	return nil
}

// DeletePair removes a pair's live record, leaving a tombstone entry in the
// ledger for audit.
func (s *RateService) DeletePair(ctx context.Context, targetCurrency string) error {
	var prev models.RateDB
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		cur, err := s.writer.GetForUpdate(txCtx, targetCurrency)
		if err != nil {
			return err
		}
		prev = *cur

		entry := models.HistoryEntryDB{
			EntryID:        uuid.New(),
			BaseCurrency:   cur.BaseCurrency,
			TargetCurrency: cur.TargetCurrency,
			BuyRate:        cur.BuyRate,
			SellRate:       cur.SellRate,
			Origin:         models.OriginAutomatic,
			Deleted:        true,
		}
		if err := s.history.Append(txCtx, entry); err != nil {
			return err
		}

		return s.writer.Delete(txCtx, cur.TargetCurrency)
	})
	if err != nil {
		return err
	}

	publishRateEvent(ctx, s.kafka, prev, deletedRate(prev), models.OriginManual)

	logger.Log.Infow("pair deleted", "target", targetCurrency)
	return nil
}

// DeleteHistoryEntry hard-removes a single ledger row (cleanup of mistaken
// archive entries). The live record is unaffected.
func (s *RateService) DeleteHistoryEntry(ctx context.Context, entryID uuid.UUID) error {
	if err := s.history.Delete(ctx, entryID); err != nil {
		return err
	}

	logger.Log.Infow("history entry deleted", "entry_id", entryID)
	return nil
}

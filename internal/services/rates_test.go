package services

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/Rova04/gw-exchange-rates/internal/apperrors"
	"github.com/Rova04/gw-exchange-rates/internal/models"
)

// passthroughTx wires a MockTxRunner so the transactional closure actually runs.
func passthroughTx(ctrl *gomock.Controller) *MockTxRunner {
	tx := NewMockTxRunner(ctrl)
	tx.EXPECT().RunInTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	).AnyTimes()
	return tx
}

func TestRateService_Lookup_Existing(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := NewMockRateReader(ctrl)
	known := &models.RateDB{
		BaseCurrency:   models.BaseCurrency,
		TargetCurrency: "USD",
		BuyRate:        decimal.RequireFromString("4545.45"),
		SellRate:       decimal.RequireFromString("4636.36"),
	}
	reader.EXPECT().Get(ctx, "USD").Return(known, nil)

	svc := NewRateService(reader, nil, nil, nil, nil, nil, nil, nil)
	got, err := svc.Lookup(ctx, "USD")

	assert.NoError(t, err)
	assert.Equal(t, known, got)
}

func TestRateService_Lookup_NewPair_CacheMiss(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := NewMockRateReader(ctrl)
	writer := NewMockRateWriter(ctrl)
	quotes := NewMockQuoteFetcher(ctrl)
	cache := NewMockQuoteCache(ctrl)

	quote := decimal.RequireFromString("0.00021")

	reader.EXPECT().Get(ctx, "EUR").Return(nil, apperrors.ErrRateNotFound)
	cache.EXPECT().GetQuote(ctx, "EUR").Return(decimal.Zero, errors.New("quote not cached"))
	quotes.EXPECT().FetchQuote(ctx, "EUR").Return(quote, nil)
	cache.EXPECT().SetQuote(ctx, "EUR", quote).Return(nil)

	writer.EXPECT().Upsert(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, rate models.RateDB) error {
			assert.Equal(t, models.BaseCurrency, rate.BaseCurrency)
			assert.Equal(t, "EUR", rate.TargetCurrency)
			assert.Equal(t, "4761.90", rate.BuyRate.StringFixed(2))
			assert.Equal(t, "4857.14", rate.SellRate.StringFixed(2))
			assert.False(t, rate.ManualOverride)
			return nil
		},
	)

	saved := &models.RateDB{
		BaseCurrency:   models.BaseCurrency,
		TargetCurrency: "EUR",
		BuyRate:        decimal.RequireFromString("4761.90"),
		SellRate:       decimal.RequireFromString("4857.14"),
	}
	reader.EXPECT().Get(ctx, "EUR").Return(saved, nil)

	svc := NewRateService(reader, writer, nil, nil, quotes, cache, nil, nil)
	got, err := svc.Lookup(ctx, "EUR")

	assert.NoError(t, err)
	assert.Equal(t, saved, got)
}

func TestRateService_Lookup_NewPair_CacheHit(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := NewMockRateReader(ctrl)
	writer := NewMockRateWriter(ctrl)
	cache := NewMockQuoteCache(ctrl)

	reader.EXPECT().Get(ctx, "GBP").Return(nil, apperrors.ErrRateNotFound)
	cache.EXPECT().GetQuote(ctx, "GBP").Return(decimal.RequireFromString("0.0002"), nil)
	writer.EXPECT().Upsert(ctx, gomock.Any()).Return(nil)
	reader.EXPECT().Get(ctx, "GBP").Return(&models.RateDB{TargetCurrency: "GBP"}, nil)

	svc := NewRateService(reader, writer, nil, nil, nil, cache, nil, nil)
	got, err := svc.Lookup(ctx, "GBP")

	assert.NoError(t, err)
	assert.Equal(t, "GBP", got.TargetCurrency)
}

func TestRateService_Lookup_QuoteNotFound(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := NewMockRateReader(ctrl)
	quotes := NewMockQuoteFetcher(ctrl)
	cache := NewMockQuoteCache(ctrl)

	reader.EXPECT().Get(ctx, "XXX").Return(nil, apperrors.ErrRateNotFound)
	cache.EXPECT().GetQuote(ctx, "XXX").Return(decimal.Zero, errors.New("quote not cached"))
	quotes.EXPECT().FetchQuote(ctx, "XXX").Return(decimal.Zero, apperrors.ErrQuoteNotFound)

	svc := NewRateService(reader, nil, nil, nil, quotes, cache, nil, nil)
	_, err := svc.Lookup(ctx, "XXX")

	assert.ErrorIs(t, err, apperrors.ErrQuoteNotFound)
}

func TestRateService_ApplyManualRate(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	writer := NewMockRateWriter(ctrl)
	history := NewMockHistoryWriter(ctrl)
	kafka := NewMockKafkaWriter(ctrl)
	tx := passthroughTx(ctrl)

	current := &models.RateDB{
		BaseCurrency:   models.BaseCurrency,
		TargetCurrency: "USD",
		BuyRate:        decimal.RequireFromString("4400.00"),
		SellRate:       decimal.RequireFromString("4488.00"),
	}

	lock := writer.EXPECT().GetForUpdate(gomock.Any(), "USD").Return(current, nil)

	// The archive of the prior values must land before the live record changes.
	archive := history.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, entry models.HistoryEntryDB) error {
			assert.Equal(t, models.OriginManual, entry.Origin)
			assert.Equal(t, "USD", entry.TargetCurrency)
			assert.Equal(t, "4400.00", entry.BuyRate.StringFixed(2))
			assert.Equal(t, "4488.00", entry.SellRate.StringFixed(2))
			assert.False(t, entry.Deleted)
			assert.NotEqual(t, uuid.Nil, entry.EntryID)
			return nil
		},
	).After(lock)

	writer.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, rate models.RateDB) error {
			assert.Equal(t, "4450.00", rate.BuyRate.StringFixed(2))
			assert.Equal(t, "4550.00", rate.SellRate.StringFixed(2))
			assert.True(t, rate.ManualOverride)
			return nil
		},
	).After(archive)

	kafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)

	svc := NewRateService(nil, writer, history, nil, nil, nil, tx, kafka)
	got, err := svc.ApplyManualRate(ctx, "USD",
		decimal.RequireFromString("4450"), decimal.RequireFromString("4550"))

	assert.NoError(t, err)
	assert.True(t, got.ManualOverride)
	assert.Equal(t, "4450.00", got.BuyRate.StringFixed(2))
}

func TestRateService_ApplyManualRate_Invalid(t *testing.T) {
	ctx := context.Background()

	svc := NewRateService(nil, nil, nil, nil, nil, nil, nil, nil)

	_, err := svc.ApplyManualRate(ctx, "USD", decimal.Zero, decimal.RequireFromString("4550"))
	assert.ErrorIs(t, err, ErrInvalidRate)

	_, err = svc.ApplyManualRate(ctx, "USD", decimal.RequireFromString("4450"), decimal.RequireFromString("-1"))
	assert.ErrorIs(t, err, ErrInvalidRate)
}

func TestRateService_ApplyManualRate_UnknownPair(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	writer := NewMockRateWriter(ctrl)
	tx := passthroughTx(ctrl)

	writer.EXPECT().GetForUpdate(gomock.Any(), "ZZZ").Return(nil, apperrors.ErrRateNotFound)

	svc := NewRateService(nil, writer, nil, nil, nil, nil, tx, nil)
	_, err := svc.ApplyManualRate(ctx, "ZZZ",
		decimal.RequireFromString("100"), decimal.RequireFromString("102"))

	assert.ErrorIs(t, err, apperrors.ErrRateNotFound)
}

func TestRateService_ReleasePin(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	writer := NewMockRateWriter(ctrl)
	historyReader := NewMockHistoryReader(ctrl)

	entry := &models.HistoryEntryDB{
		EntryID:        uuid.New(),
		TargetCurrency: "USD",
		Origin:         models.OriginManual,
	}

	// Releasing twice is fine: the second call is a no-op on an already
	// released pair.
	historyReader.EXPECT().LatestManual(ctx, "USD").Return(entry, nil).Times(2)
	writer.EXPECT().SetManualOverride(ctx, "USD", false).Return(nil).Times(2)

	svc := NewRateService(nil, writer, nil, historyReader, nil, nil, nil, nil)
	assert.NoError(t, svc.ReleasePin(ctx, "USD"))
	assert.NoError(t, svc.ReleasePin(ctx, "USD"))
}

func TestRateService_ReleasePin_NeverEdited(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	historyReader := NewMockHistoryReader(ctrl)
	historyReader.EXPECT().LatestManual(ctx, "JPY").Return(nil, apperrors.ErrHistoryEntryNotFound)

	svc := NewRateService(nil, nil, nil, historyReader, nil, nil, nil, nil)
	err := svc.ReleasePin(ctx, "JPY")

	assert.ErrorIs(t, err, apperrors.ErrHistoryEntryNotFound)
}

func TestRateService_DeletePair(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	writer := NewMockRateWriter(ctrl)
	history := NewMockHistoryWriter(ctrl)
	kafka := NewMockKafkaWriter(ctrl)
	tx := passthroughTx(ctrl)

	current := &models.RateDB{
		BaseCurrency:   models.BaseCurrency,
		TargetCurrency: "CHF",
		BuyRate:        decimal.RequireFromString("5100.00"),
		SellRate:       decimal.RequireFromString("5202.00"),
	}

	lock := writer.EXPECT().GetForUpdate(gomock.Any(), "CHF").Return(current, nil)

	tombstone := history.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, entry models.HistoryEntryDB) error {
			assert.True(t, entry.Deleted)
			assert.Equal(t, models.OriginAutomatic, entry.Origin)
			assert.Equal(t, "5100.00", entry.BuyRate.StringFixed(2))
			return nil
		},
	).After(lock)

	writer.EXPECT().Delete(gomock.Any(), "CHF").Return(nil).After(tombstone)
	kafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)

	svc := NewRateService(nil, writer, history, nil, nil, nil, tx, kafka)
	assert.NoError(t, svc.DeletePair(ctx, "CHF"))
}

func TestRateService_DeletePair_Unknown(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	writer := NewMockRateWriter(ctrl)
	tx := passthroughTx(ctrl)

	writer.EXPECT().GetForUpdate(gomock.Any(), "ZZZ").Return(nil, apperrors.ErrRateNotFound)

	svc := NewRateService(nil, writer, nil, nil, nil, nil, tx, nil)
	assert.ErrorIs(t, svc.DeletePair(ctx, "ZZZ"), apperrors.ErrRateNotFound)
}

func TestRateService_DeleteHistoryEntry(t *testing.T) {
	ctx := context.Background()
	entryID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	history := NewMockHistoryWriter(ctrl)
	history.EXPECT().Delete(ctx, entryID).Return(nil)

	svc := NewRateService(nil, nil, history, nil, nil, nil, nil, nil)
	assert.NoError(t, svc.DeleteHistoryEntry(ctx, entryID))

	history.EXPECT().Delete(ctx, entryID).Return(apperrors.ErrHistoryEntryNotFound)
	assert.ErrorIs(t, svc.DeleteHistoryEntry(ctx, entryID), apperrors.ErrHistoryEntryNotFound)
}

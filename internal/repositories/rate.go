package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/Rova04/gw-exchange-rates/internal/apperrors"
	"github.com/Rova04/gw-exchange-rates/internal/logger"
	"github.com/Rova04/gw-exchange-rates/internal/models"
)

// RateReadRepository handles live rate read operations.
type RateReadRepository struct {
	db *sqlx.DB
}

func NewRateReadRepository(db *sqlx.DB) *RateReadRepository {
	return &RateReadRepository{db: db}
}

// Get retrieves the live rate record for a target currency.
func (r *RateReadRepository) Get(ctx context.Context, targetCurrency string) (*models.RateDB, error) {
	const query = `
		SELECT base_currency, target_currency, buy_rate, sell_rate, manual_override, created_at, updated_at
		FROM rates
		WHERE base_currency = $1 AND target_currency = $2
	`

	var rate models.RateDB
	err := r.db.GetContext(ctx, &rate, query, models.BaseCurrency, targetCurrency)

	logger.Log.Infow("rate get",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{models.BaseCurrency, targetCurrency},
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrRateNotFound
		}
		return nil, err
	}
	return &rate, nil
}

// List returns every live rate record, ordered by target currency. Used to
// enumerate all known pairs for a reconciliation pass.
func (r *RateReadRepository) List(ctx context.Context) ([]models.RateDB, error) {
	const query = `
		SELECT base_currency, target_currency, buy_rate, sell_rate, manual_override, created_at, updated_at
		FROM rates
		ORDER BY target_currency
	`

	var rates []models.RateDB
	err := r.db.SelectContext(ctx, &rates, query)

	logger.Log.Infow("rate list",
		"query", strings.Join(strings.Fields(query), " "),
		"count", len(rates),
		"error", err,
	)

	return rates, err
}

// RateWriteRepository handles live rate write operations. Writes join the
// transaction supplied by txGetter when one is present in the context.
type RateWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewRateWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *RateWriteRepository {
	return &RateWriteRepository{db: db, txGetter: txGetter}
}

func (r *RateWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// GetForUpdate locks the pair's row for the duration of the surrounding
// transaction, serializing concurrent mutations of the same pair.
func (r *RateWriteRepository) GetForUpdate(ctx context.Context, targetCurrency string) (*models.RateDB, error) {
	const query = `
		SELECT base_currency, target_currency, buy_rate, sell_rate, manual_override, created_at, updated_at
		FROM rates
		WHERE base_currency = $1 AND target_currency = $2
		FOR UPDATE
	`

	var rate models.RateDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &rate, query, models.BaseCurrency, targetCurrency)

	logger.Log.Infow("rate get for update",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{models.BaseCurrency, targetCurrency},
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrRateNotFound
		}
		return nil, err
	}
	return &rate, nil
}

// Upsert creates or overwrites the live record for a pair. Callers must have
// already appended the corresponding history entry in the same transaction.
func (r *RateWriteRepository) Upsert(ctx context.Context, rate models.RateDB) error {
	query := `
		INSERT INTO rates (base_currency, target_currency, buy_rate, sell_rate, manual_override, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		ON CONFLICT (base_currency, target_currency)
		DO UPDATE SET buy_rate = EXCLUDED.buy_rate,
		              sell_rate = EXCLUDED.sell_rate,
		              manual_override = EXCLUDED.manual_override,
		              updated_at = NOW()
	`
	args := []any{rate.BaseCurrency, rate.TargetCurrency, rate.BuyRate, rate.SellRate, rate.ManualOverride}

	_, err := r.executor(ctx).ExecContext(ctx, query, args...)

	logger.Log.Infow("rate upsert",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	return err
}

// SetManualOverride flips the pin flag without touching the rate values.
func (r *RateWriteRepository) SetManualOverride(ctx context.Context, targetCurrency string, active bool) error {
	query := `
		UPDATE rates
		SET manual_override = $3, updated_at = NOW()
		WHERE base_currency = $1 AND target_currency = $2
	`
	args := []any{models.BaseCurrency, targetCurrency, active}

	res, err := r.executor(ctx).ExecContext(ctx, query, args...)

	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("rate set manual override",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return apperrors.ErrRateNotFound
	}
	return nil
}

// Delete removes the live record for a pair. Callers must have already written
// a tombstone history entry in the same transaction.
func (r *RateWriteRepository) Delete(ctx context.Context, targetCurrency string) error {
	query := `
		DELETE FROM rates
		WHERE base_currency = $1 AND target_currency = $2
	`
	args := []any{models.BaseCurrency, targetCurrency}

	res, err := r.executor(ctx).ExecContext(ctx, query, args...)

	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("rate delete",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return apperrors.ErrRateNotFound
	}
	return nil
}

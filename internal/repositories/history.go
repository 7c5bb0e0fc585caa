package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/Rova04/gw-exchange-rates/internal/apperrors"
	"github.com/Rova04/gw-exchange-rates/internal/logger"
	"github.com/Rova04/gw-exchange-rates/internal/models"
)

// HistoryWriteRepository appends to and prunes the append-only rate ledger.
// Appends join the transaction supplied by txGetter when one is present.
type HistoryWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewHistoryWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *HistoryWriteRepository {
	return &HistoryWriteRepository{db: db, txGetter: txGetter}
}

func (r *HistoryWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Append archives one entry. archived_at uses clock_timestamp() rather than
// NOW(): the transaction timestamp is taken at BEGIN, before the row lock is
// won, so a lock loser could stamp an earlier time than the winner it follows.
// The ordinal sequence breaks exact-timestamp ties in insertion order.
func (r *HistoryWriteRepository) Append(ctx context.Context, entry models.HistoryEntryDB) error {
	query := `
		INSERT INTO rate_history (entry_id, base_currency, target_currency, buy_rate, sell_rate, origin, deleted, archived_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, clock_timestamp())
	`
	args := []any{entry.EntryID, entry.BaseCurrency, entry.TargetCurrency, entry.BuyRate, entry.SellRate, entry.Origin, entry.Deleted}

	_, err := r.executor(ctx).ExecContext(ctx, query, args...)

	logger.Log.Infow("history append",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	return err
}

// Delete hard-removes a single ledger entry. Administrative cleanup only; the
// live rate record is unaffected.
func (r *HistoryWriteRepository) Delete(ctx context.Context, entryID uuid.UUID) error {
	query := `
		DELETE FROM rate_history
		WHERE entry_id = $1
	`

	res, err := r.executor(ctx).ExecContext(ctx, query, entryID)

	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("history delete",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{entryID},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return apperrors.ErrHistoryEntryNotFound
	}
	return nil
}

// HistoryReadRepository handles ledger read operations.
type HistoryReadRepository struct {
	db *sqlx.DB
}

func NewHistoryReadRepository(db *sqlx.DB) *HistoryReadRepository {
	return &HistoryReadRepository{db: db}
}

// Latest returns the most recent entry for a pair regardless of origin.
func (r *HistoryReadRepository) Latest(ctx context.Context, targetCurrency string) (*models.HistoryEntryDB, error) {
	const query = `
		SELECT entry_id, base_currency, target_currency, buy_rate, sell_rate, origin, deleted, archived_at
		FROM rate_history
		WHERE target_currency = $1
		ORDER BY archived_at DESC, ordinal DESC
		LIMIT 1
	`
	return r.getOne(ctx, query, targetCurrency)
}

// LatestManual returns the most recent MANUAL entry for a pair.
func (r *HistoryReadRepository) LatestManual(ctx context.Context, targetCurrency string) (*models.HistoryEntryDB, error) {
	const query = `
		SELECT entry_id, base_currency, target_currency, buy_rate, sell_rate, origin, deleted, archived_at
		FROM rate_history
		WHERE target_currency = $1 AND origin = 'MANUAL'
		ORDER BY archived_at DESC, ordinal DESC
		LIMIT 1
	`
	return r.getOne(ctx, query, targetCurrency)
}

func (r *HistoryReadRepository) getOne(ctx context.Context, query, targetCurrency string) (*models.HistoryEntryDB, error) {
	var entry models.HistoryEntryDB
	err := r.db.GetContext(ctx, &entry, query, targetCurrency)

	logger.Log.Infow("history get",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{targetCurrency},
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrHistoryEntryNotFound
		}
		return nil, err
	}
	return &entry, nil
}

// Query filters the ledger by day, pair and origin. Day-filtered results are
// ordered by pair then time; unbounded queries by time then pair.
func (r *HistoryReadRepository) Query(ctx context.Context, filter models.HistoryFilter) ([]models.HistoryEntryDB, error) {
	query := `
		SELECT entry_id, base_currency, target_currency, buy_rate, sell_rate, origin, deleted, archived_at
		FROM rate_history
		WHERE 1 = 1
	`
	var args []any

	if !filter.Day.IsZero() {
		args = append(args, filter.Day.Format("2006-01-02"))
		query += fmt.Sprintf(" AND DATE(archived_at) = $%d", len(args))
	}
	if filter.TargetCurrency != "" {
		args = append(args, filter.TargetCurrency)
		query += fmt.Sprintf(" AND target_currency = $%d", len(args))
	}
	if filter.Origin != "" {
		args = append(args, filter.Origin)
		query += fmt.Sprintf(" AND origin = $%d", len(args))
	}

	if !filter.Day.IsZero() {
		query += " ORDER BY target_currency, archived_at, ordinal"
	} else {
		query += " ORDER BY archived_at, target_currency, ordinal"
	}

	var entries []models.HistoryEntryDB
	err := r.db.SelectContext(ctx, &entries, query, args...)

	logger.Log.Infow("history query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"count", len(entries),
		"error", err,
	)

	return entries, err
}

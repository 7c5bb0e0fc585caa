package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Rova04/gw-exchange-rates/internal/apperrors"
	"github.com/Rova04/gw-exchange-rates/internal/logger"
	"github.com/Rova04/gw-exchange-rates/internal/models"
)

// errPinned signals that a pair turned out to be pinned once its row was
// locked, even though it looked eligible at cycle start.
var errPinned = errors.New("pair pinned by manual override")

const defaultWorkers = 4

// Reconciler drives one refresh cycle over every known pair: consult the
// override policy, fetch quotes, archive the prior values and upsert the new
// ones. Pairs are processed concurrently under a worker limit; each pair's
// archive+upsert runs in its own transaction against a locked row.
type Reconciler struct {
	rates   RateReader
	writer  RateWriter
	history HistoryWriter
	source  QuoteFetcher
	tx      TxRunner
	kafka   KafkaWriter
	workers int

	mu      sync.RWMutex
	lastRun time.Time
	hasRun  bool
}

func NewReconciler(
	rates RateReader,
	writer RateWriter,
	history HistoryWriter,
	source QuoteFetcher,
	tx TxRunner,
	kafka KafkaWriter,
	workers int,
) *Reconciler {
	if workers <= 0 {
		workers = defaultWorkers
	}
	return &Reconciler{
		rates:   rates,
		writer:  writer,
		history: history,
		source:  source,
		tx:      tx,
		kafka:   kafka,
		workers: workers,
	}
}

// RunCycle performs one best-effort reconciliation pass and returns its
// report. Per-pair failures become skip outcomes; only store or ledger
// unavailability aborts the cycle and surfaces as an error.
func (r *Reconciler) RunCycle(ctx context.Context) (*models.ReconciliationReport, error) {
	started := time.Now()

	records, err := r.rates.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing pairs: %w", err)
	}

	var quotes map[string]decimal.Decimal
	var sourceErr error
	if len(records) > 0 {
		quotes, sourceErr = r.source.FetchLatest(ctx)
		if sourceErr != nil {
			logger.Log.Warnw("batch quote fetch failed, skipping all eligible pairs", "error", sourceErr)
		}
	}

	cycleCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	results := make(chan models.PairOutcome, len(records))
	sem := make(chan struct{}, r.workers)
	var wg sync.WaitGroup

	var infraMu sync.Mutex
	var infraErr error

loop:
	for _, rec := range records {
		// Once cancelled, no new per-pair work starts; in-flight units
		// complete. Cancellation must also win while parked on the semaphore.
		if cycleCtx.Err() != nil {
			break
		}
		select {
		case sem <- struct{}{}:
		case <-cycleCtx.Done():
			break loop
		}
		wg.Add(1)
		go func(rec models.RateDB) {
			defer wg.Done()
			defer func() { <-sem }()

			outcome, err := r.refreshPair(cycleCtx, rec, quotes, sourceErr != nil)
			if err != nil {
				infraMu.Lock()
				if infraErr == nil {
					infraErr = err
				}
				infraMu.Unlock()
				cancel()
				return
			}
			results <- outcome
		}(rec)
	}

	wg.Wait()
	close(results)

	if infraErr != nil {
		return nil, fmt.Errorf("reconciliation aborted: %w", infraErr)
	}

	report := &models.ReconciliationReport{StartedAt: started}
	for outcome := range results {
		report.Outcomes = append(report.Outcomes, outcome)
		if outcome.Status == models.StatusUpdated {
			report.UpdatedCount++
		} else {
			report.SkippedCount++
		}
	}
	sort.Slice(report.Outcomes, func(i, j int) bool {
		return report.Outcomes[i].TargetCurrency < report.Outcomes[j].TargetCurrency
	})
	report.FinishedAt = time.Now()

	r.mu.Lock()
	r.lastRun = report.FinishedAt
	r.hasRun = true
	r.mu.Unlock()

	logger.Log.Infow("reconciliation cycle finished",
		"updated", report.UpdatedCount,
		"skipped", report.SkippedCount,
		"duration", report.FinishedAt.Sub(report.StartedAt),
	)

	return report, nil
}

// LastAutoUpdate reports when the last cycle completed. The second return is
// false until the first cycle has run.
func (r *Reconciler) LastAutoUpdate() (time.Time, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.lastRun, r.hasRun
}

func (r *Reconciler) refreshPair(
	ctx context.Context,
	rec models.RateDB,
	quotes map[string]decimal.Decimal,
	sourceDown bool,
) (models.PairOutcome, error) {
	outcome := models.PairOutcome{TargetCurrency: rec.TargetCurrency}

	if !EligibleForAutoRefresh(rec) {
		outcome.Status = models.StatusSkipped
		outcome.Reason = models.ReasonManualOverrideActive
		return outcome, nil
	}
	if sourceDown {
		outcome.Status = models.StatusSkipped
		outcome.Reason = models.ReasonSourceError
		return outcome, nil
	}

	quote, ok := quotes[rec.TargetCurrency]
	if !ok || !quote.IsPositive() {
		logger.Log.Warnw("no usable quote for pair", "target", rec.TargetCurrency)
		outcome.Status = models.StatusSkipped
		outcome.Reason = models.ReasonSourceError
		return outcome, nil
	}

	newBuy := BuyFromQuote(quote)
	newSell := SellFromBuy(newBuy)

	var prev, updated models.RateDB
	// A started archive+upsert unit is atomic: it finishes even when the
	// cycle is being cancelled.
	err := r.tx.RunInTx(context.WithoutCancel(ctx), func(txCtx context.Context) error {
		cur, err := r.writer.GetForUpdate(txCtx, rec.TargetCurrency)
		if err != nil {
			return err
		}
		// Re-check under the row lock: a manual edit may have landed
		// between cycle start and now.
		if cur.ManualOverride {
			return errPinned
		}
		prev = *cur

		entry := models.HistoryEntryDB{
			EntryID:        uuid.New(),
			BaseCurrency:   cur.BaseCurrency,
			TargetCurrency: cur.TargetCurrency,
			BuyRate:        cur.BuyRate,
			SellRate:       cur.SellRate,
			Origin:         models.OriginAutomatic,
		}
		if err := r.history.Append(txCtx, entry); err != nil {
			return err
		}

		updated = models.RateDB{
			BaseCurrency:   cur.BaseCurrency,
			TargetCurrency: cur.TargetCurrency,
			BuyRate:        newBuy,
			SellRate:       newSell,
		}
		return r.writer.Upsert(txCtx, updated)
	})

	switch {
	case err == nil:
		outcome.Status = models.StatusUpdated
		publishRateEvent(ctx, r.kafka, prev, updated, models.OriginAutomatic)
	case errors.Is(err, errPinned):
		outcome.Status = models.StatusSkipped
		outcome.Reason = models.ReasonManualOverrideActive
	case errors.Is(err, apperrors.ErrRateNotFound):
		// Pair deleted while the cycle was running.
		outcome.Status = models.StatusSkipped
		outcome.Reason = models.ReasonConflict
	default:
		return outcome, err
	}
	return outcome, nil
}

package models

import "time"

// Per-pair outcome statuses of a reconciliation cycle.
const (
	StatusUpdated = "updated"
	StatusSkipped = "skipped"
)

// Skip reasons recorded in a reconciliation report.
const (
	ReasonManualOverrideActive = "manual-override-active"
	ReasonSourceError          = "source-error"
	ReasonConflict             = "conflict"
)

// PairOutcome records what happened to a single pair during a cycle.
type PairOutcome struct {
	TargetCurrency string `json:"target_currency"`
	Status         string `json:"status"`
	Reason         string `json:"reason,omitempty"`
}

// ReconciliationReport aggregates the outcome of one reconciliation cycle.
// A cycle is a best-effort batch: skipped pairs are expected and normal.
type ReconciliationReport struct {
	UpdatedCount int           `json:"updated_count"`
	SkippedCount int           `json:"skipped_count"`
	Outcomes     []PairOutcome `json:"outcomes"`
	StartedAt    time.Time     `json:"started_at"`
	FinishedAt   time.Time     `json:"finished_at"`
}

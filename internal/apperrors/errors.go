package apperrors

import "errors"

// ErrRateNotFound indicates the referenced currency pair has no live rate record.
var ErrRateNotFound = errors.New("rate not found")

// ErrHistoryEntryNotFound indicates the referenced history entry does not exist,
// or that a pair has no history matching the requested origin.
var ErrHistoryEntryNotFound = errors.New("history entry not found")

// ErrQuoteNotFound indicates the external source has no usable quote for the
// requested currency, distinct from the source being unreachable.
var ErrQuoteNotFound = errors.New("quote not available")

// ErrSourceUnavailable indicates the external rate source failed entirely.
var ErrSourceUnavailable = errors.New("rate source unavailable")

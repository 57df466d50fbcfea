// Package reconciliation contains bank-statement reconciliation use cases:
// statement import and dedup, auto-settlement, suggestion ranking, manual
// linking and purge of unlinked entries.
package reconciliation

// MaxSuggestionsPerEntry caps the ranked candidate list shown for each
// unlinked statement entry.
const MaxSuggestionsPerEntry = 10

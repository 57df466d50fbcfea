package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StatementEntry is one normalized, deduplicated line item from an imported
// bank statement. ContentHash is the natural key: re-importing the same
// statement (or an overlapping export) updates the existing row in place.
type StatementEntry struct {
	ID             uint
	ContentHash    string
	Date           time.Time
	Description    string
	DescriptionKey string // ASCII-folded, lower-cased, whitespace-collapsed
	Amount         decimal.Decimal
	InvoiceID      *uint // set by auto-settlement or manual confirmation
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// IsLinked reports whether the entry has been matched to an invoice.
func (e *StatementEntry) IsLinked() bool {
	return e.InvoiceID != nil
}

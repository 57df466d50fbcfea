package adapter

import (
	"context"
	"time"

	"github.com/receber-inter/backend/internal/domain/entity"
)

// LinkAndSettleParams describes the atomic unit applied when a statement
// entry is matched to an invoice: the entry link, the invoice settlement and
// optional alias learning all commit or roll back together.
type LinkAndSettleParams struct {
	EntryID       uint
	InvoiceID     uint
	PaymentMethod entity.PaymentMethod
	PaymentDate   time.Time

	// AliasKey, when non-empty, records AliasKey -> AliasClientID. On the
	// automatic settlement path RepointAlias is true (last write wins); the
	// manual link path never overwrites an existing alias.
	AliasKey      string
	AliasClientID uint
	RepointAlias  bool
}

// ReconciliationRepository defines the interface for statement entry and
// alias persistence operations.
type ReconciliationRepository interface {
	// UpsertEntry creates the entry if no row with its content hash exists,
	// otherwise updates date/description/key/amount in place when changed.
	// The entry's ID is filled in either way. Returns whether a row was created.
	UpsertEntry(ctx context.Context, entry *entity.StatementEntry) (bool, error)

	// FindEntryByID retrieves a statement entry by its ID.
	FindEntryByID(ctx context.Context, id uint) (*entity.StatementEntry, error)

	// FindEntries retrieves statement entries, optionally restricted to
	// unlinked ones, ordered by date descending then ID descending.
	FindEntries(ctx context.Context, onlyUnlinked bool) ([]*entity.StatementEntry, error)

	// LinkAndSettle applies an entry-to-invoice match in one transaction.
	LinkAndSettle(ctx context.Context, params LinkAndSettleParams) error

	// PurgeUnlinked deletes every entry with no invoice link, returning the
	// number of rows removed.
	PurgeUnlinked(ctx context.Context) (int64, error)

	// FindAliasByKey retrieves the alias for a normalized description key, or
	// ErrAliasNotFound.
	FindAliasByKey(ctx context.Context, key string) (*entity.DescriptionAlias, error)
}

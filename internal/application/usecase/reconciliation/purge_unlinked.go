package reconciliation

import (
	"context"

	"github.com/receber-inter/backend/internal/application/adapter"
)

// PurgeUnlinkedOutput represents the result of an administrative purge.
type PurgeUnlinkedOutput struct {
	Removed int64
}

// PurgeUnlinkedUseCase removes every statement entry with no invoice link.
// Linked entries are never touched.
type PurgeUnlinkedUseCase struct {
	reconciliationRepo adapter.ReconciliationRepository
}

// NewPurgeUnlinkedUseCase creates a new PurgeUnlinkedUseCase instance.
func NewPurgeUnlinkedUseCase(reconciliationRepo adapter.ReconciliationRepository) *PurgeUnlinkedUseCase {
	return &PurgeUnlinkedUseCase{
		reconciliationRepo: reconciliationRepo,
	}
}

// Execute deletes all unlinked entries and reports how many were removed.
func (uc *PurgeUnlinkedUseCase) Execute(ctx context.Context) (*PurgeUnlinkedOutput, error) {
	removed, err := uc.reconciliationRepo.PurgeUnlinked(ctx)
	if err != nil {
		return nil, err
	}
	return &PurgeUnlinkedOutput{Removed: removed}, nil
}

package reconciliation

import (
	"context"
	"errors"

	"github.com/receber-inter/backend/internal/application/adapter"
	"github.com/receber-inter/backend/internal/domain/entity"
	domainerror "github.com/receber-inter/backend/internal/domain/error"
	"github.com/receber-inter/backend/internal/domain/valueobject"
)

// ManualLinkInput represents an operator's confirm-and-link request.
type ManualLinkInput struct {
	EntryID   uint
	InvoiceID uint
}

// ManualLinkOutput represents the result of a manual link.
type ManualLinkOutput struct {
	EntryID   uint
	InvoiceID uint
	ClientID  uint
}

// ManualLinkUseCase links a statement entry to an operator-chosen invoice,
// settles it and teaches the system a recurring alias.
type ManualLinkUseCase struct {
	reconciliationRepo adapter.ReconciliationRepository
	invoiceRepo        adapter.InvoiceRepository
}

// NewManualLinkUseCase creates a new ManualLinkUseCase instance.
func NewManualLinkUseCase(
	reconciliationRepo adapter.ReconciliationRepository,
	invoiceRepo adapter.InvoiceRepository,
) *ManualLinkUseCase {
	return &ManualLinkUseCase{
		reconciliationRepo: reconciliationRepo,
		invoiceRepo:        invoiceRepo,
	}
}

// Execute performs the manual link. The invoice is settled as a PIX payment
// dated at the entry's transaction date. An alias is created only when the
// entry's key has no alias yet: manual linking trusts the operator's invoice
// choice but never relabels an alias that may serve other entries correctly.
func (uc *ManualLinkUseCase) Execute(ctx context.Context, input ManualLinkInput) (*ManualLinkOutput, error) {
	entry, err := uc.reconciliationRepo.FindEntryByID(ctx, input.EntryID)
	if err != nil {
		if errors.Is(err, domainerror.ErrEntryNotFound) {
			return nil, domainerror.NewReconciliationError(
				domainerror.ErrCodeEntryNotFound,
				"statement entry not found",
				domainerror.ErrEntryNotFound,
			)
		}
		return nil, err
	}

	invoice, err := uc.invoiceRepo.FindByID(ctx, input.InvoiceID)
	if err != nil {
		if errors.Is(err, domainerror.ErrInvoiceNotFound) {
			return nil, domainerror.NewReconciliationError(
				domainerror.ErrCodeLinkInvoiceNotFound,
				"invoice not found",
				domainerror.ErrInvoiceNotFound,
			)
		}
		return nil, err
	}

	if !invoice.IsOpen() {
		return nil, domainerror.NewReconciliationError(
			domainerror.ErrCodeInvoiceNotLinkable,
			"invoice is not in an open or overdue status",
			domainerror.ErrInvoiceNotLinkable,
		)
	}

	key := entry.DescriptionKey
	if key == "" {
		key = valueobject.NormalizeKey(entry.Description)
	}

	err = uc.reconciliationRepo.LinkAndSettle(ctx, adapter.LinkAndSettleParams{
		EntryID:       entry.ID,
		InvoiceID:     invoice.ID,
		PaymentMethod: entity.PaymentMethodPix,
		PaymentDate:   entry.Date,
		AliasKey:      key,
		AliasClientID: invoice.ClientID,
		RepointAlias:  false,
	})
	if err != nil {
		return nil, err
	}

	return &ManualLinkOutput{
		EntryID:   entry.ID,
		InvoiceID: invoice.ID,
		ClientID:  invoice.ClientID,
	}, nil
}

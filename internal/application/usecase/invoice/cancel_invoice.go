package invoice

import (
	"context"
	"errors"
	"log/slog"

	"github.com/receber-inter/backend/internal/application/adapter"
	"github.com/receber-inter/backend/internal/domain/entity"
	domainerror "github.com/receber-inter/backend/internal/domain/error"
)

// CancelInvoiceInput represents a cancellation request.
type CancelInvoiceInput struct {
	InvoiceID uint
}

// CancelInvoiceOutput represents the result of a cancellation.
type CancelInvoiceOutput struct {
	InvoiceID uint
}

// CancelInvoiceUseCase cancels an issued charge at the bank and records the
// outcome on the invoice.
type CancelInvoiceUseCase struct {
	invoiceRepo adapter.InvoiceRepository
	bankService adapter.BankChargeService
}

// NewCancelInvoiceUseCase creates a new CancelInvoiceUseCase instance.
func NewCancelInvoiceUseCase(
	invoiceRepo adapter.InvoiceRepository,
	bankService adapter.BankChargeService,
) *CancelInvoiceUseCase {
	return &CancelInvoiceUseCase{
		invoiceRepo: invoiceRepo,
		bankService: bankService,
	}
}

// Execute cancels the charge. On bank failure the invoice keeps its status
// and the failure reason is recorded on it.
func (uc *CancelInvoiceUseCase) Execute(ctx context.Context, input CancelInvoiceInput) (*CancelInvoiceOutput, error) {
	invoice, err := uc.invoiceRepo.FindByID(ctx, input.InvoiceID)
	if err != nil {
		if errors.Is(err, domainerror.ErrInvoiceNotFound) {
			return nil, domainerror.NewInvoiceError(
				domainerror.ErrCodeInvoiceNotFound,
				"invoice not found",
				domainerror.ErrInvoiceNotFound,
			)
		}
		return nil, err
	}

	if invoice.RequestCode == "" && invoice.OurNumber == "" {
		return nil, domainerror.NewInvoiceError(
			domainerror.ErrCodeInvoiceNotCancelable,
			"invoice has no bank identifiers to cancel",
			domainerror.ErrInvoiceNotCancelable,
		)
	}

	if err := uc.bankService.CancelCharge(ctx, invoice.RequestCode, invoice.OurNumber); err != nil {
		slog.Error("Bank cancellation failed", "invoiceID", invoice.ID, "error", err)

		invoice.ErrorMessage = err.Error()
		if updateErr := uc.invoiceRepo.Update(ctx, invoice); updateErr != nil {
			slog.Error("Failed to record cancellation error", "invoiceID", invoice.ID, "error", updateErr)
		}

		return nil, domainerror.NewInvoiceError(
			domainerror.ErrCodeBankCancelFailed,
			"bank rejected the cancellation",
			err,
		)
	}

	invoice.Status = entity.InvoiceStatusCanceled
	invoice.ErrorMessage = ""
	if err := uc.invoiceRepo.Update(ctx, invoice); err != nil {
		return nil, err
	}

	return &CancelInvoiceOutput{InvoiceID: invoice.ID}, nil
}

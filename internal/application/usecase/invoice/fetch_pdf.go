package invoice

import (
	"context"
	"errors"

	"github.com/receber-inter/backend/internal/application/adapter"
	domainerror "github.com/receber-inter/backend/internal/domain/error"
)

// FetchPDFInput represents a payment slip download request.
type FetchPDFInput struct {
	InvoiceID uint
}

// FetchPDFOutput carries the rendered payment slip.
type FetchPDFOutput struct {
	InvoiceID uint
	PDF       []byte
}

// FetchPDFUseCase downloads the rendered boleto PDF from the bank.
type FetchPDFUseCase struct {
	invoiceRepo adapter.InvoiceRepository
	bankService adapter.BankChargeService
}

// NewFetchPDFUseCase creates a new FetchPDFUseCase instance.
func NewFetchPDFUseCase(
	invoiceRepo adapter.InvoiceRepository,
	bankService adapter.BankChargeService,
) *FetchPDFUseCase {
	return &FetchPDFUseCase{
		invoiceRepo: invoiceRepo,
		bankService: bankService,
	}
}

// Execute fetches the slip for an invoice that was issued at the bank.
func (uc *FetchPDFUseCase) Execute(ctx context.Context, input FetchPDFInput) (*FetchPDFOutput, error) {
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
			"invoice has no bank identifiers",
			domainerror.ErrInvoiceNotCancelable,
		)
	}

	pdf, err := uc.bankService.FetchPDF(ctx, invoice.RequestCode, invoice.OurNumber)
	if err != nil {
		return nil, domainerror.NewInvoiceError(
			domainerror.ErrCodeBankPDFFailed,
			"bank slip download failed",
			err,
		)
	}

	return &FetchPDFOutput{InvoiceID: invoice.ID, PDF: pdf}, nil
}

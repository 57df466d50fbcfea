// Package invoice contains boleto management use cases.
package invoice

import (
	"context"
	"log/slog"
	"time"

	"github.com/receber-inter/backend/internal/application/adapter"
	"github.com/receber-inter/backend/internal/domain/entity"
	domainerror "github.com/receber-inter/backend/internal/domain/error"
)

// GenerateInvoicesInput represents the input for batch invoice generation.
type GenerateInvoicesInput struct {
	Year      int
	Month     int
	ClientIDs []uint
}

// GenerateResultStatus classifies the outcome for one client.
type GenerateResultStatus string

const (
	GenerateResultIssued  GenerateResultStatus = "issued"
	GenerateResultSkipped GenerateResultStatus = "skipped"
	GenerateResultFailed  GenerateResultStatus = "failed"
)

// GenerateResult is the per-client outcome of a generation batch.
type GenerateResult struct {
	ClientID   uint
	ClientName string
	InvoiceID  uint
	Status     GenerateResultStatus
	Error      string
}

// GenerateInvoicesOutput represents the result of a generation batch.
type GenerateInvoicesOutput struct {
	Results []GenerateResult
	Issued  int
	Skipped int
	Failed  int
}

// GenerateInvoicesUseCase issues one boleto per selected client for a
// reference month through the bank charge API.
type GenerateInvoicesUseCase struct {
	invoiceRepo adapter.InvoiceRepository
	clientRepo  adapter.ClientRepository
	bankService adapter.BankChargeService
}

// NewGenerateInvoicesUseCase creates a new GenerateInvoicesUseCase instance.
func NewGenerateInvoicesUseCase(
	invoiceRepo adapter.InvoiceRepository,
	clientRepo adapter.ClientRepository,
	bankService adapter.BankChargeService,
) *GenerateInvoicesUseCase {
	return &GenerateInvoicesUseCase{
		invoiceRepo: invoiceRepo,
		clientRepo:  clientRepo,
		bankService: bankService,
	}
}

// Execute generates invoices for the selected clients. A client that already
// has an invoice for the reference month is skipped; a bank API failure marks
// that client's invoice as errored without aborting the batch.
func (uc *GenerateInvoicesUseCase) Execute(ctx context.Context, input GenerateInvoicesInput) (*GenerateInvoicesOutput, error) {
	if input.Month < 1 || input.Month > 12 || input.Year < 2000 || input.Year > 2100 {
		return nil, domainerror.NewInvoiceError(
			domainerror.ErrCodeInvalidReferenceMonth,
			"reference month must be within 2000-01 .. 2100-12",
			domainerror.ErrInvalidReferenceMonth,
		)
	}

	clients, err := uc.clientRepo.FindByIDs(ctx, input.ClientIDs)
	if err != nil {
		return nil, err
	}

	output := &GenerateInvoicesOutput{}

	for _, client := range clients {
		result := uc.generateForClient(ctx, client, input.Year, input.Month)
		output.Results = append(output.Results, result)

		switch result.Status {
		case GenerateResultIssued:
			output.Issued++
		case GenerateResultSkipped:
			output.Skipped++
		case GenerateResultFailed:
			output.Failed++
		}
	}

	return output, nil
}

func (uc *GenerateInvoicesUseCase) generateForClient(ctx context.Context, client *entity.Client, year, month int) GenerateResult {
	result := GenerateResult{ClientID: client.ID, ClientName: client.Name}

	if _, err := uc.invoiceRepo.FindByClientAndReference(ctx, client.ID, year, month); err == nil {
		result.Status = GenerateResultSkipped
		return result
	}

	dueDate := dueDateFor(year, month, client.DueDay)
	invoice := entity.NewInvoice(client.ID, year, month, dueDate, client.NominalAmount)

	if err := uc.invoiceRepo.Create(ctx, invoice); err != nil {
		result.Status = GenerateResultFailed
		result.Error = err.Error()
		return result
	}
	result.InvoiceID = invoice.ID

	issued, err := uc.bankService.IssueCharge(ctx, client, dueDate, invoice.Amount)
	if err != nil {
		slog.Error("Bank charge issuance failed",
			"clientID", client.ID,
			"invoiceID", invoice.ID,
			"error", err,
		)
		invoice.Status = entity.InvoiceStatusError
		invoice.ErrorMessage = err.Error()
		if updateErr := uc.invoiceRepo.Update(ctx, invoice); updateErr != nil {
			slog.Error("Failed to record issuance error", "invoiceID", invoice.ID, "error", updateErr)
		}
		result.Status = GenerateResultFailed
		result.Error = err.Error()
		return result
	}

	invoice.OurNumber = issued.OurNumber
	invoice.DigitableLine = issued.DigitableLine
	invoice.Barcode = issued.Barcode
	invoice.TxID = issued.TxID
	invoice.RequestCode = issued.RequestCode
	invoice.Status = entity.InvoiceStatusIssued

	if err := uc.invoiceRepo.Update(ctx, invoice); err != nil {
		result.Status = GenerateResultFailed
		result.Error = err.Error()
		return result
	}

	result.Status = GenerateResultIssued
	return result
}

// dueDateFor computes the due date for a reference month, clamping the
// client's due day to the month's last day.
func dueDateFor(year, month, dueDay int) time.Time {
	lastDay := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
	day := dueDay
	if day > lastDay {
		day = lastDay
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

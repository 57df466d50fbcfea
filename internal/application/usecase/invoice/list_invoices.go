package invoice

import (
	"context"
	"log/slog"
	"time"

	"github.com/receber-inter/backend/internal/application/adapter"
	"github.com/receber-inter/backend/internal/domain/entity"
)

// ListInvoicesInput represents the input for listing invoices.
type ListInvoicesInput struct {
	Status *entity.InvoiceStatus
}

// InvoiceWithClientName pairs an invoice with its client's display name.
type InvoiceWithClientName struct {
	Invoice    *entity.Invoice
	ClientName string
}

// ListInvoicesOutput represents the invoice listing.
type ListInvoicesOutput struct {
	Invoices []InvoiceWithClientName
}

// ListInvoicesUseCase lists invoices newest first. Before listing it sweeps
// issued invoices past their due date into the overdue status.
type ListInvoicesUseCase struct {
	invoiceRepo adapter.InvoiceRepository
	clientRepo  adapter.ClientRepository
}

// NewListInvoicesUseCase creates a new ListInvoicesUseCase instance.
func NewListInvoicesUseCase(
	invoiceRepo adapter.InvoiceRepository,
	clientRepo adapter.ClientRepository,
) *ListInvoicesUseCase {
	return &ListInvoicesUseCase{
		invoiceRepo: invoiceRepo,
		clientRepo:  clientRepo,
	}
}

// Execute runs the overdue sweep and returns the filtered listing.
func (uc *ListInvoicesUseCase) Execute(ctx context.Context, input ListInvoicesInput) (*ListInvoicesOutput, error) {
	if changed, err := uc.invoiceRepo.MarkOverdue(ctx, time.Now().UTC()); err != nil {
		slog.Warn("Overdue sweep failed", "error", err)
	} else if changed > 0 {
		slog.Info("Marked invoices overdue", "count", changed)
	}

	invoices, err := uc.invoiceRepo.FindByFilter(ctx, input.Status)
	if err != nil {
		return nil, err
	}

	clientIDs := make([]uint, 0, len(invoices))
	seen := make(map[uint]bool, len(invoices))
	for _, invoice := range invoices {
		if !seen[invoice.ClientID] {
			seen[invoice.ClientID] = true
			clientIDs = append(clientIDs, invoice.ClientID)
		}
	}

	clients, err := uc.clientRepo.FindByIDs(ctx, clientIDs)
	if err != nil {
		return nil, err
	}
	names := make(map[uint]string, len(clients))
	for _, client := range clients {
		names[client.ID] = client.Name
	}

	result := make([]InvoiceWithClientName, len(invoices))
	for i, invoice := range invoices {
		result[i] = InvoiceWithClientName{
			Invoice:    invoice,
			ClientName: names[invoice.ClientID],
		}
	}

	return &ListInvoicesOutput{Invoices: result}, nil
}

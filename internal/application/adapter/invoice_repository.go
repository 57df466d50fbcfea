package adapter

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/receber-inter/backend/internal/domain/entity"
)

// InvoiceWithClient pairs an invoice with its client's display name, used by
// suggestion ranking to score debtor-name similarity.
type InvoiceWithClient struct {
	Invoice    *entity.Invoice
	ClientName string
}

// InvoiceRepository defines the interface for invoice persistence operations.
type InvoiceRepository interface {
	// Create persists a new invoice and fills in its ID.
	Create(ctx context.Context, invoice *entity.Invoice) error

	// Update persists changes to an existing invoice.
	Update(ctx context.Context, invoice *entity.Invoice) error

	// FindByID retrieves an invoice by its ID.
	FindByID(ctx context.Context, id uint) (*entity.Invoice, error)

	// FindByClientAndReference retrieves the invoice for a client and
	// reference month, or ErrInvoiceNotFound.
	FindByClientAndReference(ctx context.Context, clientID uint, year, month int) (*entity.Invoice, error)

	// FindByFilter retrieves invoices newest first, optionally filtered by status.
	FindByFilter(ctx context.Context, status *entity.InvoiceStatus) ([]*entity.Invoice, error)

	// FindOpenByClientAndAmount retrieves a client's open/overdue invoices whose
	// amount exactly equals the given value, ordered by due date then ID.
	FindOpenByClientAndAmount(ctx context.Context, clientID uint, amount decimal.Decimal) ([]*entity.Invoice, error)

	// FindOpenWithClients retrieves all open/overdue invoices joined with their
	// client names, ordered by ID.
	FindOpenWithClients(ctx context.Context) ([]InvoiceWithClient, error)

	// Settle transitions an invoice to paid, updating exactly the status,
	// payment method and payment date columns.
	Settle(ctx context.Context, id uint, method entity.PaymentMethod, paymentDate time.Time) error

	// MarkOverdue flips issued invoices with a due date before the given day to
	// overdue, returning the number of rows changed.
	MarkOverdue(ctx context.Context, today time.Time) (int64, error)
}

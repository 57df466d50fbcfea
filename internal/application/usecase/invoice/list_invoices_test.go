package invoice

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/receber-inter/backend/internal/domain/entity"
)

func TestListInvoicesUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("sweeps overdue invoices before listing", func(t *testing.T) {
		invoiceRepo := newFakeInvoiceRepo()
		clientRepo := newFakeClientRepo()
		addClient(clientRepo, 1, "Empresa Um", "100.00", 10)

		past := entity.NewInvoice(1, 2025, 1, time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC), decimal.RequireFromString("100.00"))
		past.Status = entity.InvoiceStatusIssued
		future := entity.NewInvoice(1, 2099, 1, time.Date(2099, 1, 10, 0, 0, 0, 0, time.UTC), decimal.RequireFromString("100.00"))
		future.Status = entity.InvoiceStatusIssued
		for _, invoice := range []*entity.Invoice{past, future} {
			if err := invoiceRepo.Create(ctx, invoice); err != nil {
				t.Fatal(err)
			}
		}

		uc := NewListInvoicesUseCase(invoiceRepo, clientRepo)
		output, err := uc.Execute(ctx, ListInvoicesInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Invoices) != 2 {
			t.Fatalf("expected 2 invoices, got %d", len(output.Invoices))
		}

		statuses := map[uint]entity.InvoiceStatus{}
		for _, item := range output.Invoices {
			statuses[item.Invoice.ID] = item.Invoice.Status
			if item.ClientName != "Empresa Um" {
				t.Errorf("client name not joined: %+v", item)
			}
		}
		if statuses[past.ID] != entity.InvoiceStatusOverdue {
			t.Errorf("past-due invoice must become overdue, got %s", statuses[past.ID])
		}
		if statuses[future.ID] != entity.InvoiceStatusIssued {
			t.Errorf("future invoice must stay issued, got %s", statuses[future.ID])
		}
	})

	t.Run("filters by status", func(t *testing.T) {
		invoiceRepo := newFakeInvoiceRepo()
		clientRepo := newFakeClientRepo()
		addClient(clientRepo, 1, "Empresa Um", "100.00", 10)

		paid := entity.NewInvoice(1, 2099, 1, time.Date(2099, 1, 10, 0, 0, 0, 0, time.UTC), decimal.RequireFromString("100.00"))
		paid.Status = entity.InvoiceStatusPaid
		open := entity.NewInvoice(1, 2099, 2, time.Date(2099, 2, 10, 0, 0, 0, 0, time.UTC), decimal.RequireFromString("100.00"))
		open.Status = entity.InvoiceStatusIssued
		for _, invoice := range []*entity.Invoice{paid, open} {
			if err := invoiceRepo.Create(ctx, invoice); err != nil {
				t.Fatal(err)
			}
		}

		status := entity.InvoiceStatusPaid
		uc := NewListInvoicesUseCase(invoiceRepo, clientRepo)
		output, err := uc.Execute(ctx, ListInvoicesInput{Status: &status})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Invoices) != 1 || output.Invoices[0].Invoice.ID != paid.ID {
			t.Errorf("expected only the paid invoice, got %+v", output.Invoices)
		}
	})
}

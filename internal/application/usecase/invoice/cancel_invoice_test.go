package invoice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/receber-inter/backend/internal/domain/entity"
	domainerror "github.com/receber-inter/backend/internal/domain/error"
)

func issuedInvoice(t *testing.T, repo *fakeInvoiceRepo) *entity.Invoice {
	t.Helper()
	invoice := entity.NewInvoice(1, 2025, 3, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), decimal.RequireFromString("100.00"))
	invoice.Status = entity.InvoiceStatusIssued
	invoice.OurNumber = "00123456789"
	invoice.RequestCode = "req-1"
	if err := repo.Create(context.Background(), invoice); err != nil {
		t.Fatal(err)
	}
	return invoice
}

func TestCancelInvoiceUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("cancels the charge and clears the error message", func(t *testing.T) {
		invoiceRepo := newFakeInvoiceRepo()
		invoice := issuedInvoice(t, invoiceRepo)
		invoiceRepo.invoices[invoice.ID].ErrorMessage = "previous failure"
		bank := &fakeBankService{}

		uc := NewCancelInvoiceUseCase(invoiceRepo, bank)
		if _, err := uc.Execute(ctx, CancelInvoiceInput{InvoiceID: invoice.ID}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if bank.canceled != 1 {
			t.Errorf("expected 1 bank cancellation, got %d", bank.canceled)
		}
		stored := invoiceRepo.invoices[invoice.ID]
		if stored.Status != entity.InvoiceStatusCanceled {
			t.Errorf("expected canceled status, got %s", stored.Status)
		}
		if stored.ErrorMessage != "" {
			t.Errorf("error message must be cleared, got %q", stored.ErrorMessage)
		}
	})

	t.Run("bank failure keeps the status and records the reason", func(t *testing.T) {
		invoiceRepo := newFakeInvoiceRepo()
		invoice := issuedInvoice(t, invoiceRepo)
		bank := &fakeBankService{failCancel: true}

		uc := NewCancelInvoiceUseCase(invoiceRepo, bank)
		_, err := uc.Execute(ctx, CancelInvoiceInput{InvoiceID: invoice.ID})

		var coded *domainerror.InvoiceError
		if !errors.As(err, &coded) || coded.Code != domainerror.ErrCodeBankCancelFailed {
			t.Fatalf("expected bank cancel failure code, got %v", err)
		}

		stored := invoiceRepo.invoices[invoice.ID]
		if stored.Status != entity.InvoiceStatusIssued {
			t.Errorf("status must not change on failure, got %s", stored.Status)
		}
		if stored.ErrorMessage == "" {
			t.Error("failure reason must be recorded")
		}
	})

	t.Run("rejects invoices without bank identifiers", func(t *testing.T) {
		invoiceRepo := newFakeInvoiceRepo()
		invoice := entity.NewInvoice(1, 2025, 3, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), decimal.RequireFromString("100.00"))
		if err := invoiceRepo.Create(ctx, invoice); err != nil {
			t.Fatal(err)
		}

		uc := NewCancelInvoiceUseCase(invoiceRepo, &fakeBankService{})
		_, err := uc.Execute(ctx, CancelInvoiceInput{InvoiceID: invoice.ID})
		if !errors.Is(err, domainerror.ErrInvoiceNotCancelable) {
			t.Errorf("expected ErrInvoiceNotCancelable, got %v", err)
		}
	})

	t.Run("rejects an unknown invoice", func(t *testing.T) {
		uc := NewCancelInvoiceUseCase(newFakeInvoiceRepo(), &fakeBankService{})
		_, err := uc.Execute(ctx, CancelInvoiceInput{InvoiceID: 99})
		if !errors.Is(err, domainerror.ErrInvoiceNotFound) {
			t.Errorf("expected ErrInvoiceNotFound, got %v", err)
		}
	})
}

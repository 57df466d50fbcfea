package invoice

import (
	"bytes"
	"context"
	"errors"
	"testing"

	domainerror "github.com/receber-inter/backend/internal/domain/error"
)

func TestFetchPDFUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("downloads the slip for an issued invoice", func(t *testing.T) {
		invoiceRepo := newFakeInvoiceRepo()
		invoice := issuedInvoice(t, invoiceRepo)

		uc := NewFetchPDFUseCase(invoiceRepo, &fakeBankService{})
		output, err := uc.Execute(ctx, FetchPDFInput{InvoiceID: invoice.ID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !bytes.HasPrefix(output.PDF, []byte("%PDF")) {
			t.Errorf("expected a PDF payload, got %q", output.PDF)
		}
	})

	t.Run("rejects an invoice that was never issued", func(t *testing.T) {
		invoiceRepo := newFakeInvoiceRepo()
		invoice := issuedInvoice(t, invoiceRepo)
		invoiceRepo.invoices[invoice.ID].OurNumber = ""
		invoiceRepo.invoices[invoice.ID].RequestCode = ""

		uc := NewFetchPDFUseCase(invoiceRepo, &fakeBankService{})
		_, err := uc.Execute(ctx, FetchPDFInput{InvoiceID: invoice.ID})
		if !errors.Is(err, domainerror.ErrInvoiceNotCancelable) {
			t.Fatalf("expected ErrInvoiceNotCancelable, got %v", err)
		}
	})

	t.Run("wraps a bank download failure", func(t *testing.T) {
		invoiceRepo := newFakeInvoiceRepo()
		invoice := issuedInvoice(t, invoiceRepo)

		uc := NewFetchPDFUseCase(invoiceRepo, &fakeBankService{failPDF: true})
		_, err := uc.Execute(ctx, FetchPDFInput{InvoiceID: invoice.ID})

		var invErr *domainerror.InvoiceError
		if !errors.As(err, &invErr) || invErr.Code != domainerror.ErrCodeBankPDFFailed {
			t.Fatalf("expected code %s, got %v", domainerror.ErrCodeBankPDFFailed, err)
		}
	})

	t.Run("returns not found for an unknown invoice", func(t *testing.T) {
		uc := NewFetchPDFUseCase(newFakeInvoiceRepo(), &fakeBankService{})
		_, err := uc.Execute(ctx, FetchPDFInput{InvoiceID: 99})
		if !errors.Is(err, domainerror.ErrInvoiceNotFound) {
			t.Fatalf("expected ErrInvoiceNotFound, got %v", err)
		}
	})
}

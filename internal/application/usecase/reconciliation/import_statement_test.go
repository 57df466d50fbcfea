package reconciliation

import (
	"context"
	"testing"
	"time"

	"github.com/receber-inter/backend/internal/domain/entity"
)

func TestImportStatementUseCase(t *testing.T) {
	ctx := context.Background()
	dueDate := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	t.Run("end to end alias auto-settlement", func(t *testing.T) {
		store := newFakeStore()
		store.addAlias("empresa exemplo ltda", 7)
		store.addInvoice(31, 7, "199.90", entity.InvoiceStatusIssued, dueDate)

		uc := NewImportStatementUseCase(store, store)
		file := "Data;Tipo;Descricao;Valor\n01/03/2025;PIX;Empresa Exemplo Ltda;199,90\n"

		output, err := uc.Execute(ctx, ImportStatementInput{File: []byte(file)})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.Created != 1 {
			t.Errorf("expected 1 created entry, got %d", output.Created)
		}
		if output.AutoSettled != 1 {
			t.Errorf("expected 1 auto-settlement, got %d", output.AutoSettled)
		}

		invoice := store.invoices[31]
		if invoice.Status != entity.InvoiceStatusPaid {
			t.Errorf("expected invoice paid, got %s", invoice.Status)
		}
		if invoice.PaymentMethod != entity.PaymentMethodPix {
			t.Errorf("expected pix payment method, got %q", invoice.PaymentMethod)
		}
		wantDate := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
		if invoice.PaymentDate == nil || !invoice.PaymentDate.Equal(wantDate) {
			t.Errorf("expected payment date %v, got %v", wantDate, invoice.PaymentDate)
		}
	})

	t.Run("import is idempotent", func(t *testing.T) {
		store := newFakeStore()
		uc := NewImportStatementUseCase(store, store)
		file := "Data;Tipo;Descricao;Valor\n01/03/2025;PIX;Empresa A;10,00\n02/03/2025;PIX;Empresa B;20,00\n"

		first, err := uc.Execute(ctx, ImportStatementInput{File: []byte(file)})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if first.Created != 2 {
			t.Fatalf("expected 2 created entries, got %d", first.Created)
		}

		second, err := uc.Execute(ctx, ImportStatementInput{File: []byte(file)})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if second.Created != 0 {
			t.Errorf("second import must create zero entries, got %d", second.Created)
		}
		if second.Imported != 2 {
			t.Errorf("second import should still process 2 rows, got %d", second.Imported)
		}
		if len(store.entries) != 2 {
			t.Errorf("expected 2 stored entries, got %d", len(store.entries))
		}
	})

	t.Run("exact amount match settles the earliest due invoice only", func(t *testing.T) {
		store := newFakeStore()
		store.addAlias("empresa exemplo ltda", 7)
		later := store.addInvoice(41, 7, "199.90", entity.InvoiceStatusIssued, dueDate.AddDate(0, 1, 0))
		earlier := store.addInvoice(42, 7, "199.90", entity.InvoiceStatusIssued, dueDate)
		other := store.addInvoice(43, 7, "500.00", entity.InvoiceStatusIssued, dueDate)

		uc := NewImportStatementUseCase(store, store)
		file := "Data;Tipo;Descricao;Valor\n01/03/2025;PIX;Empresa Exemplo Ltda;199,90\n"

		output, err := uc.Execute(ctx, ImportStatementInput{File: []byte(file)})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.AutoSettled != 1 {
			t.Fatalf("expected 1 auto-settlement, got %d", output.AutoSettled)
		}

		if earlier.Status != entity.InvoiceStatusPaid {
			t.Error("earliest due invoice should have been settled")
		}
		if later.Status != entity.InvoiceStatusIssued {
			t.Error("later invoice must not be touched")
		}
		if other.Status != entity.InvoiceStatusIssued {
			t.Error("different-amount invoice must not be touched")
		}
	})

	t.Run("no exact amount leaves entry unlinked", func(t *testing.T) {
		store := newFakeStore()
		store.addAlias("empresa exemplo ltda", 7)
		store.addInvoice(51, 7, "200.00", entity.InvoiceStatusIssued, dueDate)

		uc := NewImportStatementUseCase(store, store)
		file := "Data;Tipo;Descricao;Valor\n01/03/2025;PIX;Empresa Exemplo Ltda;199,90\n"

		output, err := uc.Execute(ctx, ImportStatementInput{File: []byte(file)})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.AutoSettled != 0 {
			t.Errorf("expected 0 auto-settlements, got %d", output.AutoSettled)
		}
		for _, entry := range store.entries {
			if entry.IsLinked() {
				t.Error("entry must remain unlinked without an exact-amount invoice")
			}
		}
	})

	t.Run("pre-linked entry settles its open invoice and learns an alias", func(t *testing.T) {
		store := newFakeStore()
		invoice := store.addInvoice(61, 9, "75.00", entity.InvoiceStatusOverdue, dueDate)

		// Simulate an entry linked on a previous import whose invoice is
		// still open.
		uc := NewImportStatementUseCase(store, store)
		file := "Data;Tipo;Descricao;Valor\n05/03/2025;PIX;Cliente Nove;75,00\n"
		if _, err := uc.Execute(ctx, ImportStatementInput{File: []byte(file)}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		invoiceID := invoice.ID
		for _, entry := range store.entries {
			entry.InvoiceID = &invoiceID
		}
		invoice.Status = entity.InvoiceStatusOverdue

		output, err := uc.Execute(ctx, ImportStatementInput{File: []byte(file)})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.AutoSettled != 1 {
			t.Fatalf("expected 1 auto-settlement, got %d", output.AutoSettled)
		}
		if invoice.Status != entity.InvoiceStatusPaid {
			t.Errorf("expected invoice paid, got %s", invoice.Status)
		}
		alias, ok := store.aliases["cliente nove"]
		if !ok {
			t.Fatal("expected alias learned for the entry's key")
		}
		if alias.ClientID != 9 {
			t.Errorf("expected alias to point at client 9, got %d", alias.ClientID)
		}
	})

	t.Run("settled invoice is not settled twice on re-import", func(t *testing.T) {
		store := newFakeStore()
		store.addAlias("empresa exemplo ltda", 7)
		store.addInvoice(71, 7, "199.90", entity.InvoiceStatusIssued, dueDate)

		uc := NewImportStatementUseCase(store, store)
		file := "Data;Tipo;Descricao;Valor\n01/03/2025;PIX;Empresa Exemplo Ltda;199,90\n"

		if _, err := uc.Execute(ctx, ImportStatementInput{File: []byte(file)}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := uc.Execute(ctx, ImportStatementInput{File: []byte(file)})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if second.AutoSettled != 0 {
			t.Errorf("paid invoice must not settle again, got %d", second.AutoSettled)
		}
	})
}

package invoice

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/receber-inter/backend/internal/domain/entity"
	domainerror "github.com/receber-inter/backend/internal/domain/error"
)

func reminderFixture(t *testing.T) (*fakeInvoiceRepo, *fakeClientRepo, *entity.Invoice) {
	t.Helper()
	invoiceRepo := newFakeInvoiceRepo()
	clientRepo := newFakeClientRepo()

	client := addClient(clientRepo, 1, "Empresa Exemplo Ltda", "1234.56", 10)
	client.AreaCode = "11"
	client.Phone = "98765-4321"

	invoice := entity.NewInvoice(1, 2025, 3, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), decimal.RequireFromString("1234.56"))
	invoice.Status = entity.InvoiceStatusIssued
	invoice.Barcode = "23790000001234500000012345"
	invoice.DigitableLine = "23790.00000 12345.000000 00000.123456 0 00000000000000"
	if err := invoiceRepo.Create(context.Background(), invoice); err != nil {
		t.Fatal(err)
	}
	return invoiceRepo, clientRepo, invoice
}

func TestSendReminderUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("sends greeting, pix instructions and barcode in order", func(t *testing.T) {
		invoiceRepo, clientRepo, invoice := reminderFixture(t)
		relay := &fakeMessaging{}

		uc := NewSendReminderUseCase(invoiceRepo, clientRepo, relay, "00.000.000/0001-00")
		uc.now = func() time.Time { return time.Date(2025, 3, 5, 9, 0, 0, 0, time.UTC) }

		output, err := uc.Execute(ctx, SendReminderInput{InvoiceID: invoice.ID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.Phone != "5511987654321@s.whatsapp.net" {
			t.Errorf("unexpected phone %q", output.Phone)
		}
		if len(relay.sent) != 4 {
			t.Fatalf("expected 4 messages, got %d", len(relay.sent))
		}

		greeting := relay.sent[0]
		if !strings.HasPrefix(greeting, "Bom dia!") {
			t.Errorf("morning greeting expected, got %q", greeting)
		}
		if !strings.Contains(greeting, "10/03/2025") {
			t.Errorf("due date missing from %q", greeting)
		}
		if !strings.Contains(greeting, "R$ 1.234,56") {
			t.Errorf("formatted amount missing from %q", greeting)
		}

		if relay.sent[1] != "Segue a chave pix cnpj" {
			t.Errorf("unexpected second message %q", relay.sent[1])
		}
		if relay.sent[2] != "00.000.000/0001-00" {
			t.Errorf("unexpected pix key message %q", relay.sent[2])
		}
		if relay.sent[3] != invoice.Barcode {
			t.Errorf("expected barcode last, got %q", relay.sent[3])
		}
	})

	t.Run("falls back to the digitable line without a barcode", func(t *testing.T) {
		invoiceRepo, clientRepo, invoice := reminderFixture(t)
		invoiceRepo.invoices[invoice.ID].Barcode = ""
		relay := &fakeMessaging{}

		uc := NewSendReminderUseCase(invoiceRepo, clientRepo, relay, "pix-key")
		if _, err := uc.Execute(ctx, SendReminderInput{InvoiceID: invoice.ID}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if last := relay.sent[len(relay.sent)-1]; last != invoice.DigitableLine {
			t.Errorf("expected digitable line last, got %q", last)
		}
	})

	t.Run("stops at the first relay failure", func(t *testing.T) {
		invoiceRepo, clientRepo, invoice := reminderFixture(t)
		relay := &fakeMessaging{failAfter: 2}

		uc := NewSendReminderUseCase(invoiceRepo, clientRepo, relay, "pix-key")
		output, err := uc.Execute(ctx, SendReminderInput{InvoiceID: invoice.ID})
		if err == nil {
			t.Fatal("expected an error")
		}

		var coded *domainerror.InvoiceError
		if !errors.As(err, &coded) || coded.Code != domainerror.ErrCodeReminderFailed {
			t.Errorf("expected reminder failure code, got %v", err)
		}
		if len(relay.sent) != 1 {
			t.Errorf("expected dispatch to stop after 1 delivery, got %d", len(relay.sent))
		}
		if len(output.Steps) != 2 || output.Steps[1].Sent {
			t.Errorf("failed step must be recorded unsent: %+v", output.Steps)
		}
	})

	t.Run("rejects clients without a usable phone", func(t *testing.T) {
		invoiceRepo, clientRepo, invoice := reminderFixture(t)
		client := clientRepo.clients[1]
		client.AreaCode = ""
		client.Phone = ""

		uc := NewSendReminderUseCase(invoiceRepo, clientRepo, &fakeMessaging{}, "pix-key")
		_, err := uc.Execute(ctx, SendReminderInput{InvoiceID: invoice.ID})
		if !errors.Is(err, domainerror.ErrReminderNoPhone) {
			t.Errorf("expected ErrReminderNoPhone, got %v", err)
		}
	})
}

func TestGreetingFor(t *testing.T) {
	cases := []struct {
		hour int
		want string
	}{
		{0, "Bom dia!"},
		{11, "Bom dia!"},
		{12, "Boa tarde!"},
		{17, "Boa tarde!"},
		{18, "Boa noite!"},
		{23, "Boa noite!"},
	}
	for _, tc := range cases {
		now := time.Date(2025, 3, 5, tc.hour, 30, 0, 0, time.UTC)
		if got := greetingFor(now); got != tc.want {
			t.Errorf("greetingFor(hour=%d) = %q, want %q", tc.hour, got, tc.want)
		}
	}
}

func TestFormatBrazilianAmount(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"0", "0,00"},
		{"199.9", "199,90"},
		{"1234.56", "1.234,56"},
		{"1234567.89", "1.234.567,89"},
		{"-1234.5", "-1.234,50"},
	}
	for _, tc := range cases {
		got := formatBrazilianAmount(decimal.RequireFromString(tc.in))
		if got != tc.want {
			t.Errorf("formatBrazilianAmount(%s) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

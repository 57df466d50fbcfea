package invoice

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/receber-inter/backend/internal/application/adapter"
	"github.com/receber-inter/backend/internal/domain/entity"
	domainerror "github.com/receber-inter/backend/internal/domain/error"
)

// SendReminderInput represents a payment reminder dispatch request.
type SendReminderInput struct {
	InvoiceID uint
}

// ReminderStep records one message posted to the relay.
type ReminderStep struct {
	Content string
	Sent    bool
}

// SendReminderOutput represents the result of a reminder dispatch.
type SendReminderOutput struct {
	InvoiceID uint
	Phone     string
	Steps     []ReminderStep
}

// SendReminderUseCase dispatches a boleto payment reminder to the client's
// WhatsApp number: a time-of-day greeting with due date and amount, the PIX
// key, and the digitable line when present.
type SendReminderUseCase struct {
	invoiceRepo adapter.InvoiceRepository
	clientRepo  adapter.ClientRepository
	messaging   adapter.MessagingService
	pixKey      string
	now         func() time.Time
}

// NewSendReminderUseCase creates a new SendReminderUseCase instance.
func NewSendReminderUseCase(
	invoiceRepo adapter.InvoiceRepository,
	clientRepo adapter.ClientRepository,
	messaging adapter.MessagingService,
	pixKey string,
) *SendReminderUseCase {
	return &SendReminderUseCase{
		invoiceRepo: invoiceRepo,
		clientRepo:  clientRepo,
		messaging:   messaging,
		pixKey:      pixKey,
		now:         time.Now,
	}
}

// Execute sends the reminder messages in order, stopping at the first relay
// failure.
func (uc *SendReminderUseCase) Execute(ctx context.Context, input SendReminderInput) (*SendReminderOutput, error) {
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

	client, err := uc.clientRepo.FindByID(ctx, invoice.ClientID)
	if err != nil {
		return nil, err
	}

	phone := formatWhatsAppPhone(client)
	if phone == "" {
		return nil, domainerror.NewInvoiceError(
			domainerror.ErrCodeReminderNoPhone,
			"client has no valid phone number",
			domainerror.ErrReminderNoPhone,
		)
	}

	messages := []string{
		fmt.Sprintf("%s Segue o boleto de %s com vencimento em %s no valor de R$ %s.",
			greetingFor(uc.now()),
			client.Name,
			invoice.DueDate.Format("02/01/2006"),
			formatBrazilianAmount(invoice.Amount),
		),
		"Segue a chave pix cnpj",
		uc.pixKey,
	}
	if code := digitableCode(invoice); code != "" {
		messages = append(messages, code)
	}

	output := &SendReminderOutput{InvoiceID: invoice.ID, Phone: phone}
	for _, message := range messages {
		if err := uc.messaging.SendMessage(ctx, phone, message); err != nil {
			output.Steps = append(output.Steps, ReminderStep{Content: message, Sent: false})
			return output, domainerror.NewInvoiceError(
				domainerror.ErrCodeReminderFailed,
				"messaging relay rejected the reminder",
				err,
			)
		}
		output.Steps = append(output.Steps, ReminderStep{Content: message, Sent: true})
	}

	return output, nil
}

// digitableCode picks the code the client can copy to pay: the barcode when
// present, else the digitable line.
func digitableCode(invoice *entity.Invoice) string {
	if invoice.Barcode != "" {
		return invoice.Barcode
	}
	return invoice.DigitableLine
}

// greetingFor returns the Brazilian time-of-day salutation.
func greetingFor(now time.Time) string {
	switch hour := now.Hour(); {
	case hour < 12:
		return "Bom dia!"
	case hour < 18:
		return "Boa tarde!"
	default:
		return "Boa noite!"
	}
}

// formatBrazilianAmount renders 1234.56 as "1.234,56".
func formatBrazilianAmount(amount decimal.Decimal) string {
	fixed := amount.StringFixed(2)

	negative := strings.HasPrefix(fixed, "-")
	fixed = strings.TrimPrefix(fixed, "-")

	intPart := fixed[:len(fixed)-3]
	centsPart := fixed[len(fixed)-2:]

	var groups []string
	for len(intPart) > 3 {
		groups = append([]string{intPart[len(intPart)-3:]}, groups...)
		intPart = intPart[:len(intPart)-3]
	}
	groups = append([]string{intPart}, groups...)

	result := strings.Join(groups, ".") + "," + centsPart
	if negative {
		result = "-" + result
	}
	return result
}

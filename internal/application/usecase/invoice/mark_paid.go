package invoice

import (
	"context"
	"errors"
	"time"

	"github.com/receber-inter/backend/internal/application/adapter"
	"github.com/receber-inter/backend/internal/domain/entity"
	domainerror "github.com/receber-inter/backend/internal/domain/error"
)

// MarkPaidInput represents a manual settlement request.
type MarkPaidInput struct {
	InvoiceID     uint
	PaymentMethod entity.PaymentMethod
	PaymentDate   *time.Time // defaults to today
}

// MarkPaidOutput represents the result of a manual settlement.
type MarkPaidOutput struct {
	InvoiceID     uint
	PaymentMethod entity.PaymentMethod
	PaymentDate   time.Time
}

// MarkPaidUseCase applies a settlement to an invoice: status becomes paid and
// exactly the payment method and payment date are recorded alongside.
// Re-applying with the same inputs yields the same state.
type MarkPaidUseCase struct {
	invoiceRepo adapter.InvoiceRepository
}

// NewMarkPaidUseCase creates a new MarkPaidUseCase instance.
func NewMarkPaidUseCase(invoiceRepo adapter.InvoiceRepository) *MarkPaidUseCase {
	return &MarkPaidUseCase{
		invoiceRepo: invoiceRepo,
	}
}

// Execute performs the settlement.
func (uc *MarkPaidUseCase) Execute(ctx context.Context, input MarkPaidInput) (*MarkPaidOutput, error) {
	if input.PaymentMethod != entity.PaymentMethodPix && input.PaymentMethod != entity.PaymentMethodCash {
		return nil, domainerror.NewInvoiceError(
			domainerror.ErrCodeInvalidPaymentMethod,
			"payment method must be pix or cash",
			domainerror.ErrInvalidPaymentMethod,
		)
	}

	if _, err := uc.invoiceRepo.FindByID(ctx, input.InvoiceID); err != nil {
		if errors.Is(err, domainerror.ErrInvoiceNotFound) {
			return nil, domainerror.NewInvoiceError(
				domainerror.ErrCodeInvoiceNotFound,
				"invoice not found",
				domainerror.ErrInvoiceNotFound,
			)
		}
		return nil, err
	}

	paymentDate := time.Now().UTC().Truncate(24 * time.Hour)
	if input.PaymentDate != nil {
		paymentDate = *input.PaymentDate
	}

	if err := uc.invoiceRepo.Settle(ctx, input.InvoiceID, input.PaymentMethod, paymentDate); err != nil {
		return nil, err
	}

	return &MarkPaidOutput{
		InvoiceID:     input.InvoiceID,
		PaymentMethod: input.PaymentMethod,
		PaymentDate:   paymentDate,
	}, nil
}

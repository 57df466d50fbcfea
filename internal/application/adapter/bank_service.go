package adapter

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/receber-inter/backend/internal/domain/entity"
)

// IssueChargeResult holds the identifiers the bank assigns to a new charge.
type IssueChargeResult struct {
	OurNumber     string
	DigitableLine string
	Barcode       string
	TxID          string
	RequestCode   string
}

// BankChargeService defines the interface for the bank charge API (boleto
// issuance and cancellation).
type BankChargeService interface {
	// IssueCharge registers a charge for the client with the given due date
	// and amount, returning the bank-assigned identifiers.
	IssueCharge(ctx context.Context, client *entity.Client, dueDate time.Time, amount decimal.Decimal) (*IssueChargeResult, error)

	// CancelCharge cancels a previously issued charge by its request code,
	// falling back to the "nosso numero" when the code is absent.
	CancelCharge(ctx context.Context, requestCode, ourNumber string) error

	// FetchPDF downloads the rendered payment slip for an issued charge.
	FetchPDF(ctx context.Context, requestCode, ourNumber string) ([]byte, error)
}

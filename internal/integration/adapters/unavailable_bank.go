// Package adapters provides implementations for external service integrations.
package adapters

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/receber-inter/backend/internal/application/adapter"
	"github.com/receber-inter/backend/internal/domain/entity"
	domainerror "github.com/receber-inter/backend/internal/domain/error"
)

// UnavailableBankService is the BankChargeService used when the Inter
// certificate pair is not configured. Every call fails with a bank error so
// the rest of the application keeps serving.
type UnavailableBankService struct{}

// IssueCharge always fails.
func (UnavailableBankService) IssueCharge(context.Context, *entity.Client, time.Time, decimal.Decimal) (*adapter.IssueChargeResult, error) {
	return nil, domainerror.ErrBankIssueFailed
}

// CancelCharge always fails.
func (UnavailableBankService) CancelCharge(context.Context, string, string) error {
	return domainerror.ErrBankCancelFailed
}

// FetchPDF always fails.
func (UnavailableBankService) FetchPDF(context.Context, string, string) ([]byte, error) {
	return nil, domainerror.ErrBankIssueFailed
}

var _ adapter.BankChargeService = UnavailableBankService{}

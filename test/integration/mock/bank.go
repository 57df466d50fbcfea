package mock

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/receber-inter/backend/internal/application/adapter"
	"github.com/receber-inter/backend/internal/domain/entity"
	domainerror "github.com/receber-inter/backend/internal/domain/error"
)

// BankService is an in-memory stand-in for the Banco Inter charge API. It
// hands out sequential identifiers and records cancellations.
type BankService struct {
	mu       sync.Mutex
	issued   int
	canceled []string

	// FailIssue makes every IssueCharge call fail when set.
	FailIssue bool
}

// NewBankService creates a fake charge service.
func NewBankService() *BankService {
	return &BankService{}
}

// IssueCharge returns deterministic identifiers for the nth issued charge.
func (s *BankService) IssueCharge(ctx context.Context, client *entity.Client, dueDate time.Time, amount decimal.Decimal) (*adapter.IssueChargeResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.FailIssue {
		return nil, domainerror.NewInvoiceError(
			domainerror.ErrCodeBankIssueFailed,
			"bank unavailable",
			domainerror.ErrBankIssueFailed,
		)
	}

	s.issued++
	n := s.issued
	return &adapter.IssueChargeResult{
		OurNumber:     fmt.Sprintf("%011d", n),
		DigitableLine: fmt.Sprintf("00190.00009 01234.567890 12345.678901 1 0000000000%04d", n),
		Barcode:       fmt.Sprintf("001910000000000%04d", n),
		TxID:          fmt.Sprintf("txid-%04d", n),
		RequestCode:   fmt.Sprintf("req-%04d", n),
	}, nil
}

// CancelCharge records the canceled identifier.
func (s *BankService) CancelCharge(ctx context.Context, requestCode, ourNumber string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := requestCode
	if id == "" {
		id = ourNumber
	}
	s.canceled = append(s.canceled, id)
	return nil
}

// FetchPDF returns a placeholder document.
func (s *BankService) FetchPDF(ctx context.Context, requestCode, ourNumber string) ([]byte, error) {
	return []byte("%PDF-1.4 fake"), nil
}

// IssuedCount returns how many charges were issued.
func (s *BankService) IssuedCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.issued
}

// CanceledCount returns how many charges were canceled.
func (s *BankService) CanceledCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.canceled)
}

// Reset clears all recorded state.
func (s *BankService) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.issued = 0
	s.canceled = nil
	s.FailIssue = false
}

var _ adapter.BankChargeService = (*BankService)(nil)

package invoice

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/receber-inter/backend/internal/application/adapter"
	"github.com/receber-inter/backend/internal/domain/entity"
	domainerror "github.com/receber-inter/backend/internal/domain/error"
)

type fakeInvoiceRepo struct {
	invoices map[uint]*entity.Invoice
	nextID   uint
}

func newFakeInvoiceRepo() *fakeInvoiceRepo {
	return &fakeInvoiceRepo{invoices: make(map[uint]*entity.Invoice)}
}

func (r *fakeInvoiceRepo) Create(_ context.Context, invoice *entity.Invoice) error {
	r.nextID++
	invoice.ID = r.nextID
	stored := *invoice
	r.invoices[invoice.ID] = &stored
	return nil
}

func (r *fakeInvoiceRepo) Update(_ context.Context, invoice *entity.Invoice) error {
	if _, ok := r.invoices[invoice.ID]; !ok {
		return domainerror.ErrInvoiceNotFound
	}
	stored := *invoice
	r.invoices[invoice.ID] = &stored
	return nil
}

func (r *fakeInvoiceRepo) FindByID(_ context.Context, id uint) (*entity.Invoice, error) {
	invoice, ok := r.invoices[id]
	if !ok {
		return nil, domainerror.ErrInvoiceNotFound
	}
	copied := *invoice
	return &copied, nil
}

func (r *fakeInvoiceRepo) FindByClientAndReference(_ context.Context, clientID uint, year, month int) (*entity.Invoice, error) {
	for _, invoice := range r.invoices {
		if invoice.ClientID == clientID && invoice.ReferenceYear == year && invoice.ReferenceMonth == month {
			copied := *invoice
			return &copied, nil
		}
	}
	return nil, domainerror.ErrInvoiceNotFound
}

func (r *fakeInvoiceRepo) FindByFilter(_ context.Context, status *entity.InvoiceStatus) ([]*entity.Invoice, error) {
	var result []*entity.Invoice
	for _, invoice := range r.invoices {
		if status == nil || invoice.Status == *status {
			copied := *invoice
			result = append(result, &copied)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID > result[j].ID })
	return result, nil
}

func (r *fakeInvoiceRepo) FindOpenByClientAndAmount(_ context.Context, clientID uint, amount decimal.Decimal) ([]*entity.Invoice, error) {
	return nil, nil
}

func (r *fakeInvoiceRepo) FindOpenWithClients(_ context.Context) ([]adapter.InvoiceWithClient, error) {
	return nil, nil
}

func (r *fakeInvoiceRepo) Settle(_ context.Context, id uint, method entity.PaymentMethod, paymentDate time.Time) error {
	invoice, ok := r.invoices[id]
	if !ok {
		return domainerror.ErrInvoiceNotFound
	}
	invoice.Status = entity.InvoiceStatusPaid
	invoice.PaymentMethod = method
	invoice.PaymentDate = &paymentDate
	return nil
}

func (r *fakeInvoiceRepo) MarkOverdue(_ context.Context, today time.Time) (int64, error) {
	var changed int64
	for _, invoice := range r.invoices {
		if invoice.Status == entity.InvoiceStatusIssued && invoice.DueDate.Before(today) {
			invoice.Status = entity.InvoiceStatusOverdue
			changed++
		}
	}
	return changed, nil
}

type fakeClientRepo struct {
	clients map[uint]*entity.Client
}

func newFakeClientRepo() *fakeClientRepo {
	return &fakeClientRepo{clients: make(map[uint]*entity.Client)}
}

func (r *fakeClientRepo) Create(_ context.Context, client *entity.Client) error {
	r.clients[client.ID] = client
	return nil
}

func (r *fakeClientRepo) Update(_ context.Context, client *entity.Client) error {
	r.clients[client.ID] = client
	return nil
}

func (r *fakeClientRepo) Delete(_ context.Context, id uint) error {
	delete(r.clients, id)
	return nil
}

func (r *fakeClientRepo) FindByID(_ context.Context, id uint) (*entity.Client, error) {
	client, ok := r.clients[id]
	if !ok {
		return nil, domainerror.ErrClientNotFound
	}
	copied := *client
	return &copied, nil
}

func (r *fakeClientRepo) FindByIDs(_ context.Context, ids []uint) ([]*entity.Client, error) {
	var result []*entity.Client
	for _, id := range ids {
		if client, ok := r.clients[id]; ok {
			copied := *client
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (r *fakeClientRepo) FindAll(_ context.Context) ([]*entity.Client, error) {
	var result []*entity.Client
	for _, client := range r.clients {
		copied := *client
		result = append(result, &copied)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

type fakeBankService struct {
	issued     int
	canceled   int
	failIssue  bool
	failCancel bool
	failPDF    bool
}

func (s *fakeBankService) IssueCharge(_ context.Context, _ *entity.Client, _ time.Time, _ decimal.Decimal) (*adapter.IssueChargeResult, error) {
	if s.failIssue {
		return nil, errors.New("bank unavailable")
	}
	s.issued++
	return &adapter.IssueChargeResult{
		OurNumber:     "00123456789",
		DigitableLine: "23790.00000 12345.000000 00000.123456 0 00000000000000",
		Barcode:       "23790000001234500000012345",
		TxID:          "tx-1",
		RequestCode:   "req-1",
	}, nil
}

func (s *fakeBankService) CancelCharge(_ context.Context, _, _ string) error {
	if s.failCancel {
		return errors.New("cancellation rejected")
	}
	s.canceled++
	return nil
}

func (s *fakeBankService) FetchPDF(_ context.Context, _, _ string) ([]byte, error) {
	if s.failPDF {
		return nil, errors.New("download rejected")
	}
	return []byte("%PDF-1.4"), nil
}

type fakeMessaging struct {
	sent      []string
	failAfter int // fail on the nth call (1-based); 0 never fails
	calls     int
}

func (m *fakeMessaging) SendMessage(_ context.Context, _, message string) error {
	m.calls++
	if m.failAfter > 0 && m.calls >= m.failAfter {
		return errors.New("relay unreachable")
	}
	m.sent = append(m.sent, message)
	return nil
}

var (
	_ adapter.InvoiceRepository = (*fakeInvoiceRepo)(nil)
	_ adapter.ClientRepository  = (*fakeClientRepo)(nil)
	_ adapter.BankChargeService = (*fakeBankService)(nil)
	_ adapter.MessagingService  = (*fakeMessaging)(nil)
)

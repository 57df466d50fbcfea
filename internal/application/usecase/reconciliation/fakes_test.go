package reconciliation

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/receber-inter/backend/internal/application/adapter"
	"github.com/receber-inter/backend/internal/domain/entity"
	domainerror "github.com/receber-inter/backend/internal/domain/error"
)

// fakeStore is an in-memory implementation of the reconciliation and invoice
// repositories, shared by the use case tests.
type fakeStore struct {
	entries     map[uint]*entity.StatementEntry
	aliases     map[string]*entity.DescriptionAlias
	invoices    map[uint]*entity.Invoice
	clientNames map[uint]string

	nextEntryID uint
	nextAliasID uint
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		entries:     make(map[uint]*entity.StatementEntry),
		aliases:     make(map[string]*entity.DescriptionAlias),
		invoices:    make(map[uint]*entity.Invoice),
		clientNames: make(map[uint]string),
	}
}

func (s *fakeStore) addInvoice(id, clientID uint, amount string, status entity.InvoiceStatus, dueDate time.Time) *entity.Invoice {
	inv := &entity.Invoice{
		ID:       id,
		ClientID: clientID,
		Amount:   decimal.RequireFromString(amount),
		Status:   status,
		DueDate:  dueDate,
	}
	s.invoices[id] = inv
	return inv
}

func (s *fakeStore) addAlias(key string, clientID uint) {
	s.nextAliasID++
	s.aliases[key] = &entity.DescriptionAlias{
		ID:             s.nextAliasID,
		DescriptionKey: key,
		ClientID:       clientID,
	}
}

// ReconciliationRepository implementation

func (s *fakeStore) UpsertEntry(_ context.Context, entry *entity.StatementEntry) (bool, error) {
	for _, existing := range s.entries {
		if existing.ContentHash == entry.ContentHash {
			existing.Date = entry.Date
			existing.Description = entry.Description
			existing.DescriptionKey = entry.DescriptionKey
			existing.Amount = entry.Amount
			*entry = *existing
			return false, nil
		}
	}

	s.nextEntryID++
	entry.ID = s.nextEntryID
	stored := *entry
	s.entries[entry.ID] = &stored
	return true, nil
}

func (s *fakeStore) FindEntryByID(_ context.Context, id uint) (*entity.StatementEntry, error) {
	entry, ok := s.entries[id]
	if !ok {
		return nil, domainerror.ErrEntryNotFound
	}
	copied := *entry
	return &copied, nil
}

func (s *fakeStore) FindEntries(_ context.Context, onlyUnlinked bool) ([]*entity.StatementEntry, error) {
	var result []*entity.StatementEntry
	for _, entry := range s.entries {
		if onlyUnlinked && entry.IsLinked() {
			continue
		}
		copied := *entry
		result = append(result, &copied)
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].Date.Equal(result[j].Date) {
			return result[i].Date.After(result[j].Date)
		}
		return result[i].ID > result[j].ID
	})
	return result, nil
}

func (s *fakeStore) LinkAndSettle(_ context.Context, params adapter.LinkAndSettleParams) error {
	entry, ok := s.entries[params.EntryID]
	if !ok {
		return domainerror.ErrEntryNotFound
	}
	invoice, ok := s.invoices[params.InvoiceID]
	if !ok {
		return domainerror.ErrInvoiceNotFound
	}

	invoiceID := params.InvoiceID
	entry.InvoiceID = &invoiceID

	invoice.Status = entity.InvoiceStatusPaid
	invoice.PaymentMethod = params.PaymentMethod
	paymentDate := params.PaymentDate
	invoice.PaymentDate = &paymentDate

	if params.AliasKey != "" {
		existing, ok := s.aliases[params.AliasKey]
		switch {
		case !ok:
			s.addAlias(params.AliasKey, params.AliasClientID)
		case params.RepointAlias:
			existing.ClientID = params.AliasClientID
		}
	}
	return nil
}

func (s *fakeStore) PurgeUnlinked(_ context.Context) (int64, error) {
	var removed int64
	for id, entry := range s.entries {
		if !entry.IsLinked() {
			delete(s.entries, id)
			removed++
		}
	}
	return removed, nil
}

func (s *fakeStore) FindAliasByKey(_ context.Context, key string) (*entity.DescriptionAlias, error) {
	alias, ok := s.aliases[key]
	if !ok {
		return nil, domainerror.ErrAliasNotFound
	}
	copied := *alias
	return &copied, nil
}

// InvoiceRepository implementation (the subset the engine exercises, plus
// trivial passthroughs to satisfy the interface)

func (s *fakeStore) Create(_ context.Context, invoice *entity.Invoice) error {
	s.invoices[invoice.ID] = invoice
	return nil
}

func (s *fakeStore) Update(_ context.Context, invoice *entity.Invoice) error {
	s.invoices[invoice.ID] = invoice
	return nil
}

func (s *fakeStore) FindByID(_ context.Context, id uint) (*entity.Invoice, error) {
	invoice, ok := s.invoices[id]
	if !ok {
		return nil, domainerror.ErrInvoiceNotFound
	}
	copied := *invoice
	return &copied, nil
}

func (s *fakeStore) FindByClientAndReference(_ context.Context, clientID uint, year, month int) (*entity.Invoice, error) {
	for _, invoice := range s.invoices {
		if invoice.ClientID == clientID && invoice.ReferenceYear == year && invoice.ReferenceMonth == month {
			copied := *invoice
			return &copied, nil
		}
	}
	return nil, domainerror.ErrInvoiceNotFound
}

func (s *fakeStore) FindByFilter(_ context.Context, status *entity.InvoiceStatus) ([]*entity.Invoice, error) {
	var result []*entity.Invoice
	for _, invoice := range s.invoices {
		if status == nil || invoice.Status == *status {
			copied := *invoice
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (s *fakeStore) FindOpenByClientAndAmount(_ context.Context, clientID uint, amount decimal.Decimal) ([]*entity.Invoice, error) {
	var result []*entity.Invoice
	for _, invoice := range s.invoices {
		if invoice.ClientID == clientID && invoice.IsOpen() && invoice.Amount.Equal(amount) {
			copied := *invoice
			result = append(result, &copied)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].DueDate.Equal(result[j].DueDate) {
			return result[i].DueDate.Before(result[j].DueDate)
		}
		return result[i].ID < result[j].ID
	})
	return result, nil
}

func (s *fakeStore) FindOpenWithClients(_ context.Context) ([]adapter.InvoiceWithClient, error) {
	var result []adapter.InvoiceWithClient
	for _, invoice := range s.invoices {
		if !invoice.IsOpen() {
			continue
		}
		copied := *invoice
		result = append(result, adapter.InvoiceWithClient{
			Invoice:    &copied,
			ClientName: s.clientNames[invoice.ClientID],
		})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Invoice.ID < result[j].Invoice.ID
	})
	return result, nil
}

func (s *fakeStore) Settle(_ context.Context, id uint, method entity.PaymentMethod, paymentDate time.Time) error {
	invoice, ok := s.invoices[id]
	if !ok {
		return domainerror.ErrInvoiceNotFound
	}
	invoice.Status = entity.InvoiceStatusPaid
	invoice.PaymentMethod = method
	invoice.PaymentDate = &paymentDate
	return nil
}

func (s *fakeStore) MarkOverdue(_ context.Context, today time.Time) (int64, error) {
	var changed int64
	for _, invoice := range s.invoices {
		if invoice.Status == entity.InvoiceStatusIssued && invoice.DueDate.Before(today) {
			invoice.Status = entity.InvoiceStatusOverdue
			changed++
		}
	}
	return changed, nil
}

var (
	_ adapter.ReconciliationRepository = (*fakeStore)(nil)
	_ adapter.InvoiceRepository        = (*fakeStore)(nil)
)

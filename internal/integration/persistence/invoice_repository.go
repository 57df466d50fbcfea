// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/receber-inter/backend/internal/application/adapter"
	"github.com/receber-inter/backend/internal/domain/entity"
	domainerror "github.com/receber-inter/backend/internal/domain/error"
	"github.com/receber-inter/backend/internal/integration/persistence/model"
)

// openStatusStrings are the status values an invoice can be settled from.
var openStatusStrings = []string{
	string(entity.InvoiceStatusNew),
	string(entity.InvoiceStatusIssued),
	string(entity.InvoiceStatusOverdue),
}

// invoiceRepository implements the adapter.InvoiceRepository interface.
type invoiceRepository struct {
	db *gorm.DB
}

// NewInvoiceRepository creates a new invoice repository instance.
func NewInvoiceRepository(db *gorm.DB) adapter.InvoiceRepository {
	return &invoiceRepository{
		db: db,
	}
}

// Create creates a new invoice in the database.
func (r *invoiceRepository) Create(ctx context.Context, invoice *entity.Invoice) error {
	invoiceModel := model.InvoiceFromEntity(invoice)
	result := r.db.WithContext(ctx).Create(invoiceModel)
	if result.Error != nil {
		return result.Error
	}
	invoice.ID = invoiceModel.ID
	return nil
}

// Update updates an existing invoice in the database.
func (r *invoiceRepository) Update(ctx context.Context, invoice *entity.Invoice) error {
	invoiceModel := model.InvoiceFromEntity(invoice)
	result := r.db.WithContext(ctx).Save(invoiceModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves an invoice by its ID.
func (r *invoiceRepository) FindByID(ctx context.Context, id uint) (*entity.Invoice, error) {
	var invoiceModel model.InvoiceModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&invoiceModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrInvoiceNotFound
		}
		return nil, result.Error
	}
	return invoiceModel.ToEntity(), nil
}

// FindByClientAndReference retrieves the invoice for a client and reference month.
func (r *invoiceRepository) FindByClientAndReference(ctx context.Context, clientID uint, year, month int) (*entity.Invoice, error) {
	var invoiceModel model.InvoiceModel
	result := r.db.WithContext(ctx).
		Where("client_id = ? AND reference_year = ? AND reference_month = ?", clientID, year, month).
		First(&invoiceModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrInvoiceNotFound
		}
		return nil, result.Error
	}
	return invoiceModel.ToEntity(), nil
}

// FindByFilter retrieves invoices newest first, optionally filtered by status.
func (r *invoiceRepository) FindByFilter(ctx context.Context, status *entity.InvoiceStatus) ([]*entity.Invoice, error) {
	query := r.db.WithContext(ctx).Order("id DESC")
	if status != nil {
		query = query.Where("status = ?", string(*status))
	}

	var invoiceModels []model.InvoiceModel
	result := query.Find(&invoiceModels)
	if result.Error != nil {
		return nil, result.Error
	}

	invoices := make([]*entity.Invoice, len(invoiceModels))
	for i, im := range invoiceModels {
		invoices[i] = im.ToEntity()
	}
	return invoices, nil
}

// FindOpenByClientAndAmount retrieves a client's open invoices with an exact
// amount match, earliest due date first and lowest ID on ties.
func (r *invoiceRepository) FindOpenByClientAndAmount(ctx context.Context, clientID uint, amount decimal.Decimal) ([]*entity.Invoice, error) {
	var invoiceModels []model.InvoiceModel
	result := r.db.WithContext(ctx).
		Where("client_id = ? AND status IN ? AND amount = ?", clientID, openStatusStrings, amount).
		Order("due_date ASC, id ASC").
		Find(&invoiceModels)
	if result.Error != nil {
		return nil, result.Error
	}

	invoices := make([]*entity.Invoice, len(invoiceModels))
	for i, im := range invoiceModels {
		invoices[i] = im.ToEntity()
	}
	return invoices, nil
}

// FindOpenWithClients retrieves all open invoices joined with their client names.
func (r *invoiceRepository) FindOpenWithClients(ctx context.Context) ([]adapter.InvoiceWithClient, error) {
	var invoiceModels []model.InvoiceModel
	result := r.db.WithContext(ctx).
		Preload("Client").
		Where("status IN ?", openStatusStrings).
		Order("id ASC").
		Find(&invoiceModels)
	if result.Error != nil {
		return nil, result.Error
	}

	pairs := make([]adapter.InvoiceWithClient, len(invoiceModels))
	for i, im := range invoiceModels {
		pair := adapter.InvoiceWithClient{Invoice: im.ToEntity()}
		if im.Client != nil {
			pair.ClientName = im.Client.Name
		}
		pairs[i] = pair
	}
	return pairs, nil
}

// Settle transitions an invoice to paid, touching only the settlement columns.
func (r *invoiceRepository) Settle(ctx context.Context, id uint, method entity.PaymentMethod, paymentDate time.Time) error {
	result := r.db.WithContext(ctx).
		Model(&model.InvoiceModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":         string(entity.InvoiceStatusPaid),
			"payment_method": string(method),
			"payment_date":   paymentDate,
			"updated_at":     time.Now().UTC(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrInvoiceNotFound
	}
	return nil
}

// MarkOverdue flips issued invoices past their due date to overdue.
func (r *invoiceRepository) MarkOverdue(ctx context.Context, today time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&model.InvoiceModel{}).
		Where("status = ? AND due_date < ?", string(entity.InvoiceStatusIssued), today).
		Updates(map[string]interface{}{
			"status":     string(entity.InvoiceStatusOverdue),
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/receber-inter/backend/internal/application/adapter"
	"github.com/receber-inter/backend/internal/domain/entity"
	domainerror "github.com/receber-inter/backend/internal/domain/error"
	"github.com/receber-inter/backend/internal/integration/persistence/model"
)

// clientRepository implements the adapter.ClientRepository interface.
type clientRepository struct {
	db *gorm.DB
}

// NewClientRepository creates a new client repository instance.
func NewClientRepository(db *gorm.DB) adapter.ClientRepository {
	return &clientRepository{
		db: db,
	}
}

// Create creates a new client in the database.
func (r *clientRepository) Create(ctx context.Context, client *entity.Client) error {
	clientModel := model.ClientFromEntity(client)
	result := r.db.WithContext(ctx).Create(clientModel)
	if result.Error != nil {
		return result.Error
	}
	client.ID = clientModel.ID
	return nil
}

// Update updates an existing client in the database.
func (r *clientRepository) Update(ctx context.Context, client *entity.Client) error {
	clientModel := model.ClientFromEntity(client)
	result := r.db.WithContext(ctx).Save(clientModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a client and its invoices. Statement entries linked to the
// removed invoices revert to unlinked.
func (r *clientRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var invoiceIDs []uint
		if err := tx.Model(&model.InvoiceModel{}).
			Where("client_id = ?", id).
			Pluck("id", &invoiceIDs).Error; err != nil {
			return err
		}

		if len(invoiceIDs) > 0 {
			if err := tx.Model(&model.StatementEntryModel{}).
				Where("invoice_id IN ?", invoiceIDs).
				Update("invoice_id", nil).Error; err != nil {
				return err
			}
			if err := tx.Delete(&model.InvoiceModel{}, "client_id = ?", id).Error; err != nil {
				return err
			}
		}

		if err := tx.Delete(&model.DescriptionAliasModel{}, "client_id = ?", id).Error; err != nil {
			return err
		}

		return tx.Delete(&model.ClientModel{}, "id = ?", id).Error
	})
}

// FindByID retrieves a client by its ID.
func (r *clientRepository) FindByID(ctx context.Context, id uint) (*entity.Client, error) {
	var clientModel model.ClientModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&clientModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrClientNotFound
		}
		return nil, result.Error
	}
	return clientModel.ToEntity(), nil
}

// FindByIDs retrieves the given clients, skipping missing IDs.
func (r *clientRepository) FindByIDs(ctx context.Context, ids []uint) ([]*entity.Client, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var clientModels []model.ClientModel
	result := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Order("name ASC").
		Find(&clientModels)
	if result.Error != nil {
		return nil, result.Error
	}

	clients := make([]*entity.Client, len(clientModels))
	for i, cm := range clientModels {
		clients[i] = cm.ToEntity()
	}
	return clients, nil
}

// FindAll retrieves all clients ordered by name.
func (r *clientRepository) FindAll(ctx context.Context) ([]*entity.Client, error) {
	var clientModels []model.ClientModel
	result := r.db.WithContext(ctx).Order("name ASC").Find(&clientModels)
	if result.Error != nil {
		return nil, result.Error
	}

	clients := make([]*entity.Client, len(clientModels))
	for i, cm := range clientModels {
		clients[i] = cm.ToEntity()
	}
	return clients, nil
}

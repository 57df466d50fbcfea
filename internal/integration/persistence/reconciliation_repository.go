// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/receber-inter/backend/internal/application/adapter"
	"github.com/receber-inter/backend/internal/domain/entity"
	domainerror "github.com/receber-inter/backend/internal/domain/error"
	"github.com/receber-inter/backend/internal/integration/persistence/model"
)

// reconciliationRepository implements the adapter.ReconciliationRepository interface.
type reconciliationRepository struct {
	db *gorm.DB
}

// NewReconciliationRepository creates a new reconciliation repository instance.
func NewReconciliationRepository(db *gorm.DB) adapter.ReconciliationRepository {
	return &reconciliationRepository{
		db: db,
	}
}

// UpsertEntry creates the entry when its content hash is unseen, otherwise
// refreshes the stored row in place. The entry's ID and any existing invoice
// link are filled in from the stored row.
func (r *reconciliationRepository) UpsertEntry(ctx context.Context, entry *entity.StatementEntry) (bool, error) {
	var created bool

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.StatementEntryModel
		result := tx.Where("content_hash = ?", entry.ContentHash).First(&existing)

		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			entryModel := model.StatementEntryFromEntity(entry)
			if err := tx.Create(entryModel).Error; err != nil {
				return err
			}
			entry.ID = entryModel.ID
			created = true
			return nil
		}
		if result.Error != nil {
			return result.Error
		}

		entry.ID = existing.ID
		entry.InvoiceID = existing.InvoiceID
		entry.CreatedAt = existing.CreatedAt

		if existing.Date.Equal(entry.Date) &&
			existing.Description == entry.Description &&
			existing.DescriptionKey == entry.DescriptionKey &&
			existing.Amount.Equal(entry.Amount) {
			entry.UpdatedAt = existing.UpdatedAt
			return nil
		}

		entry.UpdatedAt = time.Now().UTC()
		return tx.Model(&model.StatementEntryModel{}).
			Where("id = ?", existing.ID).
			Updates(map[string]interface{}{
				"date":            entry.Date,
				"description":     entry.Description,
				"description_key": entry.DescriptionKey,
				"amount":          entry.Amount,
				"updated_at":      entry.UpdatedAt,
			}).Error
	})

	return created, err
}

// FindEntryByID retrieves a statement entry by its ID.
func (r *reconciliationRepository) FindEntryByID(ctx context.Context, id uint) (*entity.StatementEntry, error) {
	var entryModel model.StatementEntryModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&entryModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrEntryNotFound
		}
		return nil, result.Error
	}
	return entryModel.ToEntity(), nil
}

// FindEntries retrieves entries ordered by date then ID, newest first.
func (r *reconciliationRepository) FindEntries(ctx context.Context, onlyUnlinked bool) ([]*entity.StatementEntry, error) {
	query := r.db.WithContext(ctx).Order("date DESC, id DESC")
	if onlyUnlinked {
		query = query.Where("invoice_id IS NULL")
	}

	var entryModels []model.StatementEntryModel
	result := query.Find(&entryModels)
	if result.Error != nil {
		return nil, result.Error
	}

	entries := make([]*entity.StatementEntry, len(entryModels))
	for i, em := range entryModels {
		entries[i] = em.ToEntity()
	}
	return entries, nil
}

// LinkAndSettle applies the entry link, the invoice settlement and the alias
// record in one transaction.
func (r *reconciliationRepository) LinkAndSettle(ctx context.Context, params adapter.LinkAndSettleParams) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UTC()

		result := tx.Model(&model.StatementEntryModel{}).
			Where("id = ?", params.EntryID).
			Updates(map[string]interface{}{
				"invoice_id": params.InvoiceID,
				"updated_at": now,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerror.ErrEntryNotFound
		}

		result = tx.Model(&model.InvoiceModel{}).
			Where("id = ?", params.InvoiceID).
			Updates(map[string]interface{}{
				"status":         string(entity.InvoiceStatusPaid),
				"payment_method": string(params.PaymentMethod),
				"payment_date":   params.PaymentDate,
				"updated_at":     now,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerror.ErrInvoiceNotFound
		}

		if params.AliasKey == "" {
			return nil
		}
		return upsertAlias(tx, params.AliasKey, params.AliasClientID, params.RepointAlias)
	})
}

// upsertAlias records key -> clientID. With repoint the stored client is
// replaced; without it an existing alias is left untouched.
func upsertAlias(tx *gorm.DB, key string, clientID uint, repoint bool) error {
	var existing model.DescriptionAliasModel
	result := tx.Where("description_key = ?", key).First(&existing)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		now := time.Now().UTC()
		return tx.Create(&model.DescriptionAliasModel{
			DescriptionKey: key,
			ClientID:       clientID,
			CreatedAt:      now,
			UpdatedAt:      now,
		}).Error
	}
	if result.Error != nil {
		return result.Error
	}

	if !repoint || existing.ClientID == clientID {
		return nil
	}

	return tx.Model(&model.DescriptionAliasModel{}).
		Where("id = ?", existing.ID).
		Updates(map[string]interface{}{
			"client_id":  clientID,
			"updated_at": time.Now().UTC(),
		}).Error
}

// PurgeUnlinked deletes every entry with no invoice link.
func (r *reconciliationRepository) PurgeUnlinked(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("invoice_id IS NULL").
		Delete(&model.StatementEntryModel{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// FindAliasByKey retrieves the alias for a normalized description key.
func (r *reconciliationRepository) FindAliasByKey(ctx context.Context, key string) (*entity.DescriptionAlias, error) {
	var aliasModel model.DescriptionAliasModel
	result := r.db.WithContext(ctx).Where("description_key = ?", key).First(&aliasModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrAliasNotFound
		}
		return nil, result.Error
	}
	return aliasModel.ToEntity(), nil
}

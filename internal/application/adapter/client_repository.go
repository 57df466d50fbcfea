// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/receber-inter/backend/internal/domain/entity"
)

// ClientRepository defines the interface for client persistence operations.
type ClientRepository interface {
	// Create persists a new client and fills in its ID.
	Create(ctx context.Context, client *entity.Client) error

	// Update persists changes to an existing client.
	Update(ctx context.Context, client *entity.Client) error

	// Delete removes a client and cascades to its invoices.
	Delete(ctx context.Context, id uint) error

	// FindByID retrieves a client by its ID.
	FindByID(ctx context.Context, id uint) (*entity.Client, error)

	// FindByIDs retrieves the given clients, skipping missing IDs.
	FindByIDs(ctx context.Context, ids []uint) ([]*entity.Client, error)

	// FindAll retrieves all clients ordered by name.
	FindAll(ctx context.Context) ([]*entity.Client, error)
}

// Package client contains client registry use cases.
package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/receber-inter/backend/internal/application/adapter"
	domainerror "github.com/receber-inter/backend/internal/domain/error"
)

// DeleteClientInput represents the input for client deletion.
type DeleteClientInput struct {
	ClientID uint
}

// DeleteClientOutput represents the output of client deletion.
type DeleteClientOutput struct {
	Success bool
}

// DeleteClientUseCase handles client deletion logic. Deleting a client
// removes its invoices as well; statement entries linked to those invoices
// revert to unlinked.
type DeleteClientUseCase struct {
	clientRepo adapter.ClientRepository
}

// NewDeleteClientUseCase creates a new DeleteClientUseCase instance.
func NewDeleteClientUseCase(clientRepo adapter.ClientRepository) *DeleteClientUseCase {
	return &DeleteClientUseCase{
		clientRepo: clientRepo,
	}
}

// Execute performs the client deletion.
func (uc *DeleteClientUseCase) Execute(ctx context.Context, input DeleteClientInput) (*DeleteClientOutput, error) {
	if _, err := uc.clientRepo.FindByID(ctx, input.ClientID); err != nil {
		if errors.Is(err, domainerror.ErrClientNotFound) {
			return nil, domainerror.NewClientError(
				domainerror.ErrCodeClientNotFound,
				"client not found",
				domainerror.ErrClientNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find client: %w", err)
	}

	if err := uc.clientRepo.Delete(ctx, input.ClientID); err != nil {
		return nil, fmt.Errorf("failed to delete client: %w", err)
	}

	return &DeleteClientOutput{
		Success: true,
	}, nil
}

// Package client contains client registry use cases.
package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/receber-inter/backend/internal/application/adapter"
	"github.com/receber-inter/backend/internal/domain/entity"
	domainerror "github.com/receber-inter/backend/internal/domain/error"
)

// ListClientsOutput represents the client listing.
type ListClientsOutput struct {
	Clients []*entity.Client
}

// ListClientsUseCase lists all clients ordered by name.
type ListClientsUseCase struct {
	clientRepo adapter.ClientRepository
}

// NewListClientsUseCase creates a new ListClientsUseCase instance.
func NewListClientsUseCase(clientRepo adapter.ClientRepository) *ListClientsUseCase {
	return &ListClientsUseCase{
		clientRepo: clientRepo,
	}
}

// Execute returns the full client listing.
func (uc *ListClientsUseCase) Execute(ctx context.Context) (*ListClientsOutput, error) {
	clients, err := uc.clientRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}

	return &ListClientsOutput{
		Clients: clients,
	}, nil
}

// GetClientUseCase fetches a single client by ID.
type GetClientUseCase struct {
	clientRepo adapter.ClientRepository
}

// NewGetClientUseCase creates a new GetClientUseCase instance.
func NewGetClientUseCase(clientRepo adapter.ClientRepository) *GetClientUseCase {
	return &GetClientUseCase{
		clientRepo: clientRepo,
	}
}

// Execute fetches the client.
func (uc *GetClientUseCase) Execute(ctx context.Context, clientID uint) (*entity.Client, error) {
	client, err := uc.clientRepo.FindByID(ctx, clientID)
	if err != nil {
		if errors.Is(err, domainerror.ErrClientNotFound) {
			return nil, domainerror.NewClientError(
				domainerror.ErrCodeClientNotFound,
				"client not found",
				domainerror.ErrClientNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find client: %w", err)
	}

	return client, nil
}

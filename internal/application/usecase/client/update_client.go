// Package client contains client registry use cases.
package client

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/receber-inter/backend/internal/application/adapter"
	"github.com/receber-inter/backend/internal/domain/entity"
	domainerror "github.com/receber-inter/backend/internal/domain/error"
)

// UpdateClientInput represents the input for client update.
type UpdateClientInput struct {
	ClientID uint
	ClientFields
}

// UpdateClientOutput represents the output of client update.
type UpdateClientOutput struct {
	Client *entity.Client
}

// UpdateClientUseCase handles client update logic.
type UpdateClientUseCase struct {
	clientRepo adapter.ClientRepository
}

// NewUpdateClientUseCase creates a new UpdateClientUseCase instance.
func NewUpdateClientUseCase(clientRepo adapter.ClientRepository) *UpdateClientUseCase {
	return &UpdateClientUseCase{
		clientRepo: clientRepo,
	}
}

// Execute performs the client update. All fields are replaced; the due day
// and nominal amount affect future invoice generation only.
func (uc *UpdateClientUseCase) Execute(ctx context.Context, input UpdateClientInput) (*UpdateClientOutput, error) {
	client, err := uc.clientRepo.FindByID(ctx, input.ClientID)
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

	if err := validateFields(input.ClientFields); err != nil {
		return nil, err
	}

	client.Name = strings.TrimSpace(input.Name)
	client.TaxID = strings.TrimSpace(input.TaxID)
	client.NominalAmount = input.NominalAmount
	client.DueDay = input.DueDay
	applyContactFields(client, input.ClientFields)
	client.UpdatedAt = time.Now().UTC()

	if err := uc.clientRepo.Update(ctx, client); err != nil {
		return nil, fmt.Errorf("failed to update client: %w", err)
	}

	return &UpdateClientOutput{
		Client: client,
	}, nil
}

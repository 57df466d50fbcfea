// Package client contains client registry use cases.
package client

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/receber-inter/backend/internal/application/adapter"
	"github.com/receber-inter/backend/internal/domain/entity"
	domainerror "github.com/receber-inter/backend/internal/domain/error"
)

// ClientFields carries the mutable attributes of a client record.
type ClientFields struct {
	Name          string
	TaxID         string
	Email         string
	AreaCode      string
	Phone         string
	Street        string
	Number        string
	Complement    string
	District      string
	City          string
	State         string
	PostalCode    string
	NominalAmount decimal.Decimal
	DueDay        int
}

// CreateClientInput represents the input for client creation.
type CreateClientInput struct {
	ClientFields
}

// CreateClientOutput represents the output of client creation.
type CreateClientOutput struct {
	Client *entity.Client
}

// CreateClientUseCase handles client creation logic.
type CreateClientUseCase struct {
	clientRepo adapter.ClientRepository
}

// NewCreateClientUseCase creates a new CreateClientUseCase instance.
func NewCreateClientUseCase(clientRepo adapter.ClientRepository) *CreateClientUseCase {
	return &CreateClientUseCase{
		clientRepo: clientRepo,
	}
}

// Execute performs the client creation.
func (uc *CreateClientUseCase) Execute(ctx context.Context, input CreateClientInput) (*CreateClientOutput, error) {
	if err := validateFields(input.ClientFields); err != nil {
		return nil, err
	}

	client := entity.NewClient(
		strings.TrimSpace(input.Name),
		strings.TrimSpace(input.TaxID),
		input.NominalAmount,
		input.DueDay,
	)
	applyContactFields(client, input.ClientFields)

	if err := uc.clientRepo.Create(ctx, client); err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return &CreateClientOutput{
		Client: client,
	}, nil
}

// validateFields checks the required attributes shared by create and update.
func validateFields(fields ClientFields) error {
	if strings.TrimSpace(fields.Name) == "" {
		return domainerror.NewClientError(
			domainerror.ErrCodeClientNameRequired,
			"client name is required",
			domainerror.ErrClientNameRequired,
		)
	}

	if strings.TrimSpace(fields.TaxID) == "" {
		return domainerror.NewClientError(
			domainerror.ErrCodeClientTaxIDRequired,
			"client tax id is required",
			domainerror.ErrClientTaxIDRequired,
		)
	}

	if fields.DueDay < 1 || fields.DueDay > 31 {
		return domainerror.NewClientError(
			domainerror.ErrCodeClientInvalidDueDay,
			"due day must be between 1 and 31",
			domainerror.ErrClientInvalidDueDay,
		)
	}

	if !fields.NominalAmount.IsPositive() {
		return domainerror.NewClientError(
			domainerror.ErrCodeClientInvalidAmount,
			"nominal amount must be positive",
			domainerror.ErrClientInvalidAmount,
		)
	}

	return nil
}

// applyContactFields copies the optional contact and address attributes.
func applyContactFields(client *entity.Client, fields ClientFields) {
	client.Email = strings.TrimSpace(fields.Email)
	client.AreaCode = strings.TrimSpace(fields.AreaCode)
	client.Phone = strings.TrimSpace(fields.Phone)
	client.Street = strings.TrimSpace(fields.Street)
	client.Number = strings.TrimSpace(fields.Number)
	client.Complement = strings.TrimSpace(fields.Complement)
	client.District = strings.TrimSpace(fields.District)
	client.City = strings.TrimSpace(fields.City)
	client.State = strings.ToUpper(strings.TrimSpace(fields.State))
	client.PostalCode = strings.TrimSpace(fields.PostalCode)
}

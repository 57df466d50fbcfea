// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/receber-inter/backend/internal/domain/entity"
)

// ClientRequest represents the request body for client creation and update.
type ClientRequest struct {
	Name          string `json:"name" binding:"required,min=1,max=120"`
	TaxID         string `json:"tax_id" binding:"required"`
	Email         string `json:"email,omitempty"`
	AreaCode      string `json:"area_code,omitempty"`
	Phone         string `json:"phone,omitempty"`
	Street        string `json:"street,omitempty"`
	Number        string `json:"number,omitempty"`
	Complement    string `json:"complement,omitempty"`
	District      string `json:"district,omitempty"`
	City          string `json:"city,omitempty"`
	State         string `json:"state,omitempty" binding:"omitempty,len=2"`
	PostalCode    string `json:"postal_code,omitempty"`
	NominalAmount string `json:"nominal_amount" binding:"required"`
	DueDay        int    `json:"due_day" binding:"required,min=1,max=31"`
}

// ClientResponse represents a single client in API responses.
type ClientResponse struct {
	ID            uint      `json:"id"`
	Name          string    `json:"name"`
	TaxID         string    `json:"tax_id"`
	Email         string    `json:"email"`
	AreaCode      string    `json:"area_code"`
	Phone         string    `json:"phone"`
	Street        string    `json:"street"`
	Number        string    `json:"number"`
	Complement    string    `json:"complement"`
	District      string    `json:"district"`
	City          string    `json:"city"`
	State         string    `json:"state"`
	PostalCode    string    `json:"postal_code"`
	NominalAmount string    `json:"nominal_amount"`
	DueDay        int       `json:"due_day"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ClientListResponse represents the response for listing clients.
type ClientListResponse struct {
	Clients []ClientResponse `json:"clients"`
}

// ToClientResponse converts a domain Client entity to a ClientResponse DTO.
func ToClientResponse(client *entity.Client) ClientResponse {
	return ClientResponse{
		ID:            client.ID,
		Name:          client.Name,
		TaxID:         client.TaxID,
		Email:         client.Email,
		AreaCode:      client.AreaCode,
		Phone:         client.Phone,
		Street:        client.Street,
		Number:        client.Number,
		Complement:    client.Complement,
		District:      client.District,
		City:          client.City,
		State:         client.State,
		PostalCode:    client.PostalCode,
		NominalAmount: client.NominalAmount.StringFixed(2),
		DueDay:        client.DueDay,
		CreatedAt:     client.CreatedAt,
		UpdatedAt:     client.UpdatedAt,
	}
}

// ToClientListResponse converts domain Client entities to a ClientListResponse DTO.
func ToClientListResponse(clients []*entity.Client) ClientListResponse {
	response := ClientListResponse{Clients: make([]ClientResponse, len(clients))}
	for i, client := range clients {
		response.Clients[i] = ToClientResponse(client)
	}
	return response
}

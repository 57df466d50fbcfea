// Package entity defines the core business entities for the billing domain.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Client represents a billed client (the "cliente" record).
type Client struct {
	ID            uint
	Name          string
	TaxID         string // CPF or CNPJ
	Email         string
	AreaCode      string // DDD
	Phone         string
	Street        string
	Number        string
	Complement    string
	District      string
	City          string
	State         string // UF, two letters
	PostalCode    string // CEP
	NominalAmount decimal.Decimal // monthly billing amount
	DueDay        int             // day of month 1..31
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewClient creates a new Client entity.
func NewClient(name, taxID string, nominalAmount decimal.Decimal, dueDay int) *Client {
	now := time.Now().UTC()

	return &Client{
		Name:          name,
		TaxID:         taxID,
		NominalAmount: nominalAmount,
		DueDay:        dueDay,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

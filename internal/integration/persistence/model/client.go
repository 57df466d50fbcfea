// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/receber-inter/backend/internal/domain/entity"
)

// ClientModel represents the clients table in the database.
type ClientModel struct {
	ID            uint            `gorm:"primaryKey;autoIncrement"`
	Name          string          `gorm:"type:varchar(120);not null"`
	TaxID         string          `gorm:"type:varchar(18);not null;column:tax_id"`
	Email         string          `gorm:"type:varchar(120)"`
	AreaCode      string          `gorm:"type:varchar(3)"`
	Phone         string          `gorm:"type:varchar(15)"`
	Street        string          `gorm:"type:varchar(120)"`
	Number        string          `gorm:"type:varchar(10)"`
	Complement    string          `gorm:"type:varchar(60)"`
	District      string          `gorm:"type:varchar(60)"`
	City          string          `gorm:"type:varchar(60)"`
	State         string          `gorm:"type:varchar(2)"`
	PostalCode    string          `gorm:"type:varchar(9)"`
	NominalAmount decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	DueDay        int             `gorm:"not null"`
	CreatedAt     time.Time       `gorm:"not null"`
	UpdatedAt     time.Time       `gorm:"not null"`
}

// TableName returns the table name for the ClientModel.
func (ClientModel) TableName() string {
	return "clients"
}

// ToEntity converts a ClientModel to a domain Client entity.
func (m *ClientModel) ToEntity() *entity.Client {
	return &entity.Client{
		ID:            m.ID,
		Name:          m.Name,
		TaxID:         m.TaxID,
		Email:         m.Email,
		AreaCode:      m.AreaCode,
		Phone:         m.Phone,
		Street:        m.Street,
		Number:        m.Number,
		Complement:    m.Complement,
		District:      m.District,
		City:          m.City,
		State:         m.State,
		PostalCode:    m.PostalCode,
		NominalAmount: m.NominalAmount,
		DueDay:        m.DueDay,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// ClientFromEntity creates a ClientModel from a domain Client entity.
func ClientFromEntity(client *entity.Client) *ClientModel {
	return &ClientModel{
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
		NominalAmount: client.NominalAmount,
		DueDay:        client.DueDay,
		CreatedAt:     client.CreatedAt,
		UpdatedAt:     client.UpdatedAt,
	}
}

// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/receber-inter/backend/internal/domain/entity"
)

// InvoiceModel represents the invoices table in the database.
type InvoiceModel struct {
	ID             uint            `gorm:"primaryKey;autoIncrement"`
	ClientID       uint            `gorm:"not null;index;uniqueIndex:idx_invoices_client_reference"`
	ReferenceYear  int             `gorm:"not null;uniqueIndex:idx_invoices_client_reference"`
	ReferenceMonth int             `gorm:"not null;uniqueIndex:idx_invoices_client_reference"`
	DueDate        time.Time       `gorm:"type:date;not null;index"`
	Amount         decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Status         string          `gorm:"type:varchar(10);not null;index"`
	PaymentMethod  string          `gorm:"type:varchar(10)"`
	PaymentDate    *time.Time      `gorm:"type:date"`
	OurNumber      string          `gorm:"type:varchar(20)"`
	DigitableLine  string          `gorm:"type:varchar(60)"`
	Barcode        string          `gorm:"type:varchar(50)"`
	TxID           string          `gorm:"type:varchar(40);column:tx_id"`
	RequestCode    string          `gorm:"type:varchar(40)"`
	ErrorMessage   string          `gorm:"type:text"`
	CreatedAt      time.Time       `gorm:"not null"`
	UpdatedAt      time.Time       `gorm:"not null"`

	Client *ClientModel `gorm:"foreignKey:ClientID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for the InvoiceModel.
func (InvoiceModel) TableName() string {
	return "invoices"
}

// ToEntity converts an InvoiceModel to a domain Invoice entity.
func (m *InvoiceModel) ToEntity() *entity.Invoice {
	return &entity.Invoice{
		ID:             m.ID,
		ClientID:       m.ClientID,
		ReferenceYear:  m.ReferenceYear,
		ReferenceMonth: m.ReferenceMonth,
		DueDate:        m.DueDate,
		Amount:         m.Amount,
		Status:         entity.InvoiceStatus(m.Status),
		PaymentMethod:  entity.PaymentMethod(m.PaymentMethod),
		PaymentDate:    m.PaymentDate,
		OurNumber:      m.OurNumber,
		DigitableLine:  m.DigitableLine,
		Barcode:        m.Barcode,
		TxID:           m.TxID,
		RequestCode:    m.RequestCode,
		ErrorMessage:   m.ErrorMessage,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// InvoiceFromEntity creates an InvoiceModel from a domain Invoice entity.
func InvoiceFromEntity(invoice *entity.Invoice) *InvoiceModel {
	return &InvoiceModel{
		ID:             invoice.ID,
		ClientID:       invoice.ClientID,
		ReferenceYear:  invoice.ReferenceYear,
		ReferenceMonth: invoice.ReferenceMonth,
		DueDate:        invoice.DueDate,
		Amount:         invoice.Amount,
		Status:         string(invoice.Status),
		PaymentMethod:  string(invoice.PaymentMethod),
		PaymentDate:    invoice.PaymentDate,
		OurNumber:      invoice.OurNumber,
		DigitableLine:  invoice.DigitableLine,
		Barcode:        invoice.Barcode,
		TxID:           invoice.TxID,
		RequestCode:    invoice.RequestCode,
		ErrorMessage:   invoice.ErrorMessage,
		CreatedAt:      invoice.CreatedAt,
		UpdatedAt:      invoice.UpdatedAt,
	}
}

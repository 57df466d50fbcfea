// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/receber-inter/backend/internal/domain/entity"
)

// StatementEntryModel represents the statement_entries table in the database.
type StatementEntryModel struct {
	ID             uint            `gorm:"primaryKey;autoIncrement"`
	ContentHash    string          `gorm:"type:char(40);not null;uniqueIndex"`
	Date           time.Time       `gorm:"type:date;not null;index"`
	Description    string          `gorm:"type:varchar(255);not null"`
	DescriptionKey string          `gorm:"type:varchar(255);not null;index"`
	Amount         decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	InvoiceID      *uint           `gorm:"index"`
	CreatedAt      time.Time       `gorm:"not null"`
	UpdatedAt      time.Time       `gorm:"not null"`

	Invoice *InvoiceModel `gorm:"foreignKey:InvoiceID;references:ID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for the StatementEntryModel.
func (StatementEntryModel) TableName() string {
	return "statement_entries"
}

// ToEntity converts a StatementEntryModel to a domain StatementEntry entity.
func (m *StatementEntryModel) ToEntity() *entity.StatementEntry {
	return &entity.StatementEntry{
		ID:             m.ID,
		ContentHash:    m.ContentHash,
		Date:           m.Date,
		Description:    m.Description,
		DescriptionKey: m.DescriptionKey,
		Amount:         m.Amount,
		InvoiceID:      m.InvoiceID,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// StatementEntryFromEntity creates a StatementEntryModel from a domain StatementEntry entity.
func StatementEntryFromEntity(entry *entity.StatementEntry) *StatementEntryModel {
	return &StatementEntryModel{
		ID:             entry.ID,
		ContentHash:    entry.ContentHash,
		Date:           entry.Date,
		Description:    entry.Description,
		DescriptionKey: entry.DescriptionKey,
		Amount:         entry.Amount,
		InvoiceID:      entry.InvoiceID,
		CreatedAt:      entry.CreatedAt,
		UpdatedAt:      entry.UpdatedAt,
	}
}

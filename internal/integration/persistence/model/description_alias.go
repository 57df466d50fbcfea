// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/receber-inter/backend/internal/domain/entity"
)

// DescriptionAliasModel represents the description_aliases table in the database.
type DescriptionAliasModel struct {
	ID             uint      `gorm:"primaryKey;autoIncrement"`
	DescriptionKey string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	ClientID       uint      `gorm:"not null;index"`
	CreatedAt      time.Time `gorm:"not null"`
	UpdatedAt      time.Time `gorm:"not null"`

	Client *ClientModel `gorm:"foreignKey:ClientID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for the DescriptionAliasModel.
func (DescriptionAliasModel) TableName() string {
	return "description_aliases"
}

// ToEntity converts a DescriptionAliasModel to a domain DescriptionAlias entity.
func (m *DescriptionAliasModel) ToEntity() *entity.DescriptionAlias {
	return &entity.DescriptionAlias{
		ID:             m.ID,
		DescriptionKey: m.DescriptionKey,
		ClientID:       m.ClientID,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// DescriptionAliasFromEntity creates a DescriptionAliasModel from a domain DescriptionAlias entity.
func DescriptionAliasFromEntity(alias *entity.DescriptionAlias) *DescriptionAliasModel {
	return &DescriptionAliasModel{
		ID:             alias.ID,
		DescriptionKey: alias.DescriptionKey,
		ClientID:       alias.ClientID,
		CreatedAt:      alias.CreatedAt,
		UpdatedAt:      alias.UpdatedAt,
	}
}

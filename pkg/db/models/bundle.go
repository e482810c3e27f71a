package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/uniformworks/portal-backend/pkg/enums"
	"github.com/uniformworks/portal-backend/pkg/types"
)

// Bundle groups products for assignment against a budget. Items mirrors
// len(Products) and is maintained by the create/update path, not by the store.
type Bundle struct {
	ID          uint                  `gorm:"column:id;primaryKey;autoIncrement"`
	Name        string                `gorm:"column:name;not null"`
	Items       int                   `gorm:"column:items;not null;default:0"`
	Assigned    bool                  `gorm:"column:assigned;not null;default:false"`
	Budget      decimal.Decimal       `gorm:"column:budget;type:numeric;not null"`
	Category    *enums.BundleCategory `gorm:"column:category"`
	Description *string               `gorm:"column:description"`
	Products    types.BundleProducts  `gorm:"column:products;serializer:json"`
	IsActive    *bool                 `gorm:"column:is_active"`
	CreatedAt   time.Time             `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time             `gorm:"column:updated_at;autoUpdateTime"`
}

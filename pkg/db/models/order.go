package models

import (
	"github.com/shopspring/decimal"

	"github.com/uniformworks/portal-backend/pkg/enums"
)

// Order is a summary record keyed by a human-readable reference (ORD-001).
// No line items are persisted against it.
type Order struct {
	ID     string            `gorm:"column:id;primaryKey"`
	Date   string            `gorm:"column:date;not null"`
	Status enums.OrderStatus `gorm:"column:status;not null"`
	Total  decimal.Decimal   `gorm:"column:total;type:numeric;not null"`
	Items  int               `gorm:"column:items;not null"`
}

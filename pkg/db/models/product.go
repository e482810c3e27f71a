package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/uniformworks/portal-backend/pkg/types"
)

// Product is one catalog entry. Stock is the seed-time aggregate; the
// authoritative aggregate is derived from Sizes on read (see SizeStock.Total).
type Product struct {
	ID        uint            `gorm:"column:id;primaryKey;autoIncrement"`
	Name      string          `gorm:"column:name;not null"`
	Code      string          `gorm:"column:code;not null;uniqueIndex"`
	Price     decimal.Decimal `gorm:"column:price;type:numeric;not null"`
	Stock     int             `gorm:"column:stock;not null;default:0"`
	Image     *string         `gorm:"column:image"`
	Sizes     types.SizeStock `gorm:"column:sizes;serializer:json"`
	CreatedAt time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}

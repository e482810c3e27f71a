package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/uniformworks/portal-backend/pkg/enums"
)

// User represents a staff member with a procurement budget. Spent is allowed
// to exceed Budget; only the derived remaining amount is ever displayed.
type User struct {
	ID        uint             `gorm:"column:id;primaryKey;autoIncrement"`
	Name      string           `gorm:"column:name;not null"`
	Email     *string          `gorm:"column:email"`
	Role      string           `gorm:"column:role;not null;index:idx_users_role"`
	Company   string           `gorm:"column:company"`
	Budget    decimal.Decimal  `gorm:"column:budget;type:numeric;not null"`
	Spent     decimal.Decimal  `gorm:"column:spent;type:numeric;not null"`
	Status    enums.UserStatus `gorm:"column:status"`
	LastLogin *string          `gorm:"column:last_login"`
	Avatar    *string          `gorm:"column:avatar"`
	CreatedAt time.Time        `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time        `gorm:"column:updated_at;autoUpdateTime"`
}

package users

import (
	"github.com/shopspring/decimal"

	"github.com/uniformworks/portal-backend/pkg/db/models"
)

// UserDTO is the API shape for a staff member. Remaining is derived and may
// go negative; nothing caps spend at the budget.
type UserDTO struct {
	ID        uint            `json:"id"`
	Name      string          `json:"name"`
	Email     *string         `json:"email,omitempty"`
	Role      string          `json:"role"`
	Company   string          `json:"company"`
	Budget    decimal.Decimal `json:"budget"`
	Spent     decimal.Decimal `json:"spent"`
	Remaining decimal.Decimal `json:"remaining"`
	Status    string          `json:"status,omitempty"`
	LastLogin *string         `json:"last_login,omitempty"`
	Avatar    *string         `json:"avatar,omitempty"`
}

// UserInput carries the writable fields for create and update.
type UserInput struct {
	Name      string
	Email     *string
	Role      string
	Company   string
	Budget    decimal.Decimal
	Spent     decimal.Decimal
	Status    string
	LastLogin *string
	Avatar    *string
}

func toDTO(record models.User) UserDTO {
	return UserDTO{
		ID:        record.ID,
		Name:      record.Name,
		Email:     record.Email,
		Role:      record.Role,
		Company:   record.Company,
		Budget:    record.Budget,
		Spent:     record.Spent,
		Remaining: record.Budget.Sub(record.Spent),
		Status:    string(record.Status),
		LastLogin: record.LastLogin,
		Avatar:    record.Avatar,
	}
}

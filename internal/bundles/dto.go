package bundles

import (
	"github.com/shopspring/decimal"

	"github.com/uniformworks/portal-backend/pkg/db/models"
	"github.com/uniformworks/portal-backend/pkg/enums"
	"github.com/uniformworks/portal-backend/pkg/types"
)

// BundleDTO is the API shape for one bundle.
type BundleDTO struct {
	ID          uint                 `json:"id"`
	Name        string               `json:"name"`
	Items       int                  `json:"items"`
	Assigned    bool                 `json:"assigned"`
	Budget      decimal.Decimal      `json:"budget"`
	Category    string               `json:"category,omitempty"`
	Description string               `json:"description,omitempty"`
	Products    types.BundleProducts `json:"products,omitempty"`
	IsActive    *bool                `json:"is_active,omitempty"`
	TotalCost   decimal.Decimal      `json:"total_cost"`
}

// BundleInput carries the writable fields for create and update. Items is
// absent on purpose: it is always recomputed from Products.
type BundleInput struct {
	Name        string
	Budget      decimal.Decimal
	Category    string
	Description string
	Products    types.BundleProducts
	IsActive    *bool
}

func toDTO(record models.Bundle) BundleDTO {
	dto := BundleDTO{
		ID:        record.ID,
		Name:      record.Name,
		Items:     record.Items,
		Assigned:  record.Assigned,
		Budget:    record.Budget,
		Products:  record.Products,
		IsActive:  record.IsActive,
		TotalCost: record.Products.TotalCost(),
	}
	if record.Category != nil {
		dto.Category = string(*record.Category)
	}
	if record.Description != nil {
		dto.Description = *record.Description
	}
	return dto
}

func fromInput(input BundleInput) models.Bundle {
	record := models.Bundle{
		Name: input.Name,
		// The items count mirrors the embedded product lines; it is
		// maintained here on every write, not by a store constraint.
		Items:    len(input.Products),
		Assigned: false,
		Budget:   input.Budget,
		Products: input.Products,
		IsActive: input.IsActive,
	}
	if input.Category != "" {
		category := enums.BundleCategory(input.Category)
		record.Category = &category
	}
	if input.Description != "" {
		description := input.Description
		record.Description = &description
	}
	return record
}

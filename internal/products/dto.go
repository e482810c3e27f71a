package products

import (
	"github.com/shopspring/decimal"

	"github.com/uniformworks/portal-backend/pkg/db/models"
	"github.com/uniformworks/portal-backend/pkg/types"
)

// ProductDTO is the API shape for one catalog entry. Stock is always the
// derivation over Sizes when per-size counts exist; the stored aggregate is
// only trusted for products that track no sizes.
type ProductDTO struct {
	ID    uint            `json:"id"`
	Name  string          `json:"name"`
	Code  string          `json:"code"`
	Price decimal.Decimal `json:"price"`
	Stock int             `json:"stock"`
	Image *string         `json:"image,omitempty"`
	Sizes types.SizeStock `json:"sizes"`
}

func toDTO(record models.Product) ProductDTO {
	return ProductDTO{
		ID:    record.ID,
		Name:  record.Name,
		Code:  record.Code,
		Price: record.Price,
		Stock: DerivedStock(record),
		Image: record.Image,
		Sizes: record.Sizes,
	}
}

// DerivedStock computes the aggregate stock for a product on demand. Seed
// data's stored aggregate and the sum of per-size counts are not guaranteed
// consistent; the sum wins whenever sizes are tracked.
func DerivedStock(record models.Product) int {
	if len(record.Sizes) == 0 {
		return record.Stock
	}
	return record.Sizes.Total()
}

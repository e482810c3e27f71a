package types

import "github.com/shopspring/decimal"

// BundleProduct is one embedded product line inside a bundle.
type BundleProduct struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

// BundleProducts is the ordered list of lines a bundle carries.
type BundleProducts []BundleProduct

// TotalCost sums price times quantity across all lines.
func (b BundleProducts) TotalCost() decimal.Decimal {
	total := decimal.Zero
	for _, line := range b {
		total = total.Add(line.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return total
}

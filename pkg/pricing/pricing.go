package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/uniformworks/portal-backend/pkg/config"
)

// Policy is the single fee/tax policy applied everywhere a total is shown.
// The views it replaced disagreed with each other (8% vs 10% tax, free vs
// flat shipping), so every caller now goes through Quote.
type Policy struct {
	TaxRate          decimal.Decimal
	ShippingFee      decimal.Decimal
	FreeShippingOver decimal.Decimal
}

// NewPolicy builds a Policy from configuration.
func NewPolicy(cfg config.PricingConfig) Policy {
	return Policy{
		TaxRate:          cfg.TaxRate,
		ShippingFee:      cfg.ShippingFee,
		FreeShippingOver: cfg.FreeShippingOver,
	}
}

// Quote is the priced breakdown for a cart subtotal.
type Quote struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Tax      decimal.Decimal `json:"tax"`
	Shipping decimal.Decimal `json:"shipping"`
	Total    decimal.Decimal `json:"total"`
}

// Quote prices a subtotal: tax at the configured rate (rounded to cents),
// flat shipping waived at or above the free-shipping threshold. An empty
// subtotal quotes to zero across the board.
func (p Policy) Quote(subtotal decimal.Decimal) Quote {
	if subtotal.LessThanOrEqual(decimal.Zero) {
		return Quote{
			Subtotal: decimal.Zero,
			Tax:      decimal.Zero,
			Shipping: decimal.Zero,
			Total:    decimal.Zero,
		}
	}

	tax := subtotal.Mul(p.TaxRate).Round(2)

	shipping := p.ShippingFee
	if p.FreeShippingOver.GreaterThan(decimal.Zero) && subtotal.GreaterThanOrEqual(p.FreeShippingOver) {
		shipping = decimal.Zero
	}

	return Quote{
		Subtotal: subtotal,
		Tax:      tax,
		Shipping: shipping,
		Total:    subtotal.Add(tax).Add(shipping),
	}
}

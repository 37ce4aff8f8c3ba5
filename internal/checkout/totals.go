package checkout

import (
	"github.com/shopspring/decimal"

	"github.com/acehidan/otastaionary-ecommence/internal/domain"
)

var (
	// Orders strictly above the threshold ship free; an order of exactly
	// 50.00 still pays the flat fee.
	freeShippingThreshold = decimal.NewFromInt(50)
	flatShippingFee       = decimal.NewFromFloat(9.99)
	taxRate               = decimal.NewFromFloat(0.08)
)

// Summary is the order cost breakdown shown on every checkout step.
type Summary struct {
	Subtotal     domain.Money
	Shipping     domain.Money
	Tax          domain.Money
	Total        domain.Money
	FreeShipping bool
}

// Summarize computes the cost breakdown for a cart snapshot:
// subtotal is the sum of line totals, shipping is waived above the free
// threshold, tax is a flat rate on the subtotal rounded to cents.
func Summarize(items []domain.CartItem) Summary {
	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.LineTotal().Amount)
	}

	free := subtotal.GreaterThan(freeShippingThreshold)
	shipping := flatShippingFee
	if free {
		shipping = decimal.Zero
	}

	tax := subtotal.Mul(taxRate).Round(2)
	total := subtotal.Add(shipping).Add(tax)

	return Summary{
		Subtotal:     domain.USD(subtotal),
		Shipping:     domain.USD(shipping),
		Tax:          domain.USD(tax),
		Total:        domain.USD(total),
		FreeShipping: free,
	}
}

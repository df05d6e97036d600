package catalog

import (
	"trackhub/internal/model"
)

// deriveColumns computes the derived fields from the raw columns.
// NaN inputs propagate, and a zero original price yields a non-finite
// discount rather than an error.
func deriveColumns(p *model.Product) {
	selling := float64(p.SellingPrice)
	original := float64(p.OriginalPrice)

	p.DiscountPct = model.Float(100 * (original - selling) / original)
	p.ValueScore = model.Float(float64(p.Rating) * float64(p.Reviews) / selling)
	p.PriceCategory = PriceCategoryFor(p.SellingPrice)
}

// PriceCategoryFor assigns the fixed price bin for a selling price.
// Bins are open on the left and closed on the right; prices at or
// below zero, and NaN prices, get no category.
func PriceCategoryFor(price model.Float) string {
	if !price.Valid() || price <= 0 {
		return ""
	}
	switch {
	case price <= 2000:
		return model.CategoryBudget
	case price <= 5000:
		return model.CategoryMidRange
	case price <= 10000:
		return model.CategoryPremium
	default:
		return model.CategoryLuxury
	}
}

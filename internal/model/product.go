package model

// Price category labels assigned from the fixed selling-price bins
// (0, 2000], (2000, 5000], (5000, 10000], (10000, +inf).
const (
	CategoryBudget   = "Budget"
	CategoryMidRange = "Mid-Range"
	CategoryPremium  = "Premium"
	CategoryLuxury   = "Luxury"
)

// Product represents one fitness tracker in the catalogue.
// Numeric columns that failed coercion hold NaN; Reviews defaults to
// zero instead so sorting and selection stay stable.
type Product struct {
	Brand         string `json:"brand"`
	ModelName     string `json:"modelName"`
	DeviceType    string `json:"deviceType"`
	Color         string `json:"color"`
	Display       string `json:"display"`
	StrapMaterial string `json:"strapMaterial"`
	SellingPrice  Float  `json:"sellingPrice"`
	OriginalPrice Float  `json:"originalPrice"`
	Rating        Float  `json:"rating"`
	Reviews       int    `json:"reviews"`
	BatteryDays   Float  `json:"batteryDays"`

	// Derived columns, recomputed from the raw columns at load time
	// and never mutated independently of them.
	DiscountPct   Float  `json:"discountPct"`
	ValueScore    Float  `json:"valueScore"`
	PriceCategory string `json:"priceCategory,omitempty"`
}

package catalog

import (
	"context"
)

// Column headers the source data must carry. A source with any of these
// missing is rejected outright; there is no partial-schema tolerance.
const (
	ColBrand         = "Brand Name"
	ColModelName     = "Model Name"
	ColDeviceType    = "Device Type"
	ColColor         = "Color"
	ColDisplay       = "Display"
	ColStrapMaterial = "Strap Material"
	ColSellingPrice  = "Selling Price"
	ColOriginalPrice = "Original Price"
	ColRating        = "Rating (Out of 5)"
	ColReviews       = "Reviews"
	ColBatteryDays   = "Average Battery Life (in days)"
)

// RequiredColumns lists every column a catalogue source must provide.
var RequiredColumns = []string{
	ColBrand,
	ColModelName,
	ColDeviceType,
	ColColor,
	ColDisplay,
	ColStrapMaterial,
	ColSellingPrice,
	ColOriginalPrice,
	ColRating,
	ColReviews,
	ColBatteryDays,
}

// Source defines the interface for loading the catalogue.
type Source interface {
	// Load reads the catalogue and returns it as an immutable table
	// with cleaned columns and derived fields computed.
	Load(ctx context.Context) (*Table, error)
}

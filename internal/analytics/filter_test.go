package analytics

import (
	"testing"

	"trackhub/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 {
	return &v
}

func filterFixture() []model.Product {
	return []model.Product{
		{Brand: "Boat", ModelName: "Storm", DeviceType: "Smartwatch", Color: "Black", SellingPrice: 1999, Rating: 4.2},
		{Brand: "Fitbit", ModelName: "Charge 5", DeviceType: "FitnessBand", Color: "Blue", SellingPrice: 9999, Rating: 4.5},
		{Brand: "Noise", ModelName: "ColorFit", DeviceType: "Smartwatch", Color: "Black", SellingPrice: 2999, Rating: 3.9},
		{Brand: "Boat", ModelName: "Wave", DeviceType: "Smartwatch", Color: "Red", SellingPrice: model.NaN(), Rating: 4.0},
	}
}

func TestFilter_Apply(t *testing.T) {
	products := filterFixture()

	tests := []struct {
		name           string
		filter         Filter
		expectedModels []string
	}{
		{
			name:           "Empty filter passes everything through",
			filter:         Filter{},
			expectedModels: []string{"Storm", "Charge 5", "ColorFit", "Wave"},
		},
		{
			name:           "Brand filter",
			filter:         Filter{Brands: []string{"Boat"}},
			expectedModels: []string{"Storm", "Wave"},
		},
		{
			name:           "Device type filter",
			filter:         Filter{DeviceTypes: []string{"FitnessBand"}},
			expectedModels: []string{"Charge 5"},
		},
		{
			name:           "Color filter",
			filter:         Filter{Colors: []string{"Black"}},
			expectedModels: []string{"Storm", "ColorFit"},
		},
		{
			name:           "Inclusive price bounds",
			filter:         Filter{MinPrice: floatPtr(1999), MaxPrice: floatPtr(2999)},
			expectedModels: []string{"Storm", "ColorFit"},
		},
		{
			name:           "Minimum rating",
			filter:         Filter{MinRating: floatPtr(4.2)},
			expectedModels: []string{"Storm", "Charge 5", "Wave"},
		},
		{
			name: "Conjunction of all constraints",
			filter: Filter{
				Brands:      []string{"Boat", "Noise"},
				DeviceTypes: []string{"Smartwatch"},
				Colors:      []string{"Black"},
				MinPrice:    floatPtr(1000),
				MaxPrice:    floatPtr(5000),
				MinRating:   floatPtr(4.0),
			},
			expectedModels: []string{"Storm"},
		},
		{
			name:           "Price constraint drops rows without a price",
			filter:         Filter{MinPrice: floatPtr(0)},
			expectedModels: []string{"Storm", "Charge 5", "ColorFit"},
		},
		{
			name:           "No brand matches",
			filter:         Filter{Brands: []string{"Garmin"}},
			expectedModels: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.filter.Apply(products)

			models := make([]string, 0, len(result))
			for _, p := range result {
				models = append(models, p.ModelName)
			}
			assert.Equal(t, tt.expectedModels, models)
		})
	}
}

// Applying the same filter twice yields the same set as applying it
// once.
func TestFilter_Idempotent(t *testing.T) {
	filter := Filter{
		Brands:    []string{"Boat", "Fitbit"},
		MinPrice:  floatPtr(1000),
		MaxPrice:  floatPtr(10000),
		MinRating: floatPtr(4.0),
	}

	once := filter.Apply(filterFixture())
	twice := filter.Apply(once)

	assert.Equal(t, once, twice)
}

// An empty multi-select means "no constraint": filtering by an empty
// brand set returns the same row count as the unfiltered table.
func TestFilter_EmptyMultiSelectPassThrough(t *testing.T) {
	products := filterFixture()
	withRating := Filter{MinRating: floatPtr(4.0)}
	withRatingAndEmptyBrands := Filter{MinRating: floatPtr(4.0), Brands: []string{}}

	require.Equal(t,
		len(withRating.Apply(products)),
		len(withRatingAndEmptyBrands.Apply(products)))
	assert.Len(t, Filter{}.Apply(products), len(products))
}

func TestFilter_PreservesOrderAndInput(t *testing.T) {
	products := filterFixture()
	result := Filter{DeviceTypes: []string{"Smartwatch"}}.Apply(products)

	require.Len(t, result, 3)
	assert.Equal(t, "Storm", result[0].ModelName)
	assert.Equal(t, "ColorFit", result[1].ModelName)
	assert.Equal(t, "Wave", result[2].ModelName)

	// Source slice untouched
	assert.Len(t, products, 4)
}

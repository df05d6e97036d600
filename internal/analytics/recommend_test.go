package analytics

import (
	"testing"

	"trackhub/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recommendFixture() []model.Product {
	return []model.Product{
		{Brand: "Boat", ModelName: "Storm", DeviceType: "Smartwatch", SellingPrice: 1999, Rating: 4.3, Reviews: 5000, BatteryDays: 7, ValueScore: 10.8},
		{Brand: "Noise", ModelName: "ColorFit", DeviceType: "Smartwatch", SellingPrice: 2999, Rating: 4.1, Reviews: 12000, BatteryDays: 6, ValueScore: 16.4},
		{Brand: "Boat", ModelName: "Wave", DeviceType: "Smartwatch", SellingPrice: 3499, Rating: 4.5, Reviews: 800, BatteryDays: 10, ValueScore: 1.03},
		{Brand: "Fitbit", ModelName: "Inspire", DeviceType: "FitnessBand", SellingPrice: 4999, Rating: 4.0, Reviews: 2000, BatteryDays: 9, ValueScore: 1.6},
		{Brand: "Fitbit", ModelName: "Charge 5", DeviceType: "FitnessBand", SellingPrice: 9999, Rating: 4.6, Reviews: 900, BatteryDays: 10, ValueScore: 0.41},
		{Brand: "Garmin", ModelName: "Venu", DeviceType: "Smartwatch", SellingPrice: 24999, Rating: 4.7, Reviews: 300, BatteryDays: 11, ValueScore: 0.06},
		{Brand: "Noise", ModelName: "Pulse", DeviceType: "Smartwatch", SellingPrice: 2499, Rating: 3.7, Reviews: 9000, BatteryDays: 8, ValueScore: 13.3},
		{Brand: "Boat", ModelName: "Flash", DeviceType: "Smartwatch", SellingPrice: 2799, Rating: 4.2, Reviews: 3000, BatteryDays: 4, ValueScore: 4.5},
	}
}

func TestRecommend_MidRangeByValue(t *testing.T) {
	result, err := Recommend(recommendFixture(), RecommendationRequest{
		Budget:     BudgetMidRange,
		Priority:   PriorityValue,
		MinRating:  4.0,
		MinBattery: 5,
	})

	require.NoError(t, err)
	assert.Empty(t, result.Message)

	// ColorFit (2999), Wave (3499), Inspire (4999) fit the bracket with
	// rating >= 4.0 and battery >= 5. Storm is under the bracket, Pulse
	// is below the rating floor, Flash below the battery floor.
	require.Len(t, result.Products, 3)
	assert.Equal(t, "ColorFit", result.Products[0].ModelName)
	assert.Equal(t, "Inspire", result.Products[1].ModelName)
	assert.Equal(t, "Wave", result.Products[2].ModelName)

	for _, p := range result.Products {
		price := float64(p.SellingPrice)
		assert.Greater(t, price, 2000.0)
		assert.LessOrEqual(t, price, 5000.0)
		assert.GreaterOrEqual(t, float64(p.Rating), 4.0)
		assert.GreaterOrEqual(t, float64(p.BatteryDays), 5.0)
	}
}

func TestRecommend_BudgetBrackets(t *testing.T) {
	tests := []struct {
		name           string
		budget         string
		expectedModels []string
	}{
		{"Budget includes the 2000 boundary", BudgetLow, []string{"Storm"}},
		{"Premium excludes the 5000 boundary", BudgetPremium, []string{"Charge 5"}},
		{"Luxury is open ended", BudgetLuxury, []string{"Venu"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Recommend(recommendFixture(), RecommendationRequest{
				Budget:   tt.budget,
				Priority: PriorityRating,
			})

			require.NoError(t, err)
			models := make([]string, 0, len(result.Products))
			for _, p := range result.Products {
				models = append(models, p.ModelName)
			}
			assert.Equal(t, tt.expectedModels, models)
		})
	}
}

func TestRecommend_BrandAndDevicePreference(t *testing.T) {
	result, err := Recommend(recommendFixture(), RecommendationRequest{
		Budget:     BudgetMidRange,
		Priority:   PriorityReviews,
		Brand:      "Noise",
		DeviceType: "Smartwatch",
	})

	require.NoError(t, err)
	require.Len(t, result.Products, 2)
	assert.Equal(t, "ColorFit", result.Products[0].ModelName)
	assert.Equal(t, "Pulse", result.Products[1].ModelName)
}

func TestRecommend_PriorityOrdering(t *testing.T) {
	tests := []struct {
		name     string
		priority string
		first    string
	}{
		{"Value", PriorityValue, "ColorFit"},
		{"Rating", PriorityRating, "Wave"},
		{"Reviews", PriorityReviews, "ColorFit"},
		{"Battery", PriorityBattery, "Wave"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Recommend(recommendFixture(), RecommendationRequest{
				Budget:   BudgetMidRange,
				Priority: tt.priority,
			})

			require.NoError(t, err)
			require.NotEmpty(t, result.Products)
			assert.Equal(t, tt.first, result.Products[0].ModelName)
		})
	}
}

func TestRecommend_CapsAtFive(t *testing.T) {
	products := make([]model.Product, 8)
	for i := range products {
		products[i] = model.Product{
			ModelName:    "Model",
			SellingPrice: 2500,
			Rating:       4.0,
			BatteryDays:  7,
			ValueScore:   model.Float(i),
		}
	}

	result, err := Recommend(products, RecommendationRequest{
		Budget:   BudgetMidRange,
		Priority: PriorityValue,
	})

	require.NoError(t, err)
	assert.Len(t, result.Products, maxRecommendations)
}

func TestRecommend_NoMatches(t *testing.T) {
	result, err := Recommend(recommendFixture(), RecommendationRequest{
		Budget:    BudgetLow,
		Priority:  PriorityValue,
		MinRating: 4.9,
	})

	require.NoError(t, err)
	assert.Empty(t, result.Products)
	assert.Equal(t, NoMatchMessage, result.Message)
}

func TestRecommend_InvalidInputs(t *testing.T) {
	_, err := Recommend(nil, RecommendationRequest{Budget: "mega", Priority: PriorityValue})
	assert.ErrorIs(t, err, model.ErrInvalidBudget)

	_, err = Recommend(nil, RecommendationRequest{Budget: BudgetLow, Priority: "fastest"})
	assert.ErrorIs(t, err, model.ErrInvalidPriority)
}

func TestRecommend_SkipsRowsWithoutPriceOrRating(t *testing.T) {
	products := []model.Product{
		{ModelName: "NoPrice", SellingPrice: model.NaN(), Rating: 4.5, BatteryDays: 7},
		{ModelName: "NoRating", SellingPrice: 2500, Rating: model.NaN(), BatteryDays: 7},
		{ModelName: "Keeper", SellingPrice: 2500, Rating: 4.5, BatteryDays: 7, ValueScore: 1},
	}

	result, err := Recommend(products, RecommendationRequest{
		Budget:   BudgetMidRange,
		Priority: PriorityValue,
	})

	require.NoError(t, err)
	require.Len(t, result.Products, 1)
	assert.Equal(t, "Keeper", result.Products[0].ModelName)
}

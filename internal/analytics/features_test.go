package analytics

import (
	"testing"

	"trackhub/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueCounts(t *testing.T) {
	products := []model.Product{
		{Display: "LCD Display"},
		{Display: "AMOLED Display"},
		{Display: "LCD Display"},
		{Display: ""},
		{Display: "TFT Display"},
		{Display: "AMOLED Display"},
		{Display: "LCD Display"},
	}

	items := valueCounts(products, func(p model.Product) string { return p.Display }, 0)

	require.Len(t, items, 3)
	assert.Equal(t, CountItem{Label: "LCD Display", Count: 3}, items[0])
	assert.Equal(t, CountItem{Label: "AMOLED Display", Count: 2}, items[1])
	assert.Equal(t, CountItem{Label: "TFT Display", Count: 1}, items[2])
}

func TestValueCounts_TiesKeepFirstOccurrence(t *testing.T) {
	products := []model.Product{
		{Color: "Black"},
		{Color: "Blue"},
		{Color: "Black"},
		{Color: "Blue"},
	}

	items := valueCounts(products, func(p model.Product) string { return p.Color }, 0)

	require.Len(t, items, 2)
	assert.Equal(t, "Black", items[0].Label)
	assert.Equal(t, "Blue", items[1].Label)
}

func TestValueCounts_Limit(t *testing.T) {
	products := []model.Product{
		{Color: "Black"}, {Color: "Black"},
		{Color: "Blue"},
		{Color: "Red"},
	}

	items := valueCounts(products, func(p model.Product) string { return p.Color }, 2)

	require.Len(t, items, 2)
	assert.Equal(t, "Black", items[0].Label)
}

func TestBatteryHistogram(t *testing.T) {
	products := []model.Product{
		{BatteryDays: 5},
		{BatteryDays: 10},
		{BatteryDays: 15},
		{BatteryDays: 25},
		{BatteryDays: model.NaN()},
	}

	bins := batteryHistogram(products)

	require.Len(t, bins, batteryHistogramBins)
	assert.InDelta(t, 5, bins[0].Low, 1e-9)
	assert.InDelta(t, 25, bins[len(bins)-1].High, 1e-9)

	// Every finite value lands in exactly one bin
	total := 0
	for _, bin := range bins {
		total += bin.Count
	}
	assert.Equal(t, 4, total)

	// The maximum value falls into the last bin, not past it
	assert.Equal(t, 1, bins[len(bins)-1].Count)
}

func TestBatteryHistogram_SingleValue(t *testing.T) {
	bins := batteryHistogram([]model.Product{
		{BatteryDays: 7},
		{BatteryDays: 7},
	})

	require.Len(t, bins, 1)
	assert.Equal(t, HistogramBin{Low: 7, High: 7, Count: 2}, bins[0])
}

func TestBatteryHistogram_NoFiniteValues(t *testing.T) {
	assert.Nil(t, batteryHistogram([]model.Product{{BatteryDays: model.NaN()}}))
	assert.Nil(t, batteryHistogram(nil))
}

func TestBatteryByBrand(t *testing.T) {
	products := []model.Product{
		{Brand: "Boat", BatteryDays: 7},
		{Brand: "Fitbit", BatteryDays: 10},
		{Brand: "Boat", BatteryDays: 9},
		{Brand: "Fitbit", BatteryDays: model.NaN()},
	}

	stats := batteryByBrand(products)

	require.Len(t, stats, 2)
	assert.Equal(t, "Fitbit", stats[0].Brand)
	assert.InDelta(t, 10, float64(stats[0].AvgBatteryDays), 1e-9)
	assert.Equal(t, "Boat", stats[1].Brand)
	assert.InDelta(t, 8, float64(stats[1].AvgBatteryDays), 1e-9)
}

func TestBuildFeatures(t *testing.T) {
	view := BuildFeatures(viewFixture())

	require.Len(t, view.DisplayTypes, 2)
	assert.Equal(t, CountItem{Label: "AMOLED Display", Count: 2}, view.DisplayTypes[0])
	require.Len(t, view.StrapMaterials, 3)
	assert.Equal(t, CountItem{Label: "Silicone", Count: 2}, view.StrapMaterials[0])
	require.Len(t, view.TopColors, 3)
	assert.Equal(t, CountItem{Label: "Black", Count: 2}, view.TopColors[0])
	assert.NotEmpty(t, view.BatteryHistogram)
	assert.Len(t, view.BatteryByBrand, 3)
}

func TestBuildFeatures_Empty(t *testing.T) {
	view := BuildFeatures(nil)

	assert.Empty(t, view.DisplayTypes)
	assert.Empty(t, view.StrapMaterials)
	assert.Empty(t, view.BatteryHistogram)
	assert.Empty(t, view.BatteryByBrand)
	assert.Empty(t, view.TopColors)
}

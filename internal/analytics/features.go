package analytics

import (
	"math"
	"sort"

	"trackhub/internal/model"
)

// CountItem is a label with its row count.
type CountItem struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// HistogramBin is one equal-width bucket of the battery histogram.
type HistogramBin struct {
	Low   float64 `json:"low"`
	High  float64 `json:"high"`
	Count int     `json:"count"`
}

// BrandBattery is the mean battery life for one brand.
type BrandBattery struct {
	Brand          string      `json:"brand"`
	AvgBatteryDays model.Float `json:"avgBatteryDays"`
}

// FeaturesView holds the feature analysis distributions.
type FeaturesView struct {
	DisplayTypes     []CountItem    `json:"displayTypes"`
	StrapMaterials   []CountItem    `json:"strapMaterials"`
	BatteryHistogram []HistogramBin `json:"batteryHistogram"`
	BatteryByBrand   []BrandBattery `json:"batteryByBrand"`
	TopColors        []CountItem    `json:"topColors"`
}

const batteryHistogramBins = 20

// BuildFeatures computes the feature analysis view over the filtered
// rows.
func BuildFeatures(products []model.Product) FeaturesView {
	return FeaturesView{
		DisplayTypes:     valueCounts(products, func(p model.Product) string { return p.Display }, 0),
		StrapMaterials:   valueCounts(products, func(p model.Product) string { return p.StrapMaterial }, 0),
		BatteryHistogram: batteryHistogram(products),
		BatteryByBrand:   batteryByBrand(products),
		TopColors:        valueCounts(products, func(p model.Product) string { return p.Color }, 10),
	}
}

// valueCounts counts rows per label, sorted by count descending with
// ties in first-occurrence order. A positive limit truncates the list.
func valueCounts(products []model.Product, key func(model.Product) string, limit int) []CountItem {
	counts := make(map[string]int)
	var order []string
	for _, p := range products {
		label := key(p)
		if label == "" {
			continue
		}
		if _, ok := counts[label]; !ok {
			order = append(order, label)
		}
		counts[label]++
	}

	items := make([]CountItem, 0, len(order))
	for _, label := range order {
		items = append(items, CountItem{Label: label, Count: counts[label]})
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Count > items[j].Count
	})

	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items
}

// batteryHistogram buckets battery life into equal-width bins over the
// observed range. Rows without a finite battery value are skipped.
func batteryHistogram(products []model.Product) []HistogramBin {
	var values []float64
	for _, p := range products {
		v := float64(p.BatteryDays)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		values = append(values, v)
	}
	if len(values) == 0 {
		return nil
	}

	low, high := values[0], values[0]
	for _, v := range values {
		if v < low {
			low = v
		}
		if v > high {
			high = v
		}
	}

	if low == high {
		return []HistogramBin{{Low: low, High: high, Count: len(values)}}
	}

	width := (high - low) / batteryHistogramBins
	bins := make([]HistogramBin, batteryHistogramBins)
	for i := range bins {
		bins[i].Low = low + width*float64(i)
		bins[i].High = low + width*float64(i+1)
	}
	bins[len(bins)-1].High = high

	for _, v := range values {
		idx := int((v - low) / width)
		if idx >= batteryHistogramBins {
			idx = batteryHistogramBins - 1
		}
		bins[idx].Count++
	}
	return bins
}

// batteryByBrand computes the mean battery life per brand, sorted
// descending by the mean.
func batteryByBrand(products []model.Product) []BrandBattery {
	byBrand := make(map[string][]model.Product)
	var order []string
	for _, p := range products {
		if p.Brand == "" {
			continue
		}
		if _, ok := byBrand[p.Brand]; !ok {
			order = append(order, p.Brand)
		}
		byBrand[p.Brand] = append(byBrand[p.Brand], p)
	}

	stats := make([]BrandBattery, 0, len(order))
	for _, brand := range order {
		stats = append(stats, BrandBattery{
			Brand:          brand,
			AvgBatteryDays: mean(byBrand[brand], byBatteryDays),
		})
	}
	sort.SliceStable(stats, func(i, j int) bool {
		return float64(stats[i].AvgBatteryDays) > float64(stats[j].AvgBatteryDays)
	})
	return stats
}

package analytics

import (
	"math"
	"sort"

	"trackhub/internal/model"
)

// CorrelationInsight is a correlation coefficient with its strategic
// label.
type CorrelationInsight struct {
	Coefficient model.Float `json:"coefficient"`
	Label       string      `json:"label"`
}

// BrandMatrixRow is one brand's row of the competitive landscape
// matrix.
type BrandMatrixRow struct {
	Brand          string      `json:"brand"`
	AvgPrice       model.Float `json:"avgPrice"`
	MinPrice       model.Float `json:"minPrice"`
	MaxPrice       model.Float `json:"maxPrice"`
	AvgRating      model.Float `json:"avgRating"`
	TotalReviews   int         `json:"totalReviews"`
	ProductCount   int         `json:"productCount"`
	AvgDiscountPct model.Float `json:"avgDiscountPct"`
}

// GapSegment is one market segment of the gap analysis. A lower gap
// ratio indicates more unmet demand.
type GapSegment struct {
	Segment          string      `json:"segment"`
	OpportunityScore int         `json:"opportunityScore"`
	MarketSize       int         `json:"marketSize"`
	GapRatio         model.Float `json:"gapRatio"`
}

// DeepDiveView holds the advanced analytics: concentration,
// correlations, the competitive matrix, and the gap analysis.
type DeepDiveView struct {
	MarketConcentrationPct model.Float        `json:"marketConcentrationPct"`
	PriceRating            CorrelationInsight `json:"priceRating"`
	BatteryPrice           CorrelationInsight `json:"batteryPrice"`
	CompetitiveMatrix      []BrandMatrixRow   `json:"competitiveMatrix"`
	GapAnalysis            []GapSegment       `json:"gapAnalysis"`
}

// BuildDeepDive computes the deep dive analytics over the filtered
// rows.
func BuildDeepDive(products []model.Product) DeepDiveView {
	priceRating := correlation(products, bySellingPrice, byRating)
	batteryPrice := correlation(products, byBatteryDays, bySellingPrice)

	return DeepDiveView{
		MarketConcentrationPct: marketConcentration(products),
		PriceRating: CorrelationInsight{
			Coefficient: priceRating,
			Label:       correlationStrength(priceRating),
		},
		BatteryPrice: CorrelationInsight{
			Coefficient: batteryPrice,
			Label:       batteryImpact(batteryPrice),
		},
		CompetitiveMatrix: competitiveMatrix(products),
		GapAnalysis:       gapAnalysis(products),
	}
}

// marketConcentration returns the share of rows held by the three
// largest brands, as a percentage.
func marketConcentration(products []model.Product) model.Float {
	if len(products) == 0 {
		return model.NaN()
	}

	counts := valueCounts(products, func(p model.Product) string { return p.Brand }, 3)
	top := 0
	for _, c := range counts {
		top += c.Count
	}
	return model.Float(float64(top) / float64(len(products)) * 100)
}

// correlationStrength labels the price-quality correlation. The
// comparisons are false for NaN, so an undefined coefficient falls
// through to Weak, matching how the thresholds were originally applied.
func correlationStrength(r model.Float) string {
	abs := math.Abs(float64(r))
	switch {
	case abs > 0.5:
		return "Strong"
	case abs > 0.3:
		return "Moderate"
	default:
		return "Weak"
	}
}

// batteryImpact labels whether long battery life commands a premium.
func batteryImpact(r model.Float) string {
	if float64(r) > 0.3 {
		return "Premium Feature"
	}
	return "Standard Feature"
}

// competitiveMatrix aggregates per brand, sorted by brand name, with
// every numeric column rounded to two decimal places.
func competitiveMatrix(products []model.Product) []BrandMatrixRow {
	byBrand := make(map[string][]model.Product)
	for _, p := range products {
		if p.Brand == "" {
			continue
		}
		byBrand[p.Brand] = append(byBrand[p.Brand], p)
	}

	brands := make([]string, 0, len(byBrand))
	for brand := range byBrand {
		brands = append(brands, brand)
	}
	sort.Strings(brands)

	matrix := make([]BrandMatrixRow, 0, len(brands))
	for _, brand := range brands {
		rows := byBrand[brand]

		minPrice, maxPrice := model.NaN(), model.NaN()
		totalReviews := 0
		for _, p := range rows {
			totalReviews += p.Reviews
			if !p.SellingPrice.Valid() {
				continue
			}
			if !minPrice.Valid() || p.SellingPrice < minPrice {
				minPrice = p.SellingPrice
			}
			if !maxPrice.Valid() || p.SellingPrice > maxPrice {
				maxPrice = p.SellingPrice
			}
		}

		matrix = append(matrix, BrandMatrixRow{
			Brand:          brand,
			AvgPrice:       round2(mean(rows, bySellingPrice)),
			MinPrice:       round2(minPrice),
			MaxPrice:       round2(maxPrice),
			AvgRating:      round2(mean(rows, byRating)),
			TotalReviews:   totalReviews,
			ProductCount:   len(rows),
			AvgDiscountPct: round2(mean(rows, byDiscountPct)),
		})
	}
	return matrix
}

// gapAnalysis evaluates the three fixed opportunity segments. The gap
// ratio divides opportunity rows by segment market size; an empty
// segment yields a non-finite ratio that serialises as null.
func gapAnalysis(products []model.Product) []GapSegment {
	price := func(p model.Product) (float64, bool) {
		return float64(p.SellingPrice), p.SellingPrice.Valid()
	}

	segments := []struct {
		name        string
		market      func(model.Product) bool
		opportunity func(model.Product) bool
	}{
		{
			name: "Budget High-Quality",
			market: func(p model.Product) bool {
				v, ok := price(p)
				return ok && v < 3000
			},
			opportunity: func(p model.Product) bool {
				v, ok := price(p)
				return ok && v < 3000 && float64(p.Rating) > 4.5
			},
		},
		{
			name: "Premium Long-Battery",
			market: func(p model.Product) bool {
				v, ok := price(p)
				return ok && v > 8000
			},
			opportunity: func(p model.Product) bool {
				v, ok := price(p)
				return ok && v > 8000 && float64(p.BatteryDays) > 20
			},
		},
		{
			name: "Mid-Range Popular",
			market: func(p model.Product) bool {
				v, ok := price(p)
				return ok && v >= 3000 && v <= 8000
			},
			opportunity: func(p model.Product) bool {
				v, ok := price(p)
				return ok && v >= 3000 && v <= 8000 && p.Reviews > 1000
			},
		},
	}

	result := make([]GapSegment, 0, len(segments))
	for _, seg := range segments {
		opportunity, market := 0, 0
		for _, p := range products {
			if seg.market(p) {
				market++
			}
			if seg.opportunity(p) {
				opportunity++
			}
		}
		result = append(result, GapSegment{
			Segment:          seg.name,
			OpportunityScore: opportunity,
			MarketSize:       market,
			GapRatio:         model.Float(float64(opportunity) / float64(market)),
		})
	}
	return result
}

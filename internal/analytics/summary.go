package analytics

import (
	"trackhub/internal/model"
)

// SummaryView holds the executive summary: headline averages plus the
// standout picks.
type SummaryView struct {
	TotalProducts  int            `json:"totalProducts"`
	AvgRating      model.Float    `json:"avgRating"`
	AvgPrice       model.Float    `json:"avgPrice"`
	AvgBatteryDays model.Float    `json:"avgBatteryDays"`
	AvgDiscountPct model.Float    `json:"avgDiscountPct"`
	BestValue      *model.Product `json:"bestValue,omitempty"`
	MostReviewed   *model.Product `json:"mostReviewed,omitempty"`
	TopRated       *model.Product `json:"topRated,omitempty"`
}

// BuildSummary computes the executive summary over the filtered rows.
// Each "largest value" pick resolves ties to the first-occurring row.
func BuildSummary(products []model.Product) SummaryView {
	view := SummaryView{
		TotalProducts:  len(products),
		AvgRating:      mean(products, byRating),
		AvgPrice:       mean(products, bySellingPrice),
		AvgBatteryDays: mean(products, byBatteryDays),
		AvgDiscountPct: mean(products, byDiscountPct),
	}

	if best, ok := maxRow(products, byValueScore); ok {
		view.BestValue = &best
	}
	if popular, ok := maxRow(products, byReviews); ok {
		view.MostReviewed = &popular
	}
	if rated, ok := maxRow(products, byRating); ok {
		view.TopRated = &rated
	}

	return view
}

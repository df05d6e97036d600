package analytics

import (
	"trackhub/internal/model"
)

// Budget brackets for the recommendation engine. Each bracket is open
// on the left and closed on the right, except Budget (at most 2000)
// and Luxury (above 10000).
const (
	BudgetLow      = "budget"    // 0 - 2000
	BudgetMidRange = "mid-range" // 2000 - 5000
	BudgetPremium  = "premium"   // 5000 - 10000
	BudgetLuxury   = "luxury"    // 10000+
)

// Priority keys the narrowed set is re-sorted by.
const (
	PriorityValue   = "value"
	PriorityRating  = "rating"
	PriorityReviews = "reviews"
	PriorityBattery = "battery"
)

const maxRecommendations = 5

// RecommendationRequest holds the user's preferences. Empty Brand or
// DeviceType means no preference.
type RecommendationRequest struct {
	Budget     string  `json:"budget"`
	Priority   string  `json:"priority"`
	Brand      string  `json:"brand,omitempty"`
	DeviceType string  `json:"deviceType,omitempty"`
	MinRating  float64 `json:"minRating"`
	MinBattery float64 `json:"minBattery"`
}

// RecommendationResult holds up to five matches, or an explicit
// message when nothing satisfies the criteria.
type RecommendationResult struct {
	Products []model.Product `json:"products"`
	Message  string          `json:"message,omitempty"`
}

// NoMatchMessage is returned when the narrowed set is empty.
const NoMatchMessage = "No products match your criteria. Please adjust your filters."

// Recommend narrows the filtered rows by the user's preferences, then
// re-sorts by the priority key and returns up to five rows. Invalid
// budget or priority values are rejected before any narrowing.
func Recommend(products []model.Product, req RecommendationRequest) (RecommendationResult, error) {
	inBudget, err := budgetPredicate(req.Budget)
	if err != nil {
		return RecommendationResult{}, err
	}
	priorityKey, err := priorityKeyFor(req.Priority)
	if err != nil {
		return RecommendationResult{}, err
	}

	var narrowed []model.Product
	for _, p := range products {
		if !inBudget(p) {
			continue
		}
		if req.Brand != "" && p.Brand != req.Brand {
			continue
		}
		if req.DeviceType != "" && p.DeviceType != req.DeviceType {
			continue
		}
		if !(p.Rating.Valid() && float64(p.Rating) >= req.MinRating) {
			continue
		}
		if !(p.BatteryDays.Valid() && float64(p.BatteryDays) >= req.MinBattery) {
			continue
		}
		narrowed = append(narrowed, p)
	}

	if len(narrowed) == 0 {
		return RecommendationResult{Products: []model.Product{}, Message: NoMatchMessage}, nil
	}

	return RecommendationResult{
		Products: topN(narrowed, maxRecommendations, priorityKey),
	}, nil
}

func budgetPredicate(budget string) (func(model.Product) bool, error) {
	var low, high float64
	switch budget {
	case BudgetLow:
		low, high = 0, 2000
	case BudgetMidRange:
		low, high = 2000, 5000
	case BudgetPremium:
		low, high = 5000, 10000
	case BudgetLuxury:
		low, high = 10000, 0
	default:
		return nil, model.ErrInvalidBudget
	}

	return func(p model.Product) bool {
		if !p.SellingPrice.Valid() {
			return false
		}
		price := float64(p.SellingPrice)
		if high == 0 {
			return price > low
		}
		if budget == BudgetLow {
			return price <= high
		}
		return price > low && price <= high
	}, nil
}

func priorityKeyFor(priority string) (func(model.Product) float64, error) {
	switch priority {
	case PriorityValue:
		return byValueScore, nil
	case PriorityRating:
		return byRating, nil
	case PriorityReviews:
		return byReviews, nil
	case PriorityBattery:
		return byBatteryDays, nil
	default:
		return nil, model.ErrInvalidPriority
	}
}

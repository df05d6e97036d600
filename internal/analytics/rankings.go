package analytics

import (
	"math"
	"sort"

	"trackhub/internal/model"
)

// RankedProduct is a catalogue row with the view-local overall score
// attached. The score is never persisted on the table itself.
type RankedProduct struct {
	model.Product
	OverallScore model.Float `json:"overallScore"`
}

// RankingsView holds the four top-ten leader boards.
type RankingsView struct {
	TopOverall []RankedProduct `json:"topOverall"`
	TopValue   []model.Product `json:"topValue"`
	TopRated   []model.Product `json:"topRated"`
	TopPopular []model.Product `json:"topPopular"`
}

const rankingListSize = 10

// Overall score weights: rating 0.4, normalised reviews 0.3,
// normalised discount 0.2, normalised battery life 0.1. Reviews and
// battery are normalised by their maxima over the filtered rows and
// rescaled to the 0-5 rating range.
const (
	weightRating   = 0.4
	weightReviews  = 0.3
	weightDiscount = 0.2
	weightBattery  = 0.1
)

// BuildRankings computes the product ranking leader boards over the
// filtered rows.
func BuildRankings(products []model.Product) RankingsView {
	return RankingsView{
		TopOverall: topOverall(products),
		TopValue:   topN(products, rankingListSize, byValueScore),
		TopRated:   topN(products, rankingListSize, byRating),
		TopPopular: topN(products, rankingListSize, byReviews),
	}
}

// topOverall scores every row and returns the ten best. Rows whose
// score comes out non-finite are excluded; ties keep input order.
func topOverall(products []model.Product) []RankedProduct {
	var maxReviews, maxBattery float64
	for _, p := range products {
		if r := float64(p.Reviews); r > maxReviews {
			maxReviews = r
		}
		if b := float64(p.BatteryDays); !math.IsNaN(b) && !math.IsInf(b, 0) && b > maxBattery {
			maxBattery = b
		}
	}

	var ranked []RankedProduct
	for _, p := range products {
		score := float64(p.Rating) * weightRating
		if maxReviews > 0 {
			score += float64(p.Reviews) / maxReviews * 5 * weightReviews
		}
		score += float64(p.DiscountPct) / 100 * 5 * weightDiscount
		if maxBattery > 0 {
			score += float64(p.BatteryDays) / maxBattery * 5 * weightBattery
		}
		if math.IsNaN(score) || math.IsInf(score, 0) {
			continue
		}
		ranked = append(ranked, RankedProduct{Product: p, OverallScore: model.Float(score)})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].OverallScore > ranked[j].OverallScore
	})

	if len(ranked) > rankingListSize {
		ranked = ranked[:rankingListSize]
	}
	return ranked
}

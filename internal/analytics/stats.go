package analytics

import (
	"math"
	"sort"

	"trackhub/internal/model"
)

// Numeric column accessors shared by the views.
var (
	bySellingPrice = func(p model.Product) float64 { return float64(p.SellingPrice) }
	byRating       = func(p model.Product) float64 { return float64(p.Rating) }
	byReviews      = func(p model.Product) float64 { return float64(p.Reviews) }
	byBatteryDays  = func(p model.Product) float64 { return float64(p.BatteryDays) }
	byValueScore   = func(p model.Product) float64 { return float64(p.ValueScore) }
	byDiscountPct  = func(p model.Product) float64 { return float64(p.DiscountPct) }
)

// mean averages the key over rows where it is finite, returning NaN
// when no such row exists. Non-finite values are excluded from the
// aggregate rather than poisoning it.
func mean(products []model.Product, key func(model.Product) float64) model.Float {
	var sum float64
	var n int
	for _, p := range products {
		v := key(p)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		sum += v
		n++
	}
	if n == 0 {
		return model.NaN()
	}
	return model.Float(sum / float64(n))
}

// maxRow returns the first-occurring row with the largest finite key.
// The second return is false when no row has a finite key.
func maxRow(products []model.Product, key func(model.Product) float64) (model.Product, bool) {
	var best model.Product
	bestKey := math.Inf(-1)
	found := false
	for _, p := range products {
		v := key(p)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		if !found || v > bestKey {
			best = p
			bestKey = v
			found = true
		}
	}
	return best, found
}

// topN returns up to n rows sorted descending by the key. Rows whose
// key is non-finite are excluded; ties keep input order, so the
// first-occurring row wins.
func topN(products []model.Product, n int, key func(model.Product) float64) []model.Product {
	eligible := make([]model.Product, 0, len(products))
	for _, p := range products {
		v := key(p)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		eligible = append(eligible, p)
	}

	sort.SliceStable(eligible, func(i, j int) bool {
		return key(eligible[i]) > key(eligible[j])
	})

	if len(eligible) > n {
		eligible = eligible[:n]
	}
	return eligible
}

// correlation computes the Pearson coefficient over rows where both
// keys are finite. Fewer than two complete pairs, or a zero variance
// on either side, yields NaN.
func correlation(products []model.Product, xKey, yKey func(model.Product) float64) model.Float {
	var xs, ys []float64
	for _, p := range products {
		x, y := xKey(p), yKey(p)
		if math.IsNaN(x) || math.IsInf(x, 0) || math.IsNaN(y) || math.IsInf(y, 0) {
			continue
		}
		xs = append(xs, x)
		ys = append(ys, y)
	}

	n := float64(len(xs))
	if n < 2 {
		return model.NaN()
	}

	var sumX, sumY float64
	for i := range xs {
		sumX += xs[i]
		sumY += ys[i]
	}
	meanX, meanY := sumX/n, sumY/n

	var cov, varX, varY float64
	for i := range xs {
		dx, dy := xs[i]-meanX, ys[i]-meanY
		cov += dx * dy
		varX += dx * dx
		varY += dy * dy
	}
	if varX == 0 || varY == 0 {
		return model.NaN()
	}

	return model.Float(cov / math.Sqrt(varX*varY))
}

// round2 rounds to two decimal places.
func round2(f model.Float) model.Float {
	if !f.Valid() {
		return f
	}
	return model.Float(math.Round(float64(f)*100) / 100)
}

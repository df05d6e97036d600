package analytics

import (
	"trackhub/internal/model"
)

// Filter holds the sidebar filter selections. An empty multi-choice
// slice means "no constraint", not "match nothing"; nil numeric bounds
// are likewise pass-through.
type Filter struct {
	Brands      []string
	DeviceTypes []string
	Colors      []string
	MinPrice    *float64
	MaxPrice    *float64
	MinRating   *float64
}

// Apply returns the rows satisfying the conjunction of all supplied
// constraints, preserving input order. Rows with a NaN value fail any
// numeric constraint on that value.
func (f Filter) Apply(products []model.Product) []model.Product {
	brands := toSet(f.Brands)
	devices := toSet(f.DeviceTypes)
	colors := toSet(f.Colors)

	result := make([]model.Product, 0, len(products))
	for _, p := range products {
		if len(brands) > 0 {
			if _, ok := brands[p.Brand]; !ok {
				continue
			}
		}
		if len(devices) > 0 {
			if _, ok := devices[p.DeviceType]; !ok {
				continue
			}
		}
		if len(colors) > 0 {
			if _, ok := colors[p.Color]; !ok {
				continue
			}
		}
		if f.MinPrice != nil && !(p.SellingPrice.Valid() && float64(p.SellingPrice) >= *f.MinPrice) {
			continue
		}
		if f.MaxPrice != nil && !(p.SellingPrice.Valid() && float64(p.SellingPrice) <= *f.MaxPrice) {
			continue
		}
		if f.MinRating != nil && !(p.Rating.Valid() && float64(p.Rating) >= *f.MinRating) {
			continue
		}
		result = append(result, p)
	}
	return result
}

func toSet(values []string) map[string]struct{} {
	if len(values) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

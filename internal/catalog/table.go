package catalog

import (
	"sort"

	"trackhub/internal/model"
)

// Table is the immutable in-memory catalogue. It is built once at load
// time and only ever read afterwards; views and filters work on copies.
type Table struct {
	products []model.Product
}

// NewTable builds a table from cleaned rows, computing the derived
// columns for each. The input slice is copied.
func NewTable(products []model.Product) *Table {
	rows := make([]model.Product, len(products))
	copy(rows, products)
	for i := range rows {
		deriveColumns(&rows[i])
	}
	return &Table{products: rows}
}

// Products returns the catalogue rows in input order. Callers must
// treat the slice as read-only.
func (t *Table) Products() []model.Product {
	return t.products
}

// Len returns the number of rows in the table.
func (t *Table) Len() int {
	return len(t.products)
}

// Brands returns the sorted set of distinct brand names.
func (t *Table) Brands() []string {
	return t.distinct(func(p model.Product) string { return p.Brand })
}

// DeviceTypes returns the sorted set of distinct device types.
func (t *Table) DeviceTypes() []string {
	return t.distinct(func(p model.Product) string { return p.DeviceType })
}

// Colors returns the sorted set of distinct colours.
func (t *Table) Colors() []string {
	return t.distinct(func(p model.Product) string { return p.Color })
}

// PriceBounds returns the minimum and maximum valid selling price.
// Both are NaN when no row has a valid price.
func (t *Table) PriceBounds() (min, max model.Float) {
	min, max = model.NaN(), model.NaN()
	for _, p := range t.products {
		if !p.SellingPrice.Valid() {
			continue
		}
		if !min.Valid() || p.SellingPrice < min {
			min = p.SellingPrice
		}
		if !max.Valid() || p.SellingPrice > max {
			max = p.SellingPrice
		}
	}
	return min, max
}

func (t *Table) distinct(key func(model.Product) string) []string {
	seen := make(map[string]struct{})
	var values []string
	for _, p := range t.products {
		v := key(p)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}

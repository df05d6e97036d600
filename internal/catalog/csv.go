package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"trackhub/internal/model"
)

// parseCSV reads the catalogue from r and returns the cleaned rows.
// The first record is the header; any missing required column is an
// error. Currency cells are coerced with thousands separators stripped
// and garbled values becoming NaN, review counts default to zero.
func parseCSV(r io.Reader) ([]model.Product, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}

	var missing []string
	for _, col := range RequiredColumns {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required columns: %s", strings.Join(missing, ", "))
	}

	var products []model.Product
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read record: %w", err)
		}

		field := func(col string) string {
			return strings.TrimSpace(record[index[col]])
		}

		products = append(products, model.Product{
			Brand:         field(ColBrand),
			ModelName:     field(ColModelName),
			DeviceType:    field(ColDeviceType),
			Color:         field(ColColor),
			Display:       field(ColDisplay),
			StrapMaterial: field(ColStrapMaterial),
			SellingPrice:  coerceCurrency(field(ColSellingPrice)),
			OriginalPrice: coerceCurrency(field(ColOriginalPrice)),
			Rating:        coerceNumeric(field(ColRating)),
			Reviews:       coerceReviews(field(ColReviews)),
			BatteryDays:   coerceNumeric(field(ColBatteryDays)),
		})
	}

	return products, nil
}

// coerceCurrency parses a currency cell, stripping thousands
// separators. Non-numeric values become NaN rather than erroring.
func coerceCurrency(s string) model.Float {
	return coerceNumeric(strings.ReplaceAll(s, ",", ""))
}

// coerceNumeric parses a numeric cell, mapping failures to NaN.
func coerceNumeric(s string) model.Float {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return model.NaN()
	}
	return model.Float(v)
}

// coerceReviews parses a review count, defaulting missing or garbled
// values to zero so sort and selection stay stable.
func coerceReviews(s string) int {
	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
	if err != nil || v < 0 {
		return 0
	}
	return int(v)
}

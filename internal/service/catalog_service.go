package service

import (
	"context"

	"trackhub/internal/analytics"
	"trackhub/internal/catalog"
	"trackhub/internal/model"

	"github.com/rs/zerolog"
)

// catalogService implements CatalogService over the immutable table.
type catalogService struct {
	table  *catalog.Table
	logger zerolog.Logger
}

// NewCatalogService creates a catalogue service bound to the loaded
// table.
func NewCatalogService(table *catalog.Table, logger zerolog.Logger) CatalogService {
	return &catalogService{
		table:  table,
		logger: logger.With().Str("service", "catalog").Logger(),
	}
}

// Products retrieves the filtered catalogue rows with pagination.
func (s *catalogService) Products(ctx context.Context, filter analytics.Filter, limit, offset int) ([]model.Product, error) {
	if limit <= 0 {
		limit = 50
	}
	if limit > 500 {
		limit = 500
	}
	if offset < 0 {
		offset = 0
	}

	rows := filter.Apply(s.table.Products())

	if offset >= len(rows) {
		rows = []model.Product{}
	} else {
		rows = rows[offset:]
		if len(rows) > limit {
			rows = rows[:limit]
		}
	}

	s.logger.Debug().
		Int("count", len(rows)).
		Int("limit", limit).
		Int("offset", offset).
		Msg("retrieved products")

	return rows, nil
}

// FilterOptions enumerates the available filter control values.
func (s *catalogService) FilterOptions(ctx context.Context) (FilterOptions, error) {
	minPrice, maxPrice := s.table.PriceBounds()

	return FilterOptions{
		Brands:      s.table.Brands(),
		DeviceTypes: s.table.DeviceTypes(),
		Colors:      s.table.Colors(),
		MinPrice:    minPrice,
		MaxPrice:    maxPrice,
	}, nil
}

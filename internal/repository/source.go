package repository

import (
	"context"
	"fmt"

	"trackhub/internal/catalog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// dbSource adapts the catalogue repository to the catalog.Source
// interface so the database can stand in for the CSV file.
type dbSource struct {
	repo   CatalogRepository
	logger zerolog.Logger
}

// NewCatalogSource creates a catalogue source backed by PostgreSQL.
func NewCatalogSource(pool *pgxpool.Pool, logger zerolog.Logger) catalog.Source {
	return &dbSource{
		repo:   NewCatalogRepository(pool, logger),
		logger: logger.With().Str("component", "catalog-db-source").Logger(),
	}
}

// Load reads the products table and builds the immutable table with
// derived columns computed.
func (s *dbSource) Load(ctx context.Context) (*catalog.Table, error) {
	s.logger.Info().Msg("loading catalogue from database")

	products, err := s.repo.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalogue from database: %w", err)
	}

	table := catalog.NewTable(products)

	s.logger.Info().
		Int("products_loaded", table.Len()).
		Msg("catalogue loaded from database successfully")

	return table, nil
}

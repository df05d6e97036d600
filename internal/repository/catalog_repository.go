package repository

import (
	"context"
	"fmt"
	"math"

	"trackhub/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// catalogRepository implements CatalogRepository using PostgreSQL.
type catalogRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewCatalogRepository creates a PostgreSQL-backed catalogue repository.
func NewCatalogRepository(pool *pgxpool.Pool, logger zerolog.Logger) CatalogRepository {
	return &catalogRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "catalog").Logger(),
	}
}

// LoadAll retrieves every product row in insertion order. Nullable
// numeric columns map to NaN; a null review count maps to zero, the
// same cleaning rules the CSV path applies.
func (r *catalogRepository) LoadAll(ctx context.Context) ([]model.Product, error) {
	query := `
		SELECT brand, model_name, device_type, color, display,
		       strap_material, selling_price, original_price, rating,
		       reviews, battery_days
		FROM products
		ORDER BY id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query products")
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var products []model.Product
	for rows.Next() {
		var p model.Product
		var sellingPrice, originalPrice, rating, batteryDays *float64
		var reviews *int

		err := rows.Scan(
			&p.Brand, &p.ModelName, &p.DeviceType, &p.Color, &p.Display,
			&p.StrapMaterial, &sellingPrice, &originalPrice, &rating,
			&reviews, &batteryDays,
		)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan product row")
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}

		p.SellingPrice = nullableFloat(sellingPrice)
		p.OriginalPrice = nullableFloat(originalPrice)
		p.Rating = nullableFloat(rating)
		p.BatteryDays = nullableFloat(batteryDays)
		if reviews != nil && *reviews > 0 {
			p.Reviews = *reviews
		}

		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating product rows")
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	r.logger.Debug().Int("count", len(products)).Msg("loaded products from database")

	return products, nil
}

func nullableFloat(v *float64) model.Float {
	if v == nil {
		return model.Float(math.NaN())
	}
	return model.Float(*v)
}

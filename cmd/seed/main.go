// Command seed loads the catalogue CSV into the PostgreSQL products
// table so the server can run with DB_ENABLED=true.
package main

import (
	"context"
	"fmt"
	"math"
	"os"

	"trackhub/internal/catalog"
	"trackhub/internal/config"
	"trackhub/internal/model"

	"github.com/jackc/pgx/v5"
)

const schema = `
	CREATE TABLE IF NOT EXISTS products (
		id SERIAL PRIMARY KEY,
		brand VARCHAR(100) NOT NULL,
		model_name VARCHAR(255) NOT NULL,
		device_type VARCHAR(100) NOT NULL,
		color VARCHAR(100) NOT NULL,
		display VARCHAR(100) NOT NULL,
		strap_material VARCHAR(100) NOT NULL,
		selling_price DECIMAL(12, 2),
		original_price DECIMAL(12, 2),
		rating DECIMAL(3, 1),
		reviews INTEGER,
		battery_days DECIMAL(6, 2)
	)
`

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := config.NewLogger(cfg.Logger)
	ctx := context.Background()

	source := catalog.NewFileSource(cfg.Catalog.Path, logger)
	table, err := source.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load catalogue: %w", err)
	}

	conn, err := pgx.Connect(ctx, cfg.Database.ConnectionString())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer conn.Close(ctx)

	if _, err := conn.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	if _, err := conn.Exec(ctx, "TRUNCATE products"); err != nil {
		return fmt.Errorf("failed to truncate products: %w", err)
	}

	for _, p := range table.Products() {
		_, err := conn.Exec(ctx, `
			INSERT INTO products (brand, model_name, device_type, color,
				display, strap_material, selling_price, original_price,
				rating, reviews, battery_days)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
			p.Brand, p.ModelName, p.DeviceType, p.Color, p.Display,
			p.StrapMaterial, sqlFloat(p.SellingPrice), sqlFloat(p.OriginalPrice),
			sqlFloat(p.Rating), p.Reviews, sqlFloat(p.BatteryDays),
		)
		if err != nil {
			return fmt.Errorf("failed to insert product %s %s: %w", p.Brand, p.ModelName, err)
		}
	}

	logger.Info().Int("products", table.Len()).Msg("catalogue seeded into database")
	return nil
}

// sqlFloat maps NaN back to SQL NULL for storage.
func sqlFloat(f model.Float) *float64 {
	v := float64(f)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

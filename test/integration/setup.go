package integration

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestDB represents a test database instance.
type TestDB struct {
	Container *postgres.PostgresContainer
	Pool      *pgxpool.Pool
	ConnStr   string
}

// SetupTestDB creates a PostgreSQL test container and connection pool.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	ctx := context.Background()

	postgresContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	poolConfig, err := pgxpool.ParseConfig(connStr)
	if err != nil {
		t.Fatalf("failed to parse connection string: %v", err)
	}
	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		t.Fatalf("failed to create connection pool: %v", err)
	}

	if err := pool.Ping(ctx); err != nil {
		t.Fatalf("failed to ping database: %v", err)
	}

	createSchema(t, pool)

	t.Cleanup(func() {
		pool.Close()
		if err := postgresContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	return &TestDB{
		Container: postgresContainer,
		Pool:      pool,
		ConnStr:   connStr,
	}
}

// createSchema creates the products table, matching the seeder's
// schema.
func createSchema(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()

	schema := `
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

	if _, err := pool.Exec(ctx, schema); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}
}

// SeedProducts inserts test catalogue rows. The last row carries SQL
// NULLs in its numeric columns to exercise the cleaning path.
func SeedProducts(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()

	price := func(v float64) *float64 { return &v }
	count := func(v int) *int { return &v }

	products := []struct {
		brand, modelName, deviceType, color, display, strap string

		sellingPrice, originalPrice, rating, batteryDays *float64
		reviews                                          *int
	}{
		{"Boat", "Storm", "Smartwatch", "Black", "AMOLED Display", "Silicone", price(1999), price(2999), price(4.2), price(7), count(5000)},
		{"Fitbit", "Charge 5", "FitnessBand", "Blue", "AMOLED Display", "Elastomer", price(9999), price(12999), price(4.6), price(10), count(800)},
		{"Noise", "ColorFit", "Smartwatch", "Black", "LCD Display", "Silicone", price(2999), price(3999), price(3.9), price(5), count(12000)},
		{"Garmin", "Venu", "Smartwatch", "Grey", "AMOLED Display", "Silicone", price(24999), price(27999), price(4.7), price(11), count(300)},
		{"Boat", "Wave", "Smartwatch", "Red", "LCD Display", "TPU", nil, nil, nil, nil, nil},
	}

	for _, p := range products {
		_, err := pool.Exec(ctx, `
			INSERT INTO products (brand, model_name, device_type, color,
				display, strap_material, selling_price, original_price,
				rating, reviews, battery_days)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
			p.brand, p.modelName, p.deviceType, p.color, p.display, p.strap,
			p.sellingPrice, p.originalPrice, p.rating, p.reviews, p.batteryDays,
		)
		if err != nil {
			t.Fatalf("failed to seed product %s %s: %v", p.brand, p.modelName, err)
		}
	}
}

// CleanupDB removes all rows from the products table.
func CleanupDB(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()

	if _, err := pool.Exec(ctx, "DELETE FROM products"); err != nil {
		t.Logf("failed to clean products table: %v", err)
	}
}

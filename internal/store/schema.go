package store

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// Money columns are TEXT so decimals round-trip exactly. Their CHECKs compare as
// REAL and only back up the exact checks done in Go.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS products (
		id          TEXT PRIMARY KEY,
		name        TEXT NOT NULL CHECK (name <> ''),
		category    TEXT NOT NULL CHECK (category IN ('electronics', 'clothing', 'food', 'books', 'other')),
		price       TEXT NOT NULL CHECK (CAST(price AS REAL) >= 0),
		quantity    INTEGER NOT NULL DEFAULT 0 CHECK (quantity >= 0),
		min_stock   INTEGER NOT NULL DEFAULT 10 CHECK (min_stock >= 0),
		barcode     TEXT UNIQUE,
		description TEXT,
		created_at  DATETIME NOT NULL,
		updated_at  DATETIME NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS customers (
		id              TEXT PRIMARY KEY,
		name            TEXT NOT NULL CHECK (name <> ''),
		phone           TEXT,
		email           TEXT,
		discount        TEXT NOT NULL DEFAULT '0' CHECK (CAST(discount AS REAL) BETWEEN 0 AND 100),
		total_purchases TEXT NOT NULL DEFAULT '0' CHECK (CAST(total_purchases AS REAL) >= 0),
		created_at      DATETIME NOT NULL,
		updated_at      DATETIME NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS sales (
		id          TEXT PRIMARY KEY,
		product_id  TEXT NOT NULL REFERENCES products(id),
		customer_id TEXT REFERENCES customers(id),
		quantity    INTEGER NOT NULL CHECK (quantity > 0),
		unit_price  TEXT NOT NULL CHECK (CAST(unit_price AS REAL) >= 0),
		total       TEXT NOT NULL CHECK (CAST(total AS REAL) >= 0),
		sale_date   DATETIME NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_sales_product ON sales(product_id)`,
	`CREATE INDEX IF NOT EXISTS idx_sales_customer ON sales(customer_id)`,
	`CREATE INDEX IF NOT EXISTS idx_sales_date ON sales(sale_date)`,
	`CREATE TABLE IF NOT EXISTS supplies (
		id          TEXT PRIMARY KEY,
		supplier    TEXT NOT NULL,
		product_id  TEXT NOT NULL REFERENCES products(id),
		quantity    INTEGER NOT NULL CHECK (quantity > 0),
		cost        TEXT NOT NULL CHECK (CAST(cost AS REAL) >= 0),
		supply_date DATETIME NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_supplies_product ON supplies(product_id)`,
	`CREATE TABLE IF NOT EXISTS inventory_checks (
		id                TEXT PRIMARY KEY,
		product_id        TEXT NOT NULL REFERENCES products(id),
		expected_quantity INTEGER NOT NULL,
		counted_quantity  INTEGER NOT NULL CHECK (counted_quantity >= 0),
		notes             TEXT NOT NULL DEFAULT '',
		checked_at        DATETIME NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_inventory_checks_product ON inventory_checks(product_id)`,
}

// Migrate creates the five ledger tables. Safe to run on every startup.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, stmt := range schema {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return tx.Commit()
}

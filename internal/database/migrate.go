package database

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Migrate bootstraps the schema on whichever backend is active. The
// auto-increment primary key fragment comes from the dialect so the same
// DDL set works unmodified on both backends.
//
// Columns added after the first release (products.category,
// products.expiry_date) are applied as explicit, idempotent steps guarded
// by a column-exists probe instead of a blind ALTER.
func Migrate(ctx context.Context, a *Adapter, log *zap.Logger) error {
	autoID := a.AutoIncrementPK()

	tables := []string{
		`CREATE TABLE IF NOT EXISTS products (
			barcode TEXT PRIMARY KEY,
			name TEXT,
			price REAL,
			stock INTEGER DEFAULT 0
		)`,
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS sales (
			id %s,
			total_amount REAL,
			cashier_name TEXT,
			customer_name TEXT,
			payment_method TEXT,
			date_created TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`, autoID),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS sale_items (
			id %s,
			sale_id INTEGER,
			product_name TEXT,
			price REAL,
			quantity INTEGER,
			status TEXT DEFAULT 'sold'
		)`, autoID),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS stock_logs (
			id %s,
			date_time TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			product_name TEXT,
			change_amount INTEGER,
			reason TEXT,
			user_role TEXT
		)`, autoID),
	}
	for _, ddl := range tables {
		if _, err := a.Exec(ctx, ddl); err != nil {
			return err
		}
	}

	columns := []struct {
		table, column, ddl string
	}{
		{"products", "category", "TEXT DEFAULT 'General'"},
		{"products", "expiry_date", "TEXT"},
	}
	for _, c := range columns {
		if err := ensureColumn(ctx, a, c.table, c.column, c.ddl); err != nil {
			return err
		}
		log.Debug("schema column ensured",
			zap.String("table", c.table), zap.String("column", c.column))
	}

	indexes := []string{
		`CREATE INDEX IF NOT EXISTS idx_sale_items_sale_id ON sale_items (sale_id)`,
		`CREATE INDEX IF NOT EXISTS idx_sales_date_created ON sales (date_created)`,
	}
	for _, ddl := range indexes {
		if _, err := a.Exec(ctx, ddl); err != nil {
			return err
		}
	}

	return nil
}

func ensureColumn(ctx context.Context, a *Adapter, table, column, ddl string) error {
	var count int
	if err := a.Get(ctx, &count, a.dialect.ColumnExistsSQL(), table, column); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	_, err := a.Exec(ctx, fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s %s", table, column, ddl))
	return err
}

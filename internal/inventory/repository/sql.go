package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/hornerp/reporting-service/internal/database"
	"github.com/hornerp/reporting-service/internal/inventory/dto"
	"github.com/hornerp/reporting-service/internal/model"
	"github.com/hornerp/reporting-service/pkg/civil"
)

type SQLRepository struct {
	DB *database.Adapter
}

func NewSQLRepository(db *database.Adapter) *SQLRepository {
	return &SQLRepository{DB: db}
}

const productColumns = `barcode, name, COALESCE(category, 'General') AS category, price, stock, expiry_date`

func (r *SQLRepository) Snapshot(ctx context.Context) ([]model.Product, error) {
	query := fmt.Sprintf(`SELECT %s FROM products ORDER BY category, name`, productColumns)
	products := []model.Product{}
	if err := r.DB.Select(ctx, &products, query); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *SQLRepository) LowStock(ctx context.Context, threshold, n int) ([]model.Product, error) {
	query := fmt.Sprintf(`
        SELECT %s FROM products
        WHERE stock < ?
        ORDER BY stock ASC, name ASC
        LIMIT %d`, productColumns, n)
	products := []model.Product{}
	if err := r.DB.Select(ctx, &products, query, threshold); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *SQLRepository) NearExpiry(ctx context.Context, from, to string) ([]model.Product, error) {
	// Expiry dates are stored as civil-date text; empty or missing means
	// the product does not expire.
	query := fmt.Sprintf(`
        SELECT %s FROM products
        WHERE expiry_date IS NOT NULL AND expiry_date != ''
          AND expiry_date >= ? AND expiry_date <= ?
        ORDER BY expiry_date ASC, name ASC`, productColumns)
	products := []model.Product{}
	if err := r.DB.Select(ctx, &products, query, from, to); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *SQLRepository) FindByBarcode(ctx context.Context, barcode string) (*model.Product, error) {
	query := fmt.Sprintf(`SELECT %s FROM products WHERE barcode = ?`, productColumns)
	var p model.Product
	if err := r.DB.Get(ctx, &p, query, barcode); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *SQLRepository) Upsert(ctx context.Context, p *model.Product) error {
	if p.Category == "" {
		p.Category = "General"
	}
	// ON CONFLICT upsert is valid on both supported backends.
	query := `
        INSERT INTO products (barcode, name, category, price, stock, expiry_date)
        VALUES (?, ?, ?, ?, ?, ?)
        ON CONFLICT (barcode) DO UPDATE SET
            name = excluded.name,
            category = excluded.category,
            price = excluded.price,
            stock = excluded.stock,
            expiry_date = excluded.expiry_date`
	_, err := r.DB.Exec(ctx, query, p.Barcode, p.Name, p.Category, p.Price, p.Stock, p.ExpiryDate)
	return err
}

func (r *SQLRepository) AdjustStock(ctx context.Context, in *dto.AdjustStockInput) error {
	now := civil.Timestamp(civil.Now())
	return r.DB.Tx(ctx, func(tx *database.Tx) error {
		var name string
		if err := tx.Get(ctx, &name, `SELECT name FROM products WHERE barcode = ?`, in.Barcode); err != nil {
			return err
		}
		if _, err := tx.Exec(ctx,
			`UPDATE products SET stock = stock + ? WHERE barcode = ?`,
			in.Delta, in.Barcode); err != nil {
			return err
		}
		_, err := tx.Exec(ctx,
			`INSERT INTO stock_logs (date_time, product_name, change_amount, reason, user_role)
             VALUES (?, ?, ?, ?, ?)`,
			now, name, in.Delta, in.Reason, in.User)
		return err
	})
}

func (r *SQLRepository) StockLogs(ctx context.Context, n int) ([]model.StockLog, error) {
	query := fmt.Sprintf(`
        SELECT id, CAST(date_time AS TEXT) AS date_time, product_name, change_amount, reason, user_role
        FROM stock_logs
        ORDER BY id DESC
        LIMIT %d`, n)
	logs := []model.StockLog{}
	if err := r.DB.Select(ctx, &logs, query); err != nil {
		return nil, err
	}
	return logs, nil
}

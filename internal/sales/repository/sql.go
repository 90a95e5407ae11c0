package repository

import (
	"context"

	"github.com/hornerp/reporting-service/internal/database"
	"github.com/hornerp/reporting-service/internal/model"
	"github.com/hornerp/reporting-service/internal/sales/dto"
)

type SQLRepository struct {
	DB *database.Adapter
}

func NewSQLRepository(db *database.Adapter) *SQLRepository {
	return &SQLRepository{DB: db}
}

// RecordSale writes the sale row, all item rows, the stock decrements,
// and the audit entries inside one transaction. The generated sale id is
// taken from the insert itself, uniformly across backends.
func (r *SQLRepository) RecordSale(ctx context.Context, sale *model.Sale, items []dto.SaleItemInput) (int64, error) {
	var saleID int64
	err := r.DB.Tx(ctx, func(tx *database.Tx) error {
		id, err := tx.InsertReturningID(ctx, `
            INSERT INTO sales (total_amount, cashier_name, customer_name, payment_method, date_created)
            VALUES (?, ?, ?, ?, ?)`,
			sale.TotalAmount, sale.CashierName, sale.CustomerName, sale.PaymentMethod, sale.DateCreated)
		if err != nil {
			return err
		}
		saleID = id

		for _, item := range items {
			if _, err := tx.Exec(ctx, `
                INSERT INTO sale_items (sale_id, product_name, price, quantity)
                VALUES (?, ?, ?, ?)`,
				saleID, item.ProductName, item.Price, item.Quantity); err != nil {
				return err
			}
			if _, err := tx.Exec(ctx,
				`UPDATE products SET stock = stock - ? WHERE barcode = ?`,
				item.Quantity, item.Barcode); err != nil {
				return err
			}
			if _, err := tx.Exec(ctx, `
                INSERT INTO stock_logs (date_time, product_name, change_amount, reason, user_role)
                VALUES (?, ?, ?, ?, ?)`,
				sale.DateCreated, item.ProductName, -item.Quantity, "Sale", sale.CashierName); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return saleID, nil
}

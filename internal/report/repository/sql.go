package repository

import (
	"context"
	"fmt"

	"github.com/hornerp/reporting-service/internal/database"
	"github.com/hornerp/reporting-service/internal/report"
	"github.com/hornerp/reporting-service/internal/report/dto"
)

// SQLRepository runs the canonical report queries through the dialect
// adapter. All queries use the canonical placeholder and the two
// sanctioned portable idioms (CAST ... AS TEXT, COALESCE) only; the
// period predicate is qualified here with the right table alias, since
// the resolver is alias-agnostic.
type SQLRepository struct {
	DB *database.Adapter
}

func NewSQLRepository(db *database.Adapter) *SQLRepository {
	return &SQLRepository{DB: db}
}

func (r *SQLRepository) NetRevenue(ctx context.Context, f report.Filter) (float64, error) {
	query := fmt.Sprintf(
		`SELECT COALESCE(SUM(total_amount), 0) FROM sales WHERE %s`,
		f.Clause("date_created"),
	)
	var total float64
	if err := r.DB.Get(ctx, &total, query, f.Arg()); err != nil {
		return 0, err
	}
	return total, nil
}

func (r *SQLRepository) GrossRevenue(ctx context.Context, f report.Filter) (float64, error) {
	query := fmt.Sprintf(`
        SELECT COALESCE(SUM(i.quantity * i.price), 0)
        FROM sale_items i
        JOIN sales s ON i.sale_id = s.id
        WHERE %s`,
		f.Clause("s.date_created"),
	)
	var total float64
	if err := r.DB.Get(ctx, &total, query, f.Arg()); err != nil {
		return 0, err
	}
	return total, nil
}

func (r *SQLRepository) TopProducts(ctx context.Context, f report.Filter, n int) ([]dto.ProductRank, error) {
	query := fmt.Sprintf(`
        SELECT i.product_name, SUM(i.quantity) AS qty
        FROM sale_items i
        JOIN sales s ON i.sale_id = s.id
        WHERE %s
        GROUP BY i.product_name
        ORDER BY qty DESC, i.product_name ASC
        LIMIT %d`,
		f.Clause("s.date_created"), n,
	)
	ranks := []dto.ProductRank{}
	if err := r.DB.Select(ctx, &ranks, query, f.Arg()); err != nil {
		return nil, err
	}
	return ranks, nil
}

func (r *SQLRepository) EmployeePerformance(ctx context.Context, f report.Filter) ([]dto.PerformanceRow, error) {
	query := fmt.Sprintf(`
        SELECT cashier_name AS name, COALESCE(SUM(total_amount), 0) AS total
        FROM sales
        WHERE %s
        GROUP BY cashier_name
        ORDER BY total DESC, cashier_name ASC`,
		f.Clause("date_created"),
	)
	rows := []dto.PerformanceRow{}
	if err := r.DB.Select(ctx, &rows, query, f.Arg()); err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *SQLRepository) CustomerPerformance(ctx context.Context, f report.Filter, n int) ([]dto.PerformanceRow, error) {
	query := fmt.Sprintf(`
        SELECT customer_name AS name, COALESCE(SUM(total_amount), 0) AS total
        FROM sales
        WHERE %s
        GROUP BY customer_name
        ORDER BY total DESC, customer_name ASC
        LIMIT %d`,
		f.Clause("date_created"), n,
	)
	rows := []dto.PerformanceRow{}
	if err := r.DB.Select(ctx, &rows, query, f.Arg()); err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *SQLRepository) RevenueTrend(ctx context.Context, days int) ([]dto.TrendPoint, error) {
	dateExpr := r.DB.Dialect().DateExpr("date_created")
	query := fmt.Sprintf(`
        SELECT %s AS day, COALESCE(SUM(total_amount), 0) AS revenue
        FROM sales
        GROUP BY %s
        ORDER BY day DESC
        LIMIT %d`,
		dateExpr, dateExpr, days,
	)
	points := []dto.TrendPoint{}
	if err := r.DB.Select(ctx, &points, query); err != nil {
		return nil, err
	}
	return points, nil
}

func (r *SQLRepository) RecentSales(ctx context.Context, limit int) ([]dto.RecentSale, error) {
	query := fmt.Sprintf(`
        SELECT CAST(date_created AS TEXT) AS date_created, total_amount
        FROM sales
        ORDER BY id DESC
        LIMIT %d`, limit,
	)
	rows := []dto.RecentSale{}
	if err := r.DB.Select(ctx, &rows, query); err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *SQLRepository) SaleLines(ctx context.Context, f report.Filter) ([]dto.SaleLine, error) {
	query := fmt.Sprintf(`
        SELECT
            s.id AS sale_id,
            CAST(s.date_created AS TEXT) AS date_created,
            s.cashier_name,
            s.customer_name,
            COALESCE(p.category, 'General') AS category,
            i.product_name,
            i.quantity,
            i.price,
            (i.quantity * i.price) AS line_total
        FROM sale_items i
        JOIN sales s ON i.sale_id = s.id
        LEFT JOIN products p ON i.product_name = p.name
        WHERE %s
        ORDER BY s.id ASC, i.id ASC`,
		f.Clause("s.date_created"),
	)
	lines := []dto.SaleLine{}
	if err := r.DB.Select(ctx, &lines, query, f.Arg()); err != nil {
		return nil, err
	}
	return lines, nil
}

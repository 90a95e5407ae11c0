package report

import (
	"context"

	"github.com/hornerp/reporting-service/internal/report/dto"
)

// Repository issues the canonical read queries for one resolved period
// filter. Sums come back as 0.0 and group-bys as empty slices when
// nothing matches.
type Repository interface {
	// NetRevenue is the stored, discount-adjusted sale total summed over
	// the window.
	NetRevenue(ctx context.Context, f Filter) (float64, error)

	// GrossRevenue sums line-item price*quantity over items whose parent
	// sale matches the window.
	GrossRevenue(ctx context.Context, f Filter) (float64, error)

	// TopProducts groups matching line items by product name, summed
	// quantity descending, name ascending on ties, limited to n.
	TopProducts(ctx context.Context, f Filter, n int) ([]dto.ProductRank, error)

	// EmployeePerformance groups matching sales by cashier. No limit.
	EmployeePerformance(ctx context.Context, f Filter) ([]dto.PerformanceRow, error)

	// CustomerPerformance groups matching sales by customer, limited to n.
	CustomerPerformance(ctx context.Context, f Filter, n int) ([]dto.PerformanceRow, error)

	// RevenueTrend returns per-day revenue, most recent first, limited to
	// days rows. Not period-filtered: it is static short-term context.
	RevenueTrend(ctx context.Context, days int) ([]dto.TrendPoint, error)

	// RecentSales is the fallback when the per-day grouping query fails
	// on the active backend.
	RecentSales(ctx context.Context, limit int) ([]dto.RecentSale, error)

	// SaleLines is the detailed period listing for the exporters.
	SaleLines(ctx context.Context, f Filter) ([]dto.SaleLine, error)
}

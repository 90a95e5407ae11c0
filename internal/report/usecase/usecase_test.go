package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/hornerp/reporting-service/config"
	"github.com/hornerp/reporting-service/internal/database"
	"github.com/hornerp/reporting-service/internal/report"
	"github.com/hornerp/reporting-service/internal/report/dto"
	"github.com/hornerp/reporting-service/internal/report/repository"
	"github.com/hornerp/reporting-service/pkg/civil"
)

func newTestDB(t *testing.T) *database.Adapter {
	t.Helper()
	db, err := sqlx.Connect("sqlite3", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	a := database.NewAdapter(db, &database.SQLiteDialect{}, zap.NewNop())
	require.NoError(t, database.Migrate(context.Background(), a, zap.NewNop()))
	return a
}

func newTestUseCase(t *testing.T, db *database.Adapter) report.UseCase {
	t.Helper()
	cfg := config.ReportConfig{TopN: 5, TrendDays: 7, RecentSalesLimit: 50, LowStockThreshold: 10, ExpiryWindowDays: 7}
	return NewReportUseCase(repository.NewSQLRepository(db), cfg, zap.NewNop())
}

type seedItem struct {
	name  string
	price float64
	qty   int
}

// seedSale inserts a sale with explicit timestamp and stored total, plus
// its item rows.
func seedSale(t *testing.T, db *database.Adapter, ts, cashier, customer string, total float64, items []seedItem) {
	t.Helper()
	ctx := context.Background()
	id, err := db.InsertReturningID(ctx, `
        INSERT INTO sales (total_amount, cashier_name, customer_name, payment_method, date_created)
        VALUES (?, ?, ?, ?, ?)`,
		total, cashier, customer, "Cash", ts)
	require.NoError(t, err)
	for _, item := range items {
		_, err := db.Exec(ctx, `
            INSERT INTO sale_items (sale_id, product_name, price, quantity)
            VALUES (?, ?, ?, ?)`,
			id, item.name, item.price, item.qty)
		require.NoError(t, err)
	}
}

func TestBuildSummaryEmptyDatasetYieldsZeroDefaults(t *testing.T) {
	db := newTestDB(t)
	uc := newTestUseCase(t, db)

	s := uc.BuildSummary(context.Background(), report.Daily, civil.Now())

	assert.Equal(t, 0.0, s.NetRevenue)
	assert.Equal(t, 0.0, s.GrossRevenue)
	assert.Equal(t, 0.0, s.Discounts)
	assert.Empty(t, s.TopProducts)
	assert.Empty(t, s.EmployeePerformance)
	assert.Empty(t, s.CustomerPerformance)
	assert.Empty(t, s.Lines)
	assert.True(t, s.Trend.ByDay)
	assert.Empty(t, s.Trend.Points)
	assert.Empty(t, s.Warnings, "empty data is not an error")
}

func TestBuildSummaryDerivesDiscountFromGrossAndNet(t *testing.T) {
	db := newTestDB(t)
	uc := newTestUseCase(t, db)
	now := civil.Now()
	ts := civil.Timestamp(now)

	// $12.00 of gross item value, $2.00 discount on the first sale,
	// stored totals sum to $10.00 net.
	seedSale(t, db, ts, "Admin", "Walk-in Client", 4.00, []seedItem{
		{"Tea", 3.00, 2},
	})
	seedSale(t, db, ts, "Admin", "Walk-in Client", 6.00, []seedItem{
		{"Coffee", 2.00, 3},
	})

	s := uc.BuildSummary(context.Background(), report.Daily, now)

	assert.InDelta(t, 10.00, s.NetRevenue, 1e-9)
	assert.InDelta(t, 12.00, s.GrossRevenue, 1e-9)
	assert.InDelta(t, 2.00, s.Discounts, 1e-9)
	assert.Equal(t, "Daily Report ("+civil.Date(now)+")", s.Label)
}

func TestBuildSummaryClampsNegativeDiscount(t *testing.T) {
	db := newTestDB(t)
	uc := newTestUseCase(t, db)
	now := civil.Now()

	// Stored total larger than item value: inconsistent data.
	seedSale(t, db, civil.Timestamp(now), "Admin", "Walk-in Client", 9.00, []seedItem{
		{"Tea", 1.00, 1},
	})

	s := uc.BuildSummary(context.Background(), report.Daily, now)

	assert.Equal(t, 0.0, s.Discounts)
	assert.Contains(t, s.Warnings, "discounts")
}

func TestTopProductsSortedWithNameTieBreak(t *testing.T) {
	db := newTestDB(t)
	uc := newTestUseCase(t, db)
	now := civil.Now()
	ts := civil.Timestamp(now)

	seedSale(t, db, ts, "Admin", "A", 100, []seedItem{
		{"Zucchini", 1, 4},
		{"Apple", 1, 4},
		{"Bread", 1, 9},
	})

	s := uc.BuildSummary(context.Background(), report.Daily, now)

	require.Len(t, s.TopProducts, 3)
	assert.Equal(t, "Bread", s.TopProducts[0].Name)
	// The two four-quantity products tie; name ascending breaks it.
	assert.Equal(t, "Apple", s.TopProducts[1].Name)
	assert.Equal(t, "Zucchini", s.TopProducts[2].Name)
}

func TestCustomerPerformanceLimitedAndDescending(t *testing.T) {
	db := newTestDB(t)
	uc := newTestUseCase(t, db)
	now := civil.Now()
	ts := civil.Timestamp(now)

	customers := []string{"Alpha", "Bravo", "Charlie", "Delta", "Echo", "Foxtrot", "Golf"}
	for i, c := range customers {
		seedSale(t, db, ts, "Admin", c, float64(10*(i+1)), nil)
	}

	s := uc.BuildSummary(context.Background(), report.Daily, now)

	require.Len(t, s.CustomerPerformance, 5, "top-N limit")
	assert.Equal(t, "Golf", s.CustomerPerformance[0].Name)
	assert.InDelta(t, 70.0, s.CustomerPerformance[0].Total, 1e-9)
	for i := 1; i < len(s.CustomerPerformance); i++ {
		assert.GreaterOrEqual(t,
			s.CustomerPerformance[i-1].Total,
			s.CustomerPerformance[i].Total)
	}
}

func TestEmployeePerformanceHasNoLimit(t *testing.T) {
	db := newTestDB(t)
	uc := newTestUseCase(t, db)
	now := civil.Now()
	ts := civil.Timestamp(now)

	cashiers := []string{"C1", "C2", "C3", "C4", "C5", "C6", "C7"}
	for _, c := range cashiers {
		seedSale(t, db, ts, c, "Walk-in Client", 5, nil)
	}

	s := uc.BuildSummary(context.Background(), report.Daily, now)
	assert.Len(t, s.EmployeePerformance, len(cashiers))
}

func TestRevenueTrendMostRecentFirstAndWindowed(t *testing.T) {
	db := newTestDB(t)
	uc := newTestUseCase(t, db)
	now := civil.Now()

	for i := 0; i < 9; i++ {
		day := now.AddDate(0, 0, -i)
		seedSale(t, db, civil.Timestamp(day), "Admin", "Walk-in Client", float64(i+1), nil)
	}

	s := uc.BuildSummary(context.Background(), report.Daily, now)

	require.True(t, s.Trend.ByDay)
	require.Len(t, s.Trend.Points, 7, "trend window")
	assert.Equal(t, civil.Date(now), s.Trend.Points[0].Day)
	for i := 1; i < len(s.Trend.Points); i++ {
		assert.Greater(t, s.Trend.Points[i-1].Day, s.Trend.Points[i].Day)
	}
}

func TestSaleLinesDefaultCategoryForUnknownProducts(t *testing.T) {
	db := newTestDB(t)
	uc := newTestUseCase(t, db)
	now := civil.Now()

	// The sale line references a product that no longer exists in the
	// catalog; the listing still renders it under General.
	seedSale(t, db, civil.Timestamp(now), "Admin", "Walk-in Client", 5, []seedItem{
		{"Discontinued Item", 5, 1},
	})

	s := uc.BuildSummary(context.Background(), report.Daily, now)

	require.Len(t, s.Lines, 1)
	assert.Equal(t, "General", s.Lines[0].Category)
	assert.Equal(t, "Discontinued Item", s.Lines[0].ProductName)
	assert.InDelta(t, 5.0, s.Lines[0].LineTotal, 1e-9)
}

func TestBuildSummaryExcludesOtherPeriods(t *testing.T) {
	db := newTestDB(t)
	uc := newTestUseCase(t, db)
	now := civil.Now()

	seedSale(t, db, civil.Timestamp(now.AddDate(0, -2, 0)), "Admin", "Old Client", 99, []seedItem{
		{"Old Item", 99, 1},
	})

	s := uc.BuildSummary(context.Background(), report.Daily, now)

	assert.Equal(t, 0.0, s.NetRevenue)
	assert.Empty(t, s.Lines)

	weekly := uc.BuildSummary(context.Background(), report.Weekly, now)
	assert.Equal(t, 0.0, weekly.NetRevenue, "two months back is outside the weekly window")
}

// faultyRepo fails the metrics named in down and serves canned data for
// the rest, so single-query failure paths can be driven deterministically.
type faultyRepo struct {
	down   map[string]bool
	recent []dto.RecentSale
}

func (r *faultyRepo) err(metric string) error {
	if r.down[metric] {
		return errors.New(metric + " query failed")
	}
	return nil
}

func (r *faultyRepo) NetRevenue(ctx context.Context, f report.Filter) (float64, error) {
	return 10.0, r.err("net_revenue")
}

func (r *faultyRepo) GrossRevenue(ctx context.Context, f report.Filter) (float64, error) {
	return 12.0, r.err("gross_revenue")
}

func (r *faultyRepo) TopProducts(ctx context.Context, f report.Filter, n int) ([]dto.ProductRank, error) {
	return []dto.ProductRank{{Name: "Tea", Quantity: 4}}, r.err("top_products")
}

func (r *faultyRepo) EmployeePerformance(ctx context.Context, f report.Filter) ([]dto.PerformanceRow, error) {
	return []dto.PerformanceRow{{Name: "Admin", Total: 10}}, r.err("employee_performance")
}

func (r *faultyRepo) CustomerPerformance(ctx context.Context, f report.Filter, n int) ([]dto.PerformanceRow, error) {
	return []dto.PerformanceRow{{Name: "Walk-in Client", Total: 10}}, r.err("customer_performance")
}

func (r *faultyRepo) RevenueTrend(ctx context.Context, days int) ([]dto.TrendPoint, error) {
	return []dto.TrendPoint{{Day: "2026-08-30", Revenue: 10}}, r.err("revenue_trend")
}

func (r *faultyRepo) RecentSales(ctx context.Context, limit int) ([]dto.RecentSale, error) {
	return r.recent, r.err("recent_sales")
}

func (r *faultyRepo) SaleLines(ctx context.Context, f report.Filter) ([]dto.SaleLine, error) {
	return []dto.SaleLine{{ProductName: "Tea"}}, r.err("sale_lines")
}

func newFaultyUseCase(down ...string) (report.UseCase, *faultyRepo) {
	repo := &faultyRepo{down: map[string]bool{}}
	for _, m := range down {
		repo.down[m] = true
	}
	cfg := config.ReportConfig{TopN: 5, TrendDays: 7, RecentSalesLimit: 50}
	return NewReportUseCase(repo, cfg, zap.NewNop()), repo
}

func TestBuildSummaryDegradesEachFailedMetric(t *testing.T) {
	uc, _ := newFaultyUseCase(
		"net_revenue", "gross_revenue", "top_products",
		"employee_performance", "customer_performance", "sale_lines")

	s := uc.BuildSummary(context.Background(), report.Daily, time.Now())

	assert.Equal(t, 0.0, s.NetRevenue)
	assert.Equal(t, 0.0, s.GrossRevenue)
	assert.Equal(t, 0.0, s.Discounts)
	assert.Empty(t, s.TopProducts)
	assert.Empty(t, s.EmployeePerformance)
	assert.Empty(t, s.CustomerPerformance)
	assert.Empty(t, s.Lines)

	for _, metric := range []string{
		"net_revenue", "gross_revenue", "top_products",
		"employee_performance", "customer_performance", "sale_lines",
	} {
		assert.Contains(t, s.Warnings, metric)
	}
}

func TestBuildSummaryKeepsHealthyMetricsWhenOneFails(t *testing.T) {
	uc, _ := newFaultyUseCase("net_revenue")

	s := uc.BuildSummary(context.Background(), report.Daily, time.Now())

	assert.Equal(t, 0.0, s.NetRevenue)
	assert.Equal(t, []string{"net_revenue"}, s.Warnings)
	// The rest of the summary still carries live data.
	assert.InDelta(t, 12.0, s.GrossRevenue, 1e-9)
	require.Len(t, s.TopProducts, 1)
	assert.Equal(t, "Tea", s.TopProducts[0].Name)
	require.Len(t, s.Lines, 1)
	assert.True(t, s.Trend.ByDay)
}

func TestTrendFallsBackToRecentSales(t *testing.T) {
	uc, repo := newFaultyUseCase("revenue_trend")
	repo.recent = []dto.RecentSale{
		{DateCreated: "2026-08-30 11:00:00", Total: 10.00},
		{DateCreated: "2026-08-30 10:00:00", Total: 7.50},
	}

	s := uc.BuildSummary(context.Background(), report.Daily, time.Now())

	assert.False(t, s.Trend.ByDay)
	assert.Empty(t, s.Trend.Points)
	require.Len(t, s.Trend.Recent, 2)
	assert.InDelta(t, 10.00, s.Trend.Recent[0].Total, 1e-9)
}

func TestTrendFallbackFailureYieldsEmptyRecent(t *testing.T) {
	uc, _ := newFaultyUseCase("revenue_trend", "recent_sales")

	s := uc.BuildSummary(context.Background(), report.Daily, time.Now())

	assert.False(t, s.Trend.ByDay)
	assert.Empty(t, s.Trend.Points)
	assert.NotNil(t, s.Trend.Recent)
	assert.Empty(t, s.Trend.Recent)
}

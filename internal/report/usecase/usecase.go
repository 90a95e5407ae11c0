package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/hornerp/reporting-service/config"
	"github.com/hornerp/reporting-service/internal/report"
	"github.com/hornerp/reporting-service/internal/report/dto"
)

type reportUseCase struct {
	repo   report.Repository
	cfg    config.ReportConfig
	logger *zap.Logger
}

func NewReportUseCase(repo report.Repository, cfg config.ReportConfig, log *zap.Logger) report.UseCase {
	return &reportUseCase{repo: repo, cfg: cfg, logger: log}
}

// BuildSummary resolves the period filter once and runs every metric
// against it. A failed sub-query is logged with its metric name, recorded
// as a warning, and replaced by the metric's zero value; the rest of the
// report still comes back.
func (uc *reportUseCase) BuildSummary(ctx context.Context, p report.Period, ref time.Time) *dto.ReportSummary {
	f := report.Resolve(p, ref)

	s := &dto.ReportSummary{
		Period:              string(p),
		Label:               f.Label,
		TopProducts:         []dto.ProductRank{},
		EmployeePerformance: []dto.PerformanceRow{},
		CustomerPerformance: []dto.PerformanceRow{},
		Lines:               []dto.SaleLine{},
	}

	degrade := func(metric string, err error) {
		uc.logger.Warn("report metric degraded to zero value",
			zap.String("metric", metric), zap.Error(err))
		s.Warnings = append(s.Warnings, metric)
	}

	net, err := uc.repo.NetRevenue(ctx, f)
	if err != nil {
		degrade("net_revenue", err)
	} else {
		s.NetRevenue = net
	}

	gross, err := uc.repo.GrossRevenue(ctx, f)
	if err != nil {
		degrade("gross_revenue", err)
	} else {
		s.GrossRevenue = gross
	}

	// Discount is derived, never stored. A genuinely negative value means
	// item rows exceed the stored totals somewhere in the window; surface
	// it, then clamp so the report never shows a negative discount.
	discount := s.GrossRevenue - s.NetRevenue
	if discount < 0 {
		if discount < -0.01 {
			uc.logger.Warn("negative derived discount indicates inconsistent sale data",
				zap.Float64("gross", s.GrossRevenue),
				zap.Float64("net", s.NetRevenue),
				zap.Float64("discount", discount))
			s.Warnings = append(s.Warnings, "discounts")
		}
		discount = 0
	}
	s.Discounts = discount

	if top, err := uc.repo.TopProducts(ctx, f, uc.cfg.TopN); err != nil {
		degrade("top_products", err)
	} else {
		s.TopProducts = top
	}

	if rows, err := uc.repo.EmployeePerformance(ctx, f); err != nil {
		degrade("employee_performance", err)
	} else {
		s.EmployeePerformance = rows
	}

	if rows, err := uc.repo.CustomerPerformance(ctx, f, uc.cfg.TopN); err != nil {
		degrade("customer_performance", err)
	} else {
		s.CustomerPerformance = rows
	}

	s.Trend = uc.trend(ctx)

	if lines, err := uc.repo.SaleLines(ctx, f); err != nil {
		degrade("sale_lines", err)
	} else {
		s.Lines = lines
	}

	return s
}

// trend prefers per-day grouping and falls back to the most recent raw
// sales when the grouping query fails on the active backend. The two
// shapes are tagged so consumers cannot mistake one for the other.
func (uc *reportUseCase) trend(ctx context.Context) dto.Trend {
	points, err := uc.repo.RevenueTrend(ctx, uc.cfg.TrendDays)
	if err == nil {
		return dto.Trend{ByDay: true, Points: points}
	}
	uc.logger.Warn("per-day trend query failed, falling back to recent sales", zap.Error(err))

	recent, err := uc.repo.RecentSales(ctx, uc.cfg.RecentSalesLimit)
	if err != nil {
		uc.logger.Warn("recent sales fallback failed", zap.Error(err))
		return dto.Trend{ByDay: false, Recent: []dto.RecentSale{}}
	}
	return dto.Trend{ByDay: false, Recent: recent}
}

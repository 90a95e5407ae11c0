package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/hornerp/reporting-service/config"
	"github.com/hornerp/reporting-service/internal/inventory"
	"github.com/hornerp/reporting-service/internal/inventory/dto"
	"github.com/hornerp/reporting-service/internal/model"
	"github.com/hornerp/reporting-service/pkg/civil"
)

type inventoryUseCase struct {
	repo   inventory.Repository
	cfg    config.ReportConfig
	logger *zap.Logger
}

func NewInventoryUseCase(repo inventory.Repository, cfg config.ReportConfig, log *zap.Logger) inventory.UseCase {
	return &inventoryUseCase{repo: repo, cfg: cfg, logger: log}
}

func (uc *inventoryUseCase) Snapshot(ctx context.Context) ([]model.Product, error) {
	return uc.repo.Snapshot(ctx)
}

// Alerts is current-state only. An empty store yields two empty lists,
// not an error.
func (uc *inventoryUseCase) Alerts(ctx context.Context) (*dto.InventoryAlerts, error) {
	low, err := uc.repo.LowStock(ctx, uc.cfg.LowStockThreshold, uc.cfg.TopN)
	if err != nil {
		return nil, err
	}

	today := civil.Now()
	from := civil.Date(today)
	to := civil.Date(today.AddDate(0, 0, uc.cfg.ExpiryWindowDays))
	expiring, err := uc.repo.NearExpiry(ctx, from, to)
	if err != nil {
		return nil, err
	}

	return &dto.InventoryAlerts{LowStock: low, NearExpiry: expiring}, nil
}

func (uc *inventoryUseCase) UpsertProduct(ctx context.Context, p *model.Product) error {
	if p.Barcode == "" {
		return fmt.Errorf("product barcode is required")
	}
	if p.Price < 0 {
		return fmt.Errorf("product price must be non-negative")
	}
	return uc.repo.Upsert(ctx, p)
}

func (uc *inventoryUseCase) AdjustStock(ctx context.Context, in *dto.AdjustStockInput) error {
	if in.Delta == 0 {
		return fmt.Errorf("stock adjustment delta must be non-zero")
	}
	if in.User == "" {
		in.User = "System"
	}
	if err := uc.repo.AdjustStock(ctx, in); err != nil {
		return err
	}
	uc.logger.Info("stock adjusted",
		zap.String("barcode", in.Barcode),
		zap.Int("delta", in.Delta),
		zap.String("reason", in.Reason))
	return nil
}

func (uc *inventoryUseCase) StockLogs(ctx context.Context, n int) ([]model.StockLog, error) {
	if n <= 0 {
		n = 50
	}
	return uc.repo.StockLogs(ctx, n)
}

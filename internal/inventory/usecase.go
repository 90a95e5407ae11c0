package inventory

import (
	"context"

	"github.com/hornerp/reporting-service/internal/inventory/dto"
	"github.com/hornerp/reporting-service/internal/model"
)

type UseCase interface {
	Snapshot(ctx context.Context) ([]model.Product, error)
	Alerts(ctx context.Context) (*dto.InventoryAlerts, error)
	UpsertProduct(ctx context.Context, p *model.Product) error
	AdjustStock(ctx context.Context, in *dto.AdjustStockInput) error
	StockLogs(ctx context.Context, n int) ([]model.StockLog, error)
}

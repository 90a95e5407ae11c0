package inventory

import (
	"context"

	"github.com/hornerp/reporting-service/internal/inventory/dto"
	"github.com/hornerp/reporting-service/internal/model"
)

// Repository is the product/stock surface. Snapshot and the alert reads
// reflect current state only; they never inherit a sale period filter.
type Repository interface {
	// Snapshot returns every product ordered by category, then name.
	Snapshot(ctx context.Context) ([]model.Product, error)

	// LowStock lists products under the threshold, stock ascending,
	// limited to n.
	LowStock(ctx context.Context, threshold, n int) ([]model.Product, error)

	// NearExpiry lists products whose expiry date falls inside
	// [from, to], both civil dates inclusive.
	NearExpiry(ctx context.Context, from, to string) ([]model.Product, error)

	FindByBarcode(ctx context.Context, barcode string) (*model.Product, error)
	Upsert(ctx context.Context, p *model.Product) error

	// AdjustStock applies a signed delta and appends the audit log entry
	// in one transaction.
	AdjustStock(ctx context.Context, in *dto.AdjustStockInput) error

	// StockLogs returns the newest audit entries, up to n.
	StockLogs(ctx context.Context, n int) ([]model.StockLog, error)
}

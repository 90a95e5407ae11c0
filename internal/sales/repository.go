package sales

import (
	"context"

	"github.com/hornerp/reporting-service/internal/model"
	"github.com/hornerp/reporting-service/internal/sales/dto"
)

// Repository persists a complete sale. The write spans four tables (sale,
// its items, product stock, the audit log) and must commit or roll back
// as one unit; a partially recorded sale can never be observed.
type Repository interface {
	RecordSale(ctx context.Context, sale *model.Sale, items []dto.SaleItemInput) (int64, error)
}

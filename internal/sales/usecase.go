package sales

import (
	"context"

	"github.com/hornerp/reporting-service/internal/sales/dto"
)

type UseCase interface {
	RecordSale(ctx context.Context, in *dto.RecordSaleInput) (*dto.RecordSaleResult, error)
}

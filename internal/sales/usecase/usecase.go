package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/hornerp/reporting-service/internal/model"
	"github.com/hornerp/reporting-service/internal/sales"
	"github.com/hornerp/reporting-service/internal/sales/dto"
	"github.com/hornerp/reporting-service/pkg/civil"
)

type salesUseCase struct {
	repo   sales.Repository
	logger *zap.Logger
}

func NewSalesUseCase(repo sales.Repository, log *zap.Logger) sales.UseCase {
	return &salesUseCase{repo: repo, logger: log}
}

// RecordSale computes the stored total (sum of line values minus the
// discount, fixed at sale time and never recomputed) and hands the whole
// write to the repository as a single transaction. There is no automatic
// retry: a failure is reported to the caller, who decides whether to
// re-submit the entire sale.
func (uc *salesUseCase) RecordSale(ctx context.Context, in *dto.RecordSaleInput) (*dto.RecordSaleResult, error) {
	if len(in.Items) == 0 {
		return nil, fmt.Errorf("sale has no items")
	}

	gross := 0.0
	for _, item := range in.Items {
		if item.Quantity <= 0 {
			return nil, fmt.Errorf("item %q: quantity must be positive", item.ProductName)
		}
		if item.Price < 0 {
			return nil, fmt.Errorf("item %q: price must be non-negative", item.ProductName)
		}
		gross += item.Price * float64(item.Quantity)
	}
	if in.Discount < 0 {
		return nil, fmt.Errorf("discount must be non-negative")
	}
	if in.Discount > gross {
		return nil, fmt.Errorf("discount %.2f exceeds item total %.2f", in.Discount, gross)
	}

	method := in.PaymentMethod
	if method == "" {
		method = "Cash"
	}
	customer := in.CustomerName
	if customer == "" {
		customer = "Walk-in Client"
	}

	sale := &model.Sale{
		TotalAmount:   gross - in.Discount,
		CashierName:   in.CashierName,
		CustomerName:  customer,
		PaymentMethod: method,
		DateCreated:   civil.Timestamp(civil.Now()),
	}

	id, err := uc.repo.RecordSale(ctx, sale, in.Items)
	if err != nil {
		uc.logger.Error("sale recording failed, transaction rolled back", zap.Error(err))
		return nil, err
	}

	uc.logger.Info("sale recorded",
		zap.Int64("sale_id", id),
		zap.Float64("total", sale.TotalAmount),
		zap.Int("items", len(in.Items)))
	return &dto.RecordSaleResult{SaleID: id, TotalAmount: sale.TotalAmount}, nil
}

package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/hornerp/reporting-service/internal/sales"
	"github.com/hornerp/reporting-service/internal/sales/dto"
)

type SalesHandler struct {
	uc     sales.UseCase
	logger *zap.Logger
}

func NewSalesHandler(uc sales.UseCase, log *zap.Logger) *SalesHandler {
	return &SalesHandler{uc: uc, logger: log}
}

// RecordSale records one complete sale. The whole write is transactional;
// a failure means nothing was recorded and the caller may re-submit.
func (h *SalesHandler) RecordSale(c *fiber.Ctx) error {
	var in dto.RecordSaleInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid sale payload"})
	}

	result, err := h.uc.RecordSale(c.Context(), &in)
	if err != nil {
		h.logger.Error("sale recording rejected", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(result)
}

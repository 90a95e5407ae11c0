package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/hornerp/reporting-service/internal/inventory"
	"github.com/hornerp/reporting-service/internal/inventory/dto"
	"github.com/hornerp/reporting-service/internal/model"
)

type InventoryHandler struct {
	uc     inventory.UseCase
	logger *zap.Logger
}

func NewInventoryHandler(uc inventory.UseCase, log *zap.Logger) *InventoryHandler {
	return &InventoryHandler{uc: uc, logger: log}
}

// GetSnapshot returns every product ordered by category then name.
func (h *InventoryHandler) GetSnapshot(c *fiber.Ctx) error {
	products, err := h.uc.Snapshot(c.Context())
	if err != nil {
		h.logger.Error("inventory snapshot failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch inventory"})
	}
	return c.JSON(fiber.Map{"products": products})
}

// GetAlerts returns the low-stock and near-expiry lists.
func (h *InventoryHandler) GetAlerts(c *fiber.Ctx) error {
	alerts, err := h.uc.Alerts(c.Context())
	if err != nil {
		h.logger.Error("inventory alerts failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch alerts"})
	}
	return c.JSON(alerts)
}

// UpsertProduct creates or replaces a product keyed by barcode.
func (h *InventoryHandler) UpsertProduct(c *fiber.Ctx) error {
	var p model.Product
	if err := c.BodyParser(&p); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid product payload"})
	}
	if err := h.uc.UpsertProduct(c.Context(), &p); err != nil {
		h.logger.Error("product upsert failed", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(p)
}

// AdjustStock applies a signed stock delta with an audit entry.
func (h *InventoryHandler) AdjustStock(c *fiber.Ctx) error {
	var in dto.AdjustStockInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid adjustment payload"})
	}
	if err := h.uc.AdjustStock(c.Context(), &in); err != nil {
		h.logger.Error("stock adjustment failed", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetStockLogs returns recent audit entries.
// Query params: limit (default 50).
func (h *InventoryHandler) GetStockLogs(c *fiber.Ctx) error {
	limit, err := strconv.Atoi(c.Query("limit", "50"))
	if err != nil || limit <= 0 {
		limit = 50
	}
	logs, err := h.uc.StockLogs(c.Context(), limit)
	if err != nil {
		h.logger.Error("stock log fetch failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch stock logs"})
	}
	return c.JSON(fiber.Map{"logs": logs})
}

package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/hornerp/reporting-service/internal/export"
	"github.com/hornerp/reporting-service/internal/inventory"
	invdto "github.com/hornerp/reporting-service/internal/inventory/dto"
	"github.com/hornerp/reporting-service/internal/report"
	"github.com/hornerp/reporting-service/pkg/civil"
)

type ReportHandler struct {
	reports report.UseCase
	inv     inventory.UseCase
	excel   *export.ExcelWriter
	pdf     *export.PDFWriter
	logger  *zap.Logger
}

func NewReportHandler(reports report.UseCase, inv inventory.UseCase, excel *export.ExcelWriter, pdf *export.PDFWriter, log *zap.Logger) *ReportHandler {
	return &ReportHandler{reports: reports, inv: inv, excel: excel, pdf: pdf, logger: log}
}

// GetDashboard returns the full report dataset for a period plus the
// current-state inventory alerts.
// Query params: period (Daily|Weekly|Monthly, default Daily).
func (h *ReportHandler) GetDashboard(c *fiber.Ctx) error {
	period := report.ParsePeriod(c.Query("period", "Daily"))
	summary := h.reports.BuildSummary(c.Context(), period, civil.Now())

	alerts, err := h.inv.Alerts(c.Context())
	if err != nil {
		// Partial data still renders; one warning instead of a crash.
		h.logger.Warn("inventory alerts unavailable", zap.Error(err))
		summary.Warnings = append(summary.Warnings, "inventory_alerts")
		alerts = &invdto.InventoryAlerts{}
	}

	return c.JSON(fiber.Map{
		"summary": summary,
		"alerts":  alerts,
	})
}

// ExportExcel builds the period summary, writes the workbook, and serves
// the file. The summary is the same dataset the dashboard returns.
func (h *ReportHandler) ExportExcel(c *fiber.Ctx) error {
	period := report.ParsePeriod(c.Query("period", "Daily"))
	summary := h.reports.BuildSummary(c.Context(), period, civil.Now())

	snapshot, err := h.inv.Snapshot(c.Context())
	if err != nil {
		h.logger.Error("inventory snapshot failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to read inventory"})
	}

	path, err := h.excel.Write(summary, snapshot)
	if err != nil {
		h.logger.Error("excel export failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to generate spreadsheet"})
	}
	return c.Download(path)
}

// ExportPDF builds the period summary and renders the PDF report.
func (h *ReportHandler) ExportPDF(c *fiber.Ctx) error {
	period := report.ParsePeriod(c.Query("period", "Daily"))
	summary := h.reports.BuildSummary(c.Context(), period, civil.Now())

	path, err := h.pdf.Write(summary)
	if err != nil {
		h.logger.Error("pdf export failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to generate report"})
	}
	return c.Download(path)
}

package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/hornerp/reporting-service/internal/model"
	"github.com/hornerp/reporting-service/internal/report/dto"
	"github.com/hornerp/reporting-service/pkg/civil"
)

// ExcelWriter renders a report summary plus the inventory snapshot into a
// two-sheet workbook: "Sales Report" with the period lines and the
// gross/discount/net summary, and "Inventory Status" with the full
// catalog. It consumes the same ReportSummary the dashboard serves.
type ExcelWriter struct {
	Dir string
}

func NewExcelWriter(dir string) *ExcelWriter {
	return &ExcelWriter{Dir: dir}
}

func (w *ExcelWriter) Write(summary *dto.ReportSummary, inventory []model.Product) (string, error) {
	if err := os.MkdirAll(w.Dir, 0o755); err != nil {
		return "", fmt.Errorf("create report dir: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	const salesSheet = "Sales Report"
	if err := f.SetSheetName("Sheet1", salesSheet); err != nil {
		return "", err
	}

	salesHeader, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"2E7D32"}, Pattern: 1},
	})
	if err != nil {
		return "", err
	}
	invHeader, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"1A237E"}, Pattern: 1},
	})
	if err != nil {
		return "", err
	}
	totalStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "0000FF"},
	})
	if err != nil {
		return "", err
	}

	headers := []interface{}{"Date", "Cashier", "Customer", "Category", "Product", "Qty", "Price", "Total (Gross)"}
	if err := f.SetSheetRow(salesSheet, "A1", &headers); err != nil {
		return "", err
	}
	if err := f.SetCellStyle(salesSheet, "A1", "H1", salesHeader); err != nil {
		return "", err
	}

	row := 2
	for _, line := range summary.Lines {
		values := []interface{}{
			line.DateCreated, line.CashierName, line.CustomerName, line.Category,
			line.ProductName, line.Quantity, line.Price, line.LineTotal,
		}
		cell, _ := excelize.CoordinatesToCellName(1, row)
		if err := f.SetSheetRow(salesSheet, cell, &values); err != nil {
			return "", err
		}
		row++
	}

	// Summary block, one blank row below the data.
	row++
	for _, entry := range []struct {
		label string
		value float64
	}{
		{"Gross Sales:", summary.GrossRevenue},
		{"Discounts:", -summary.Discounts},
		{"NET REVENUE:", summary.NetRevenue},
	} {
		labelCell, _ := excelize.CoordinatesToCellName(7, row)
		valueCell, _ := excelize.CoordinatesToCellName(8, row)
		if err := f.SetCellValue(salesSheet, labelCell, entry.label); err != nil {
			return "", err
		}
		if err := f.SetCellValue(salesSheet, valueCell, entry.value); err != nil {
			return "", err
		}
		row++
	}
	lastValue, _ := excelize.CoordinatesToCellName(8, row-1)
	if err := f.SetCellStyle(salesSheet, lastValue, lastValue, totalStyle); err != nil {
		return "", err
	}

	f.SetColWidth(salesSheet, "A", "A", 20)
	f.SetColWidth(salesSheet, "E", "E", 25)

	const invSheet = "Inventory Status"
	if _, err := f.NewSheet(invSheet); err != nil {
		return "", err
	}
	invHeaders := []interface{}{"Barcode", "Name", "Category", "Price", "Stock", "Expiry"}
	if err := f.SetSheetRow(invSheet, "A1", &invHeaders); err != nil {
		return "", err
	}
	if err := f.SetCellStyle(invSheet, "A1", "F1", invHeader); err != nil {
		return "", err
	}
	for i, p := range inventory {
		expiry := ""
		if p.ExpiryDate != nil {
			expiry = *p.ExpiryDate
		}
		values := []interface{}{p.Barcode, p.Name, p.Category, p.Price, p.Stock, expiry}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(invSheet, cell, &values); err != nil {
			return "", err
		}
	}
	f.SetColWidth(invSheet, "B", "B", 30)

	path := filepath.Join(w.Dir, exportFilename("Report", "xlsx"))
	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("save workbook: %w", err)
	}
	return path, nil
}

// exportFilename combines the civil timestamp with a short random suffix
// so two exports in the same second cannot collide.
func exportFilename(kind, ext string) string {
	stamp := civil.Now().Format("20060102_150405")
	short := uuid.New().String()[:8]
	return fmt.Sprintf("HornERP_%s_%s_%s.%s", kind, stamp, short, ext)
}

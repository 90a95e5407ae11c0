package export

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/hornerp/reporting-service/internal/model"
	"github.com/hornerp/reporting-service/internal/report/dto"
)

func sampleSummary() *dto.ReportSummary {
	return &dto.ReportSummary{
		Period:       "daily",
		Label:        "Daily Report (2026-08-30)",
		NetRevenue:   10.00,
		GrossRevenue: 12.00,
		Discounts:    2.00,
		TopProducts: []dto.ProductRank{
			{Name: "Tea", Quantity: 4},
			{Name: "Coffee", Quantity: 2},
		},
		Trend: dto.Trend{
			ByDay: true,
			Points: []dto.TrendPoint{
				{Day: "2026-08-30", Revenue: 10.00},
				{Day: "2026-08-29", Revenue: 7.50},
			},
		},
		Lines: []dto.SaleLine{
			{
				DateCreated:  "2026-08-30 11:00:00",
				CashierName:  "Admin",
				CustomerName: "Walk-in Client",
				Category:     "Drinks",
				ProductName:  "Tea",
				Quantity:     4,
				Price:        3.00,
				LineTotal:    12.00,
			},
		},
	}
}

func TestExcelWriterProducesTwoSheets(t *testing.T) {
	dir := t.TempDir()
	expiry := "2026-09-05"
	inventory := []model.Product{
		{Barcode: "1", Name: "Tea", Category: "Drinks", Price: 3.00, Stock: 6, ExpiryDate: &expiry},
		{Barcode: "2", Name: "Coffee", Category: "Drinks", Price: 2.00, Stock: 10},
	}

	path, err := NewExcelWriter(dir).Write(sampleSummary(), inventory)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(path, dir))
	assert.True(t, strings.HasSuffix(path, ".xlsx"))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.ElementsMatch(t, []string{"Sales Report", "Inventory Status"}, f.GetSheetList())

	product, err := f.GetCellValue("Sales Report", "E2")
	require.NoError(t, err)
	assert.Equal(t, "Tea", product)

	// The summary block sits one blank row below the single data row.
	net, err := f.GetCellValue("Sales Report", "H6")
	require.NoError(t, err)
	assert.Equal(t, "10", net)

	expiryCell, err := f.GetCellValue("Inventory Status", "F2")
	require.NoError(t, err)
	assert.Equal(t, "2026-09-05", expiryCell)
}

func TestExcelWriterEmptySummary(t *testing.T) {
	dir := t.TempDir()
	path, err := NewExcelWriter(dir).Write(&dto.ReportSummary{Label: "Daily Report"}, nil)
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestPDFWriterWritesDocument(t *testing.T) {
	dir := t.TempDir()
	path, err := NewPDFWriter(dir, "Horn ERP").Write(sampleSummary())
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(path, ".pdf"))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Greater(t, len(raw), 4)
	assert.Equal(t, "%PDF", string(raw[:4]))
}

func TestPDFWriterHandlesMissingTrend(t *testing.T) {
	dir := t.TempDir()
	summary := sampleSummary()
	summary.Trend = dto.Trend{ByDay: false, Recent: []dto.RecentSale{
		{DateCreated: "2026-08-30 11:00:00", Total: 10.00},
	}}

	path, err := NewPDFWriter(dir, "Horn ERP").Write(summary)
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestExportFilenameShape(t *testing.T) {
	name := exportFilename("Report", "xlsx")
	assert.True(t, strings.HasPrefix(name, "HornERP_Report_"))
	assert.True(t, strings.HasSuffix(name, ".xlsx"))
	assert.NotEqual(t, name, exportFilename("Report", "xlsx"))
}

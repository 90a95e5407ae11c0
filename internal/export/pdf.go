package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-pdf/fpdf"

	"github.com/hornerp/reporting-service/internal/report/dto"
)

// PDFWriter renders a report summary into a printable business report:
// header band, net/gross/discount summary box, revenue-trend and
// top-product bar charts, and the transaction detail table. Same
// ReportSummary input as the dashboard and the spreadsheet exporter.
type PDFWriter struct {
	Dir      string
	ShopName string
}

func NewPDFWriter(dir, shopName string) *PDFWriter {
	return &PDFWriter{Dir: dir, ShopName: shopName}
}

func (w *PDFWriter) Write(summary *dto.ReportSummary) (string, error) {
	if err := os.MkdirAll(w.Dir, 0o755); err != nil {
		return "", fmt.Errorf("create report dir: %w", err)
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)

	pdf.SetHeaderFunc(func() {
		pdf.SetFillColor(26, 35, 126)
		pdf.Rect(0, 0, 210, 25, "F")
		pdf.SetY(5)
		pdf.SetFont("Arial", "B", 20)
		pdf.SetTextColor(255, 255, 255)
		pdf.CellFormat(0, 8, w.ShopName, "", 1, "C", false, 0, "")
		pdf.SetFont("Arial", "I", 10)
		pdf.SetTextColor(200, 200, 200)
		pdf.CellFormat(0, 5, "Enterprise Management System", "", 1, "C", false, 0, "")
		pdf.Ln(10)
	})
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Arial", "I", 8)
		pdf.SetTextColor(128, 128, 128)
		pdf.CellFormat(0, 10, fmt.Sprintf("Page %d - Generated by Horn ERP", pdf.PageNo()), "", 0, "C", false, 0, "")
	})

	pdf.AddPage()

	pdf.SetTextColor(26, 35, 126)
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, summary.Label, "", 1, "L", false, 0, "")

	// Summary box.
	pdf.SetFillColor(240, 248, 255)
	pdf.SetDrawColor(26, 35, 126)
	pdf.SetLineWidth(0.5)
	pdf.Rect(10, pdf.GetY(), 190, 35, "DF")
	pdf.SetY(pdf.GetY() + 5)

	pdf.SetFont("Arial", "B", 16)
	pdf.SetTextColor(0, 100, 0)
	pdf.CellFormat(190, 10, fmt.Sprintf("Net Revenue: $%.2f", summary.NetRevenue), "", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "", 11)
	pdf.SetTextColor(80, 80, 80)
	pdf.CellFormat(190, 6,
		fmt.Sprintf("Gross Sales: $%.2f   |   Discounts Given: -$%.2f", summary.GrossRevenue, summary.Discounts),
		"", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "I", 9)
	pdf.CellFormat(190, 6, "(Net Revenue = Gross Sales - Discounts)", "", 1, "C", false, 0, "")
	pdf.Ln(10)

	chartY := pdf.GetY()
	w.drawTrendChart(pdf, summary.Trend, 10, chartY)
	w.drawTopProductsChart(pdf, summary.TopProducts, 110, chartY)
	pdf.SetY(chartY + 70)

	w.drawTransactionTable(pdf, summary.Lines)

	path := filepath.Join(w.Dir, exportFilename("Analysis", "pdf"))
	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("write pdf: %w", err)
	}
	return path, nil
}

// drawTrendChart renders per-day revenue as vertical bars inside a fixed
// 90x60 box. The raw-recent-sales fallback shape carries no per-day
// grouping, so it renders the placeholder rather than a misleading chart.
func (w *PDFWriter) drawTrendChart(pdf *fpdf.Fpdf, trend dto.Trend, x, y float64) {
	const boxW, boxH = 90.0, 60.0

	pdf.SetDrawColor(26, 35, 126)
	pdf.SetLineWidth(0.2)
	pdf.Rect(x, y, boxW, boxH, "D")

	pdf.SetFont("Arial", "B", 10)
	pdf.SetTextColor(26, 35, 126)
	pdf.Text(x+28, y+6, "Revenue Trend")

	if !trend.ByDay || len(trend.Points) == 0 {
		pdf.SetFont("Arial", "", 9)
		pdf.SetTextColor(128, 128, 128)
		pdf.Text(x+26, y+boxH/2, "No Trend Data")
		return
	}

	// Points arrive most-recent-first; plot oldest to newest.
	points := make([]dto.TrendPoint, len(trend.Points))
	for i, p := range trend.Points {
		points[len(trend.Points)-1-i] = p
	}

	maxRev := 0.0
	for _, p := range points {
		if p.Revenue > maxRev {
			maxRev = p.Revenue
		}
	}
	if maxRev == 0 {
		maxRev = 1
	}

	plotH := boxH - 18
	barW := (boxW - 10) / float64(len(points))
	pdf.SetFillColor(26, 35, 126)
	pdf.SetFont("Arial", "", 6)
	pdf.SetTextColor(60, 60, 60)
	for i, p := range points {
		barH := (p.Revenue / maxRev) * plotH
		bx := x + 5 + float64(i)*barW
		pdf.Rect(bx+1, y+8+(plotH-barH), barW-2, barH, "F")
		if len(p.Day) >= 10 {
			pdf.Text(bx+1, y+boxH-3, p.Day[5:10]) // MM-DD
		}
	}
}

func (w *PDFWriter) drawTopProductsChart(pdf *fpdf.Fpdf, ranks []dto.ProductRank, x, y float64) {
	const boxW, boxH = 90.0, 60.0

	pdf.SetDrawColor(0, 150, 136)
	pdf.SetLineWidth(0.2)
	pdf.Rect(x, y, boxW, boxH, "D")

	pdf.SetFont("Arial", "B", 10)
	pdf.SetTextColor(0, 150, 136)
	pdf.Text(x+28, y+6, "Top Products")

	if len(ranks) == 0 {
		pdf.SetFont("Arial", "", 9)
		pdf.SetTextColor(128, 128, 128)
		pdf.Text(x+24, y+boxH/2, "No Product Data")
		return
	}

	maxQty := 0
	for _, r := range ranks {
		if r.Quantity > maxQty {
			maxQty = r.Quantity
		}
	}
	if maxQty == 0 {
		maxQty = 1
	}

	rowH := (boxH - 12) / float64(len(ranks))
	pdf.SetFillColor(0, 150, 136)
	pdf.SetFont("Arial", "", 6)
	for i, r := range ranks {
		ry := y + 9 + float64(i)*rowH
		name := r.Name
		if len(name) > 15 {
			name = name[:15]
		}
		pdf.SetTextColor(60, 60, 60)
		pdf.Text(x+2, ry+rowH/2, name)
		barW := (float64(r.Quantity) / float64(maxQty)) * (boxW - 32)
		pdf.Rect(x+28, ry+1, barW, rowH-2, "F")
	}
}

func (w *PDFWriter) drawTransactionTable(pdf *fpdf.Fpdf, lines []dto.SaleLine) {
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Arial", "B", 14)
	pdf.SetFillColor(230, 230, 250)
	pdf.CellFormat(0, 10, "Transaction Details", "", 1, "L", true, 0, "")
	pdf.Ln(2)

	colWidths := []float64{15, 40, 40, 45, 15, 15, 20}
	headers := []string{"ID", "Time", "Customer", "Item", "Qty", "Price", "Total"}

	pdf.SetFont("Arial", "B", 9)
	pdf.SetFillColor(26, 35, 126)
	pdf.SetTextColor(255, 255, 255)
	for i, h := range headers {
		pdf.CellFormat(colWidths[i], 7, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Arial", "", 8)
	pdf.SetFillColor(245, 248, 250)

	fill := false
	for _, line := range lines {
		timeOfDay := ""
		if len(line.DateCreated) >= 16 {
			timeOfDay = line.DateCreated[11:16]
		}
		customer := line.CustomerName
		if len(customer) > 20 {
			customer = customer[:20]
		}
		product := line.ProductName
		if len(product) > 25 {
			product = product[:25]
		}

		pdf.CellFormat(colWidths[0], 6, fmt.Sprintf("%d", line.SaleID), "1", 0, "C", fill, 0, "")
		pdf.CellFormat(colWidths[1], 6, timeOfDay, "1", 0, "C", fill, 0, "")
		pdf.CellFormat(colWidths[2], 6, customer, "1", 0, "L", fill, 0, "")
		pdf.CellFormat(colWidths[3], 6, product, "1", 0, "L", fill, 0, "")
		pdf.CellFormat(colWidths[4], 6, fmt.Sprintf("%d", line.Quantity), "1", 0, "C", fill, 0, "")
		pdf.CellFormat(colWidths[5], 6, fmt.Sprintf("%.2f", line.Price), "1", 0, "R", fill, 0, "")
		pdf.CellFormat(colWidths[6], 6, fmt.Sprintf("%.2f", line.LineTotal), "1", 0, "R", fill, 0, "")
		pdf.Ln(-1)
		fill = !fill
	}
}

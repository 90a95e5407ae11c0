package dto

// ProductRank is one row of the top-products-by-quantity metric.
type ProductRank struct {
	Name     string `db:"product_name" json:"name"`
	Quantity int    `db:"qty" json:"quantity"`
}

// PerformanceRow aggregates sale totals per cashier or per customer.
type PerformanceRow struct {
	Name  string  `db:"name" json:"name"`
	Total float64 `db:"total" json:"total"`
}

// TrendPoint is one calendar day of revenue.
type TrendPoint struct {
	Day     string  `db:"day" json:"day"`
	Revenue float64 `db:"revenue" json:"revenue"`
}

// RecentSale is the raw-sales fallback shape when per-day grouping is not
// available on the active backend. It is deliberately a different type
// from TrendPoint so consumers cannot confuse the two.
type RecentSale struct {
	DateCreated string  `db:"date_created" json:"date_created"`
	Total       float64 `db:"total_amount" json:"total"`
}

// Trend carries either per-day points or the raw-recent fallback,
// flagged by ByDay.
type Trend struct {
	ByDay  bool         `json:"by_day"`
	Points []TrendPoint `json:"points,omitempty"`
	Recent []RecentSale `json:"recent,omitempty"`
}

// SaleLine is one line-item row of the detailed period listing used by
// the spreadsheet and PDF emitters. Category comes from a LEFT JOIN on
// the current product catalog, defaulting to General when the product no
// longer exists.
type SaleLine struct {
	SaleID       int64   `db:"sale_id" json:"sale_id"`
	DateCreated  string  `db:"date_created" json:"date_created"`
	CashierName  string  `db:"cashier_name" json:"cashier_name"`
	CustomerName string  `db:"customer_name" json:"customer_name"`
	Category     string  `db:"category" json:"category"`
	ProductName  string  `db:"product_name" json:"product_name"`
	Quantity     int     `db:"quantity" json:"quantity"`
	Price        float64 `db:"price" json:"price"`
	LineTotal    float64 `db:"line_total" json:"line_total"`
}

// ReportSummary is the canonical report dataset for one period, consumed
// unchanged by the dashboard, the spreadsheet exporter, and the PDF
// generator. Every field holds a concrete zero value when no rows match;
// consumers never special-case "no data".
type ReportSummary struct {
	Period       string  `json:"period"`
	Label        string  `json:"label"`
	NetRevenue   float64 `json:"net_revenue"`
	GrossRevenue float64 `json:"gross_revenue"`
	// Discounts is derived (gross minus net), clamped at zero.
	Discounts           float64          `json:"discounts"`
	TopProducts         []ProductRank    `json:"top_products"`
	EmployeePerformance []PerformanceRow `json:"employee_performance"`
	CustomerPerformance []PerformanceRow `json:"customer_performance"`
	Trend               Trend            `json:"trend"`
	Lines               []SaleLine       `json:"lines"`
	// Warnings lists the sub-metrics that failed and degraded to their
	// zero values. A report with partial data beats no report.
	Warnings []string `json:"warnings,omitempty"`
}

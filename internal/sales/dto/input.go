package dto

// SaleItemInput is one cart line. Barcode locates the product row for the
// stock decrement; ProductName and Price are captured into the immutable
// sale line as they were at sale time.
type SaleItemInput struct {
	Barcode     string  `json:"barcode"`
	ProductName string  `json:"product_name"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
}

type RecordSaleInput struct {
	CashierName   string          `json:"cashier_name"`
	CustomerName  string          `json:"customer_name"`
	PaymentMethod string          `json:"payment_method"`
	Discount      float64         `json:"discount"`
	Items         []SaleItemInput `json:"items"`
}

type RecordSaleResult struct {
	SaleID      int64   `json:"sale_id"`
	TotalAmount float64 `json:"total_amount"`
}

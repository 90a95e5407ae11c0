package model

// Sale's TotalAmount equals the sum of its line items minus any discount
// applied at sale time. The discount itself is never persisted; reports
// derive it from gross item value minus this stored total.
//
// DateCreated is kept as the stored timestamp text (zero-padded ISO,
// civil UTC+5) so period filtering and ordering behave identically on
// both backends.
type Sale struct {
	ID            int64   `db:"id" json:"id"`
	TotalAmount   float64 `db:"total_amount" json:"total_amount"`
	CashierName   string  `db:"cashier_name" json:"cashier_name"`
	CustomerName  string  `db:"customer_name" json:"customer_name"`
	PaymentMethod string  `db:"payment_method" json:"payment_method"`
	DateCreated   string  `db:"date_created" json:"date_created"`
}

// SaleItem rows are immutable once written. ProductName is a denormalized
// copy, not a foreign key: a sale line survives product deletion or
// rename. Price is the unit price at time of sale.
type SaleItem struct {
	ID          int64   `db:"id" json:"id"`
	SaleID      int64   `db:"sale_id" json:"sale_id"`
	ProductName string  `db:"product_name" json:"product_name"`
	Price       float64 `db:"price" json:"price"`
	Quantity    int     `db:"quantity" json:"quantity"`
	Status      string  `db:"status" json:"status"`
}

// StockLog is an append-only audit entry; never updated or deleted.
type StockLog struct {
	ID           int64  `db:"id" json:"id"`
	DateTime     string `db:"date_time" json:"date_time"`
	ProductName  string `db:"product_name" json:"product_name"`
	ChangeAmount int    `db:"change_amount" json:"change_amount"`
	Reason       string `db:"reason" json:"reason"`
	UserRole     string `db:"user_role" json:"user_role"`
}

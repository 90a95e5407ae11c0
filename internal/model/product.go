package model

// Product is identified by its barcode; there is no surrogate id.
// Category defaults to "General" at the schema level. Stock may go
// negative transiently under concurrent sales; that is a data-quality
// signal, not an error.
type Product struct {
	Barcode    string  `db:"barcode" json:"barcode"`
	Name       string  `db:"name" json:"name"`
	Category   string  `db:"category" json:"category"`
	Price      float64 `db:"price" json:"price"`
	Stock      int     `db:"stock" json:"stock"`
	ExpiryDate *string `db:"expiry_date" json:"expiry_date"` // civil date, nullable
}

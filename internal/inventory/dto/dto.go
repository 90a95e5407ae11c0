package dto

import "github.com/hornerp/reporting-service/internal/model"

// AdjustStockInput is a signed stock change plus its audit trail fields.
type AdjustStockInput struct {
	Barcode string `json:"barcode"`
	Delta   int    `json:"delta"`
	Reason  string `json:"reason"`
	User    string `json:"user"`
}

// InventoryAlerts is the dashboard's current-state block: neither list is
// filtered by a report period.
type InventoryAlerts struct {
	LowStock   []model.Product `json:"low_stock"`
	NearExpiry []model.Product `json:"near_expiry"`
}

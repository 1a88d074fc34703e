package dto

import "github.com/shopspring/decimal"

// InventorySummaryDTO resumen del inventario para el dashboard.
type InventorySummaryDTO struct {
	TotalProducts     int             `json:"total_products"`
	LowStockCount     int             `json:"low_stock_count"`
	LowStockThreshold int             `json:"low_stock_threshold"`
	InventoryValue    decimal.Decimal `json:"inventory_value"`
}

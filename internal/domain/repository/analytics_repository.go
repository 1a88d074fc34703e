package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// InventorySummaryResult resultado crudo de la consulta de resumen de inventario.
// Lo produce la DB; el use case lo convierte en DTO.
type InventorySummaryResult struct {
	TotalProducts  int
	LowStockCount  int             // productos con quantity < entity.LowStockThreshold
	InventoryValue decimal.Decimal // Σ quantity × price
}

// AnalyticsRepository define las consultas de lectura para el dashboard.
// Las implementaciones son read-only (no modifican datos).
type AnalyticsRepository interface {
	GetInventorySummary(ctx context.Context) (InventorySummaryResult, error)
}

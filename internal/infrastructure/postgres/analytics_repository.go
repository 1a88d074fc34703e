package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/inventario-lite/internal/domain/entity"
	"github.com/jhoicas/inventario-lite/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de solo lectura para el dashboard.
type AnalyticsRepo struct {
	pool *pgxpool.Pool
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepo {
	return &AnalyticsRepo{pool: pool}
}

// GetInventorySummary agrega total de productos, conteo de stock bajo y valor
// del inventario en una sola consulta. COALESCE devuelve cero con la tabla vacía.
func (r *AnalyticsRepo) GetInventorySummary(ctx context.Context) (repository.InventorySummaryResult, error) {
	const query = `
		SELECT
		    COUNT(*)                                      AS total_products,
		    COUNT(*) FILTER (WHERE quantity < $1)         AS low_stock_count,
		    COALESCE(SUM(quantity * price), 0)            AS inventory_value
		FROM products`

	var res repository.InventorySummaryResult
	err := r.pool.QueryRow(ctx, query, entity.LowStockThreshold).Scan(
		&res.TotalProducts,
		&res.LowStockCount,
		&res.InventoryValue,
	)
	if err != nil {
		return repository.InventorySummaryResult{}, fmt.Errorf("analytics.GetInventorySummary: %w", err)
	}
	return res, nil
}

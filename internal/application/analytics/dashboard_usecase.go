// Package analytics contiene el caso de uso de lectura para el dashboard
// del inventario.
package analytics

import (
	"context"
	"fmt"

	"github.com/jhoicas/inventario-lite/internal/application/dto"
	"github.com/jhoicas/inventario-lite/internal/domain/entity"
	"github.com/jhoicas/inventario-lite/internal/domain/repository"
)

// DashboardUseCase genera el resumen del inventario: total de productos,
// cuántos están por debajo del umbral de stock y el valor total del inventario.
//
// Fuente de datos: AnalyticsRepository (consulta read-only agregada en la DB;
// no se trae la lista completa para contar en memoria).
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo}
}

// GetSummary construye el InventorySummaryDTO.
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.InventorySummaryDTO, error) {
	res, err := uc.analyticsRepo.GetInventorySummary(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard: resumen de inventario: %w", err)
	}
	return &dto.InventorySummaryDTO{
		TotalProducts:     res.TotalProducts,
		LowStockCount:     res.LowStockCount,
		LowStockThreshold: entity.LowStockThreshold,
		InventoryValue:    res.InventoryValue.Round(2),
	}, nil
}

package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// LowStockThreshold unidades por debajo de las cuales un producto
// se considera con stock bajo (widget del dashboard y resaltado en la tabla).
const LowStockThreshold = 5

// Product representa un producto del inventario.
// El ID es un UUID asignado en la creación y es inmutable; Quantity y Price
// nunca son negativos (validado antes de cualquier escritura).
type Product struct {
	ID          string
	Name        string
	Description string
	Quantity    int
	Price       decimal.Decimal
	Category    string // vacío = sin categoría (el cliente muestra un placeholder)
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsLowStock indica si el producto está por debajo del umbral de stock.
func (p *Product) IsLowStock() bool {
	return p.Quantity < LowStockThreshold
}

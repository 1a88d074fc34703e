package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductRequest entrada para crear o actualizar un producto.
// POST y PUT comparten la forma: la actualización reemplaza todos los campos
// mutables (no hay parche parcial).
//
// Quantity y Price son punteros para distinguir "campo ausente" de cero, y
// decimal.Decimal para aceptar tanto `3` como `"3"` en el JSON (la coerción
// fallida se rechaza al parsear el cuerpo, nunca revienta el proceso).
type ProductRequest struct {
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Quantity    *decimal.Decimal `json:"quantity"`
	Price       *decimal.Decimal `json:"price"`
	Category    string           `json:"category"`
}

// ProductResponse salida de un producto. El identificador viaja como `_id`.
type ProductResponse struct {
	ID          string          `json:"_id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

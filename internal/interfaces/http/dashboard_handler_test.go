package http_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

// El valor del inventario es Σ quantity × price sobre todos los productos.
func TestResumenDashboard_ValorDelInventario(t *testing.T) {
	app, _ := buildTestApp()

	doJSON(t, app, http.MethodPost, "/api/products", `{"name":"A","quantity":2,"price":10.50}`)
	doJSON(t, app, http.MethodPost, "/api/products", `{"name":"B","quantity":3,"price":1.00}`)

	got := summary(t, app)
	assert.Equal(t, float64(2), got["total_products"])
	assert.Equal(t, float64(24), got["inventory_value"], "2×10.50 + 3×1.00")
	assert.Equal(t, float64(5), got["low_stock_threshold"])
}

// Con el store vacío el resumen devuelve ceros, no errores.
func TestResumenDashboard_StoreVacio(t *testing.T) {
	app, _ := buildTestApp()

	got := summary(t, app)
	assert.Equal(t, float64(0), got["total_products"])
	assert.Equal(t, float64(0), got["low_stock_count"])
	assert.Equal(t, float64(0), got["inventory_value"])
}

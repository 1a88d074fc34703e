package analytics_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-lite/internal/application/analytics"
	"github.com/jhoicas/inventario-lite/internal/domain/repository"
)

type fakeAnalyticsRepo struct {
	result repository.InventorySummaryResult
	err    error
}

func (r *fakeAnalyticsRepo) GetInventorySummary(context.Context) (repository.InventorySummaryResult, error) {
	return r.result, r.err
}

func TestGetSummary_MapeaResultadoYUmbral(t *testing.T) {
	repo := &fakeAnalyticsRepo{result: repository.InventorySummaryResult{
		TotalProducts:  7,
		LowStockCount:  2,
		InventoryValue: decimal.RequireFromString("1234.567"),
	}}
	uc := analytics.NewDashboardUseCase(repo)

	out, err := uc.GetSummary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 7, out.TotalProducts)
	assert.Equal(t, 2, out.LowStockCount)
	assert.Equal(t, 5, out.LowStockThreshold)
	assert.True(t, decimal.RequireFromString("1234.57").Equal(out.InventoryValue),
		"el valor del inventario se redondea a 2 decimales")
}

func TestGetSummary_FallaDelRepo_SePropaga(t *testing.T) {
	uc := analytics.NewDashboardUseCase(&fakeAnalyticsRepo{err: assert.AnError})

	out, err := uc.GetSummary(context.Background())
	assert.Nil(t, out)
	assert.ErrorIs(t, err, assert.AnError)
}

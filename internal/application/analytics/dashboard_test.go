package analytics_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tiendas-api/internal/application/analytics"
	"github.com/jhoicas/tiendas-api/internal/domain"
	"github.com/jhoicas/tiendas-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Doble del repositorio de analítica: métricas por mes (clave "2006-01")
// ──────────────────────────────────────────────────────────────────────────────

type monthMetrics struct {
	purchased decimal.Decimal
	orders    int64
	revenue   decimal.Decimal
	profit    decimal.Decimal
}

type fakeAnalyticsRepo struct {
	byMonth   map[string]monthMetrics
	lowStock  int64
	saleLines []repository.SaleLineActivityRow
	products  []repository.ProductCreationRow
}

func (r *fakeAnalyticsRepo) GetPurchaseMetrics(_ context.Context, _ string, start, _ time.Time) (decimal.Decimal, int64, error) {
	m := r.byMonth[start.Format("2006-01")]
	return m.purchased, m.orders, nil
}

func (r *fakeAnalyticsRepo) CountLowStock(context.Context, string, decimal.Decimal) (int64, error) {
	return r.lowStock, nil
}

func (r *fakeAnalyticsRepo) GetSalesMetrics(_ context.Context, _ string, start, _ time.Time) (decimal.Decimal, decimal.Decimal, error) {
	m := r.byMonth[start.Format("2006-01")]
	return m.revenue, m.profit, nil
}

func (r *fakeAnalyticsRepo) ListSaleLineActivity(_ context.Context, _ string, limit int) ([]repository.SaleLineActivityRow, error) {
	if len(r.saleLines) > limit {
		return r.saleLines[:limit], nil
	}
	return r.saleLines, nil
}

func (r *fakeAnalyticsRepo) ListRecentProducts(_ context.Context, _ string, limit int) ([]repository.ProductCreationRow, error) {
	if len(r.products) > limit {
		return r.products[:limit], nil
	}
	return r.products, nil
}

func TestDashboard_KPIsConCrecimiento(t *testing.T) {
	repo := &fakeAnalyticsRepo{
		byMonth: map[string]monthMetrics{
			"2026-03": {purchased: d("1500"), orders: 30, revenue: d("9000"), profit: d("2700")},
			"2026-02": {purchased: d("1000"), orders: 0, revenue: d("6000"), profit: d("1500")},
		},
		lowStock: 4,
	}
	uc := analytics.NewDashboardUseCase(repo, analytics.NoopStatsCache{}, 0)

	stats, err := uc.GetStats(context.Background(), 3, 2026, "")
	require.NoError(t, err)

	assert.True(t, stats.Purchased.Value.Equal(d("1500")))
	assert.True(t, stats.Purchased.Growth.Equal(d("50")), "1000→1500 es +50, fue %s", stats.Purchased.Growth)

	assert.True(t, stats.Orders.Value.Equal(d("30")))
	assert.True(t, stats.Orders.Growth.Equal(d("100")), "anterior 0 y actual >0 reporta 100")

	assert.True(t, stats.LowStock.Value.Equal(d("4")))
	assert.True(t, stats.LowStock.Growth.IsZero(), "stock bajo no tiene histórico: crecimiento siempre 0")

	assert.True(t, stats.Revenue.Value.Equal(d("9000")))
	assert.True(t, stats.Revenue.Profit.Equal(d("2700")))
	assert.True(t, stats.Revenue.Growth.Equal(d("50")))
}

func TestDashboard_MesSinDatos(t *testing.T) {
	repo := &fakeAnalyticsRepo{byMonth: map[string]monthMetrics{}}
	uc := analytics.NewDashboardUseCase(repo, analytics.NoopStatsCache{}, 0)

	stats, err := uc.GetStats(context.Background(), 7, 2026, "s1")
	require.NoError(t, err)
	assert.True(t, stats.Purchased.Value.IsZero())
	assert.True(t, stats.Purchased.Growth.IsZero(), "ambos períodos en cero reportan 0")
	assert.True(t, stats.Revenue.Growth.IsZero())
}

// Lecturas idempotentes: misma entrada y sin escrituras intermedias, misma
// salida.
func TestDashboard_LecturaIdempotente(t *testing.T) {
	repo := &fakeAnalyticsRepo{
		byMonth: map[string]monthMetrics{
			"2026-03": {purchased: d("123.45"), orders: 7, revenue: d("999.99"), profit: d("100.01")},
		},
		lowStock: 2,
	}
	uc := analytics.NewDashboardUseCase(repo, analytics.NoopStatsCache{}, 0)

	first, err := uc.GetStats(context.Background(), 3, 2026, "")
	require.NoError(t, err)
	second, err := uc.GetStats(context.Background(), 3, 2026, "")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestDashboard_ParametrosInvalidos(t *testing.T) {
	uc := analytics.NewDashboardUseCase(&fakeAnalyticsRepo{}, analytics.NoopStatsCache{}, 0)
	_, err := uc.GetStats(context.Background(), 13, 2026, "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.GetStats(context.Background(), 0, 2026, "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Package analytics contiene los casos de uso de solo lectura del dashboard
// y del feed de actividad. Son idempotentes: dos llamadas con los mismos
// parámetros y sin escrituras intermedias devuelven lo mismo.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/tiendas-api/internal/application/dto"
	"github.com/jhoicas/tiendas-api/internal/domain"
	"github.com/jhoicas/tiendas-api/internal/domain/repository"
)

// lowStockThreshold umbral fijo de stock bajo (foto actual, sin histórico).
var lowStockThreshold = decimal.NewFromInt(5)

// StatsCache cachea la respuesta del dashboard por (mes, año, tienda).
// La implementación Redis es opcional; con Noop cada consulta va a la DB.
type StatsCache interface {
	Get(ctx context.Context, key string) (*dto.DashboardStatsDTO, bool, error)
	Set(ctx context.Context, key string, value *dto.DashboardStatsDTO, ttl time.Duration) error
}

// NoopStatsCache desactiva el caché.
type NoopStatsCache struct{}

func (NoopStatsCache) Get(context.Context, string) (*dto.DashboardStatsDTO, bool, error) {
	return nil, false, nil
}

func (NoopStatsCache) Set(context.Context, string, *dto.DashboardStatsDTO, time.Duration) error {
	return nil
}

// DashboardUseCase calcula los KPIs de un mes calendario con comparación de
// crecimiento contra el mes inmediatamente anterior.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
	cache         StatsCache
	cacheTTL      time.Duration
}

// NewDashboardUseCase construye el caso de uso. cache puede ser NoopStatsCache.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository, cache StatsCache, cacheTTL time.Duration) *DashboardUseCase {
	if cache == nil {
		cache = NoopStatsCache{}
	}
	return &DashboardUseCase{analyticsRepo: analyticsRepo, cache: cache, cacheTTL: cacheTTL}
}

// GetStats construye el DashboardStatsDTO de (month, year) para la tienda
// indicada (vacía = todas).
//
// Ventanas: mes calendario completo y el mes anterior completo. Las cinco
// consultas (compras actual/anterior, ventas actual/anterior, stock bajo)
// corren en paralelo.
func (uc *DashboardUseCase) GetStats(ctx context.Context, month, year int, storeID string) (*dto.DashboardStatsDTO, error) {
	if month < 1 || month > 12 || year < 2000 || year > 2200 {
		return nil, domain.ErrInvalidInput
	}

	cacheKey := fmt.Sprintf("dashboard:%04d-%02d:%s", year, month, storeID)
	if cached, ok, err := uc.cache.Get(ctx, cacheKey); err == nil && ok {
		return cached, nil
	}

	// ── Ventanas de fecha ─────────────────────────────────────────────────────
	curStart := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local)
	curEnd := curStart.AddDate(0, 1, 0).Add(-time.Nanosecond)
	prevStart := curStart.AddDate(0, -1, 0)
	prevEnd := curStart.Add(-time.Nanosecond)

	// ── Consultas en paralelo ─────────────────────────────────────────────────
	type purchaseResult struct {
		value  decimal.Decimal
		orders int64
		err    error
	}
	type salesResult struct {
		revenue decimal.Decimal
		profit  decimal.Decimal
		err     error
	}
	type lowStockResult struct {
		count int64
		err   error
	}

	curPurchaseCh := make(chan purchaseResult, 1)
	prevPurchaseCh := make(chan purchaseResult, 1)
	curSalesCh := make(chan salesResult, 1)
	prevSalesCh := make(chan salesResult, 1)
	lowStockCh := make(chan lowStockResult, 1)

	go func() {
		v, n, err := uc.analyticsRepo.GetPurchaseMetrics(ctx, storeID, curStart, curEnd)
		curPurchaseCh <- purchaseResult{v, n, err}
	}()
	go func() {
		v, n, err := uc.analyticsRepo.GetPurchaseMetrics(ctx, storeID, prevStart, prevEnd)
		prevPurchaseCh <- purchaseResult{v, n, err}
	}()
	go func() {
		r, p, err := uc.analyticsRepo.GetSalesMetrics(ctx, storeID, curStart, curEnd)
		curSalesCh <- salesResult{r, p, err}
	}()
	go func() {
		r, p, err := uc.analyticsRepo.GetSalesMetrics(ctx, storeID, prevStart, prevEnd)
		prevSalesCh <- salesResult{r, p, err}
	}()
	go func() {
		n, err := uc.analyticsRepo.CountLowStock(ctx, storeID, lowStockThreshold)
		lowStockCh <- lowStockResult{n, err}
	}()

	curPurchase := <-curPurchaseCh
	prevPurchase := <-prevPurchaseCh
	curSales := <-curSalesCh
	prevSales := <-prevSalesCh
	lowStock := <-lowStockCh

	if curPurchase.err != nil {
		return nil, fmt.Errorf("dashboard: compras del mes: %w", curPurchase.err)
	}
	if prevPurchase.err != nil {
		return nil, fmt.Errorf("dashboard: compras del mes anterior: %w", prevPurchase.err)
	}
	if curSales.err != nil {
		return nil, fmt.Errorf("dashboard: ventas del mes: %w", curSales.err)
	}
	if prevSales.err != nil {
		return nil, fmt.Errorf("dashboard: ventas del mes anterior: %w", prevSales.err)
	}
	if lowStock.err != nil {
		return nil, fmt.Errorf("dashboard: stock bajo: %w", lowStock.err)
	}

	stats := &dto.DashboardStatsDTO{
		Purchased: dto.MetricDTO{
			Value:  curPurchase.value.Round(2),
			Growth: Growth(curPurchase.value, prevPurchase.value),
		},
		Orders: dto.MetricDTO{
			Value:  decimal.NewFromInt(curPurchase.orders),
			Growth: Growth(decimal.NewFromInt(curPurchase.orders), decimal.NewFromInt(prevPurchase.orders)),
		},
		LowStock: dto.MetricDTO{
			// Sin foto histórica de stock no hay con qué comparar:
			// el crecimiento se reporta siempre 0.
			Value:  decimal.NewFromInt(lowStock.count),
			Growth: decimal.Zero,
		},
		Revenue: dto.RevenueMetricDTO{
			Value:  curSales.revenue.Round(2),
			Profit: curSales.profit.Round(2),
			Growth: Growth(curSales.revenue, prevSales.revenue),
		},
	}

	_ = uc.cache.Set(ctx, cacheKey, stats, uc.cacheTTL)
	return stats, nil
}

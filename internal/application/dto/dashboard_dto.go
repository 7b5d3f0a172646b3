package dto

import "github.com/shopspring/decimal"

// MetricDTO un KPI con su crecimiento contra el mes inmediatamente anterior.
// Growth sigue la regla uniforme: 0 si ambos períodos son 0; 100 si el
// anterior es 0 y el actual > 0; si no, (actual − anterior) / anterior × 100.
type MetricDTO struct {
	Value  decimal.Decimal `json:"value"`
	Growth decimal.Decimal `json:"growth"`
}

// RevenueMetricDTO el KPI de ingresos lleva además la utilidad del período.
type RevenueMetricDTO struct {
	Value  decimal.Decimal `json:"value"`
	Profit decimal.Decimal `json:"profit"`
	Growth decimal.Decimal `json:"growth"`
}

// DashboardStatsDTO respuesta de GET /api/products/dashboard-stats.
//
// LowStock.Growth es siempre 0: no existe una foto histórica del stock con
// la cual compararlo (limitación conocida, no se inventa un snapshot).
type DashboardStatsDTO struct {
	Purchased MetricDTO        `json:"purchased"` // Σ entradas × costo proveedor
	Orders    MetricDTO        `json:"orders"`    // número de entradas del período
	LowStock  MetricDTO        `json:"lowStock"`  // productos con stock < 5 (foto actual)
	Revenue   RevenueMetricDTO `json:"revenue"`   // Σ sales.total del período
}

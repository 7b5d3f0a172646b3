package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// SaleLineActivityRow fila cruda para el feed de actividad: una línea de
// venta con su contexto de cabecera. SaleSubtotal es la suma de brutos de
// TODAS las líneas de la venta, para que el caso de uso pueda repartir el
// descuento sin una segunda consulta.
type SaleLineActivityRow struct {
	SaleID        string
	SaleDate      time.Time
	ProductName   string
	StoreName     string
	Quantity      decimal.Decimal
	UnitPrice     decimal.Decimal
	ProviderPrice decimal.Decimal
	SaleDiscount  decimal.Decimal
	SaleSubtotal  decimal.Decimal
	PaymentMethod string
	Status        string
	CouponCode    string
	SellerName    string
}

// ProductCreationRow fila cruda de un producto recién creado para el feed.
// Stock es la cantidad actual, usada como señal aproximada de la inicial.
type ProductCreationRow struct {
	ProductID string
	Name      string
	StoreName string
	Stock     decimal.Decimal
	CreatedAt time.Time
}

// AnalyticsRepository define las consultas de solo lectura para el dashboard
// y el feed de actividad. storeID vacío agrega todas las tiendas.
type AnalyticsRepository interface {
	// GetPurchaseMetrics devuelve el valor comprado (Σ cantidad × costo
	// proveedor de movimientos ENTRY) y el número de entradas del período.
	// COALESCE a cero cuando el período no tiene movimientos.
	GetPurchaseMetrics(ctx context.Context, storeID string, start, end time.Time) (value decimal.Decimal, orders int64, err error)

	// CountLowStock cuenta productos no-bundle con stock < threshold.
	// Es una foto del momento, no está acotada a ningún período.
	CountLowStock(ctx context.Context, storeID string, threshold decimal.Decimal) (int64, error)

	// GetSalesMetrics devuelve ingresos (Σ sales.total) y utilidad
	// (Σ (precio_línea − costo_proveedor) × cantidad) del período.
	GetSalesMetrics(ctx context.Context, storeID string, start, end time.Time) (revenue, profit decimal.Decimal, err error)

	// ListSaleLineActivity devuelve las líneas de venta más recientes.
	ListSaleLineActivity(ctx context.Context, storeID string, limit int) ([]SaleLineActivityRow, error)

	// ListRecentProducts devuelve los productos creados más recientemente.
	ListRecentProducts(ctx context.Context, storeID string, limit int) ([]ProductCreationRow, error)
}

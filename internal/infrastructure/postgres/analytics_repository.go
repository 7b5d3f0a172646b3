package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/tiendas-api/internal/domain/entity"
	"github.com/jhoicas/tiendas-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de solo lectura para el dashboard y el feed de
// actividad. Trabaja directo sobre el pool: ninguna consulta escribe.
type AnalyticsRepo struct {
	pool *pgxpool.Pool
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepo {
	return &AnalyticsRepo{pool: pool}
}

// GetPurchaseMetrics devuelve el valor comprado (Σ cantidad × costo proveedor
// de movimientos ENTRY del período) y el número de entradas.
// Usa COALESCE para devolver cero si no hay filas (período sin compras).
func (r *AnalyticsRepo) GetPurchaseMetrics(
	ctx context.Context,
	storeID string,
	start, end time.Time,
) (value decimal.Decimal, orders int64, err error) {
	const query = `
	SELECT
	    COALESCE(SUM(m.quantity * COALESCE(p.provider_price, 0)), 0) AS purchased_value,
	    COUNT(m.id)                                                  AS entry_count
	FROM stock_movements m
	JOIN products p ON p.id = m.product_id
	WHERE m.type = $1
	  AND m.date BETWEEN $2 AND $3
	  AND ($4 = '' OR p.store_id = $4::uuid)`

	err = r.pool.QueryRow(ctx, query, entity.MovementTypeEntry, start, end, storeID).
		Scan(&value, &orders)
	if err != nil {
		return decimal.Zero, 0, fmt.Errorf("analytics.GetPurchaseMetrics: %w", err)
	}
	return value, orders, nil
}

// CountLowStock cuenta productos no-bundle con stock por debajo del umbral.
// Es una foto del momento, sin acotar a un período.
func (r *AnalyticsRepo) CountLowStock(
	ctx context.Context,
	storeID string,
	threshold decimal.Decimal,
) (int64, error) {
	const query = `
	SELECT COUNT(*)
	FROM products p
	WHERE p.is_bundle = FALSE
	  AND p.stock < $1
	  AND ($2 = '' OR p.store_id = $2::uuid)`

	var count int64
	if err := r.pool.QueryRow(ctx, query, threshold, storeID).Scan(&count); err != nil {
		return 0, fmt.Errorf("analytics.CountLowStock: %w", err)
	}
	return count, nil
}

// GetSalesMetrics devuelve ingresos (Σ sales.total, ya neto de descuento) y
// utilidad bruta (Σ (precio_línea − costo_proveedor) × cantidad) del período.
// La utilidad del dashboard es sobre precio de lista: el reparto de descuento
// por línea pertenece al feed de actividad, no a este KPI.
func (r *AnalyticsRepo) GetSalesMetrics(
	ctx context.Context,
	storeID string,
	start, end time.Time,
) (revenue, profit decimal.Decimal, err error) {
	const query = `
	SELECT
	    COALESCE(SUM(s.total), 0) AS revenue,
	    COALESCE((
	        SELECT SUM((i.price - COALESCE(p.provider_price, 0)) * i.quantity)
	        FROM sale_items i
	        JOIN sales s2   ON s2.id = i.sale_id
	        JOIN products p ON p.id  = i.product_id
	        WHERE s2.date BETWEEN $1 AND $2
	          AND ($3 = '' OR s2.store_id = $3::uuid)
	    ), 0) AS profit
	FROM sales s
	WHERE s.date BETWEEN $1 AND $2
	  AND ($3 = '' OR s.store_id = $3::uuid)`

	err = r.pool.QueryRow(ctx, query, start, end, storeID).
		Scan(&revenue, &profit)
	if err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("analytics.GetSalesMetrics: %w", err)
	}
	return revenue, profit, nil
}

// ListSaleLineActivity devuelve las líneas de venta más recientes con su
// contexto de cabecera. sale_subtotal es la suma de brutos de todas las
// líneas de la venta (ventana por sale_id), para que el caso de uso reparta
// el descuento sin una segunda consulta.
func (r *AnalyticsRepo) ListSaleLineActivity(
	ctx context.Context,
	storeID string,
	limit int,
) ([]repository.SaleLineActivityRow, error) {
	const query = `
	SELECT
	    s.id                                                          AS sale_id,
	    s.date                                                        AS sale_date,
	    p.name                                                        AS product_name,
	    st.name                                                       AS store_name,
	    i.quantity,
	    i.price                                                       AS unit_price,
	    COALESCE(p.provider_price, 0)                                 AS provider_price,
	    s.discount                                                    AS sale_discount,
	    SUM(i.price * i.quantity) OVER (PARTITION BY i.sale_id)       AS sale_subtotal,
	    s.payment_method,
	    s.status,
	    s.coupon_code,
	    COALESCE(u.name, '')                                          AS seller_name
	FROM sale_items i
	JOIN sales s     ON s.id  = i.sale_id
	JOIN products p  ON p.id  = i.product_id
	JOIN stores st   ON st.id = s.store_id
	LEFT JOIN users u ON u.id = s.user_id
	WHERE ($1 = '' OR s.store_id = $1::uuid)
	ORDER BY s.date DESC
	LIMIT $2`

	rows, err := r.pool.Query(ctx, query, storeID, limit)
	if err != nil {
		return nil, fmt.Errorf("analytics.ListSaleLineActivity: %w", err)
	}
	defer rows.Close()

	var results []repository.SaleLineActivityRow
	for rows.Next() {
		var row repository.SaleLineActivityRow
		if err := rows.Scan(
			&row.SaleID,
			&row.SaleDate,
			&row.ProductName,
			&row.StoreName,
			&row.Quantity,
			&row.UnitPrice,
			&row.ProviderPrice,
			&row.SaleDiscount,
			&row.SaleSubtotal,
			&row.PaymentMethod,
			&row.Status,
			&row.CouponCode,
			&row.SellerName,
		); err != nil {
			return nil, fmt.Errorf("analytics.ListSaleLineActivity scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// ListRecentProducts devuelve los productos creados más recientemente.
func (r *AnalyticsRepo) ListRecentProducts(
	ctx context.Context,
	storeID string,
	limit int,
) ([]repository.ProductCreationRow, error) {
	const query = `
	SELECT
	    p.id      AS product_id,
	    p.name,
	    st.name   AS store_name,
	    p.stock,
	    p.created_at
	FROM products p
	JOIN stores st ON st.id = p.store_id
	WHERE ($1 = '' OR p.store_id = $1::uuid)
	ORDER BY p.created_at DESC
	LIMIT $2`

	rows, err := r.pool.Query(ctx, query, storeID, limit)
	if err != nil {
		return nil, fmt.Errorf("analytics.ListRecentProducts: %w", err)
	}
	defer rows.Close()

	var results []repository.ProductCreationRow
	for rows.Next() {
		var row repository.ProductCreationRow
		if err := rows.Scan(&row.ProductID, &row.Name, &row.StoreName, &row.Stock, &row.CreatedAt); err != nil {
			return nil, fmt.Errorf("analytics.ListRecentProducts scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/tiendas-api/internal/domain/entity"
	"github.com/jhoicas/tiendas-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)
var _ repository.PromoCodeRepository = (*PromoCodeRepo)(nil)

// SaleRepo adaptador PostgreSQL de ventas y líneas. Cabecera y líneas se
// insertan dentro de la misma transacción del checkout.
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create inserta la cabecera de la venta.
func (r *SaleRepo) Create(sale *entity.Sale) error {
	query := `
		INSERT INTO sales (id, store_id, date, total, discount, coupon_code, payment_method, status, user_id, customer_name)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		sale.ID, sale.StoreID, sale.Date, sale.Total, sale.Discount, sale.CouponCode,
		sale.PaymentMethod, sale.Status, sale.UserID, sale.CustomerName,
	)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// CreateItem inserta una línea de la venta.
func (r *SaleRepo) CreateItem(item *entity.SaleItem) error {
	query := `
		INSERT INTO sale_items (id, sale_id, product_id, quantity, price)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.SaleID, item.ProductID, item.Quantity, item.Price,
	)
	if err != nil {
		return fmt.Errorf("insert sale item: %w", err)
	}
	return nil
}

// GetByID obtiene una venta con sus líneas. Devuelve nil si no existe.
func (r *SaleRepo) GetByID(id string) (*entity.Sale, error) {
	query := `
		SELECT id, store_id, date, total, discount, coupon_code, payment_method, status, user_id, customer_name
		FROM sales WHERE id = $1`
	var s entity.Sale
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.StoreID, &s.Date, &s.Total, &s.Discount, &s.CouponCode,
		&s.PaymentMethod, &s.Status, &s.UserID, &s.CustomerName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	items, err := r.listItems(s.ID)
	if err != nil {
		return nil, err
	}
	s.Items = items
	return &s, nil
}

// ListByStore lista ventas de una tienda, más recientes primero, con sus
// líneas. from y to acotan el rango de fechas; nil no filtra.
func (r *SaleRepo) ListByStore(storeID string, from, to *time.Time, limit, offset int) ([]*entity.Sale, error) {
	query := `
		SELECT id, store_id, date, total, discount, coupon_code, payment_method, status, user_id, customer_name
		FROM sales
		WHERE store_id = $1
		  AND ($2::timestamptz IS NULL OR date >= $2)
		  AND ($3::timestamptz IS NULL OR date <= $3)
		ORDER BY date DESC
		LIMIT $4 OFFSET $5`
	rows, err := r.q.Query(context.Background(), query, storeID, from, to, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	var list []*entity.Sale
	for rows.Next() {
		var s entity.Sale
		if err := rows.Scan(&s.ID, &s.StoreID, &s.Date, &s.Total, &s.Discount, &s.CouponCode,
			&s.PaymentMethod, &s.Status, &s.UserID, &s.CustomerName); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, s := range list {
		items, err := r.listItems(s.ID)
		if err != nil {
			return nil, err
		}
		s.Items = items
	}
	return list, nil
}

func (r *SaleRepo) listItems(saleID string) ([]*entity.SaleItem, error) {
	query := `
		SELECT id, sale_id, product_id, quantity, price
		FROM sale_items WHERE sale_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, saleID)
	if err != nil {
		return nil, fmt.Errorf("list sale items: %w", err)
	}
	defer rows.Close()
	var items []*entity.SaleItem
	for rows.Next() {
		var it entity.SaleItem
		if err := rows.Scan(&it.ID, &it.SaleID, &it.ProductID, &it.Quantity, &it.Price); err != nil {
			return nil, fmt.Errorf("scan sale item: %w", err)
		}
		items = append(items, &it)
	}
	return items, rows.Err()
}

// PromoCodeRepo adaptador PostgreSQL de lectura de cupones.
type PromoCodeRepo struct {
	q Querier
}

// NewPromoCodeRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPromoCodeRepository(q Querier) *PromoCodeRepo {
	return &PromoCodeRepo{q: q}
}

// GetByCode obtiene un cupón por código. Devuelve nil si no existe.
func (r *PromoCodeRepo) GetByCode(code string) (*entity.PromoCode, error) {
	query := `SELECT code, discount_type, discount_value, active FROM promo_codes WHERE code = $1`
	var p entity.PromoCode
	err := r.q.QueryRow(context.Background(), query, code).Scan(
		&p.Code, &p.DiscountType, &p.DiscountValue, &p.Active,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get promo code: %w", err)
	}
	return &p, nil
}

package dto

import "github.com/shopspring/decimal"

// Tipos de evento del feed de actividad.
const (
	ActivityKindSale    = "sale"
	ActivityKindProduct = "product_created"
)

// ActivityDTO un evento del feed cronológico. El feed mezcla líneas de venta
// y creaciones de producto, ordenado por Timestamp descendente.
type ActivityDTO struct {
	Kind          string          `json:"kind"` // sale | product_created
	ProductName   string          `json:"product_name"`
	StoreName     string          `json:"store_name"`
	Quantity      decimal.Decimal `json:"quantity"`
	NetTotal      decimal.Decimal `json:"net_total,omitempty"`
	NetProfit     decimal.Decimal `json:"net_profit,omitempty"`
	Seller        string          `json:"seller,omitempty"`
	PaymentMethod string          `json:"payment_method,omitempty"`
	OrderType     string          `json:"order_type,omitempty"` // Venta | Devolución | Donación
	CouponCode    string          `json:"coupon_code,omitempty"`
	Timestamp     string          `json:"timestamp"`     // RFC3339, para ordenar en el cliente
	RelativeTime  string          `json:"relative_time"` // "hace 5 minutos", "hace 3 horas", "02/01/2026"
}

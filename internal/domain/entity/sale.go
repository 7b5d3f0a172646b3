package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una venta. Solo el estado transiciona después del checkout;
// la cabecera y las líneas son inmutables.
const (
	SaleStatusCompleted = "COMPLETED"
	SaleStatusCanceled  = "CANCELED"
	SaleStatusReturned  = "RETURNED"
	SaleStatusDonated   = "DONATED"
)

// Sale es la cabecera de una venta. Total se guarda neto (subtotal bruto
// menos Discount); Discount conserva el monto absoluto aplicado para que
// la asignación proporcional pueda reconstruir las líneas brutas.
type Sale struct {
	ID            string
	StoreID       string
	Date          time.Time
	Total         decimal.Decimal
	Discount      decimal.Decimal
	CouponCode    string
	PaymentMethod string
	Status        string
	UserID        string
	CustomerName  string
	Items         []*SaleItem
}

// SaleItem es una línea de venta. Price es el precio unitario capturado al
// momento de la venta e inmutable después, aunque el producto cambie.
type SaleItem struct {
	ID        string
	SaleID    string
	ProductID string
	Quantity  decimal.Decimal
	Price     decimal.Decimal
}

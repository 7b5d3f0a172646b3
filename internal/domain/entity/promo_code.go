package entity

import "github.com/shopspring/decimal"

// Tipos de descuento de un cupón promocional.
const (
	DiscountTypePercent = "percent"
	DiscountTypeFixed   = "fixed"
)

// PromoCode es el cupón promocional. Su administración (CRUD) es de otro
// módulo; aquí solo se consume su efecto de lectura: resolver el monto
// absoluto de descuento de una venta.
type PromoCode struct {
	Code          string
	DiscountType  string // percent | fixed
	DiscountValue decimal.Decimal
	Active        bool
}

// Resolve convierte el cupón en un descuento absoluto sobre el subtotal
// dado, acotado a [0, subtotal].
func (p *PromoCode) Resolve(subtotal decimal.Decimal) decimal.Decimal {
	var d decimal.Decimal
	switch p.DiscountType {
	case DiscountTypePercent:
		d = subtotal.Mul(p.DiscountValue).Div(decimal.NewFromInt(100))
	case DiscountTypeFixed:
		d = p.DiscountValue
	default:
		return decimal.Zero
	}
	if d.LessThan(decimal.Zero) {
		return decimal.Zero
	}
	if d.GreaterThan(subtotal) {
		return subtotal
	}
	return d
}

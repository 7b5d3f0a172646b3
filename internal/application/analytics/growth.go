package analytics

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// Growth aplica la regla uniforme de crecimiento entre un período y el
// inmediatamente anterior:
//
//	ambos en 0            → 0
//	anterior 0, actual >0 → 100
//	resto                 → (actual − anterior) / anterior × 100
//
// Se usa igual para valor comprado, entradas e ingresos.
func Growth(current, previous decimal.Decimal) decimal.Decimal {
	if previous.IsZero() {
		if current.IsZero() {
			return decimal.Zero
		}
		return hundred
	}
	return current.Sub(previous).Div(previous).Mul(hundred).Round(2)
}

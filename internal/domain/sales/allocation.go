package sales

import "github.com/shopspring/decimal"

// Line es la entrada del reparto: una línea de venta con su costo unitario.
type Line struct {
	Quantity      decimal.Decimal
	UnitPrice     decimal.Decimal
	ProviderPrice decimal.Decimal // costo unitario; cero si el proveedor no lo reporta
}

// AllocatedLine es el resultado por línea del reparto proporcional.
type AllocatedLine struct {
	Gross     decimal.Decimal // UnitPrice * Quantity
	Discount  decimal.Decimal // porción del descuento de la venta asignada a la línea
	Net       decimal.Decimal // Gross - Discount
	NetProfit decimal.Decimal // Net - Quantity * ProviderPrice
}

// AllocateDiscount reparte el descuento D de una venta entre sus líneas en
// proporción al bruto de cada una (servicio de dominio, puro):
//
//	proporción = brutoLinea / subtotal   (0 si subtotal es 0)
//	descLinea  = D * proporción
//	neto       = brutoLinea - descLinea
//	utilidad   = neto - cantidad * costoProveedor
//
// Se recalcula en cada consulta; nunca se persiste una columna "neto".
func AllocateDiscount(discount decimal.Decimal, lines []Line) []AllocatedLine {
	subtotal := decimal.Zero
	for _, l := range lines {
		subtotal = subtotal.Add(l.UnitPrice.Mul(l.Quantity))
	}

	out := make([]AllocatedLine, len(lines))
	for i, l := range lines {
		gross := l.UnitPrice.Mul(l.Quantity)
		var lineDiscount decimal.Decimal
		if subtotal.GreaterThan(decimal.Zero) {
			lineDiscount = discount.Mul(gross).Div(subtotal)
		}
		net := gross.Sub(lineDiscount)
		out[i] = AllocatedLine{
			Gross:     gross,
			Discount:  lineDiscount,
			Net:       net,
			NetProfit: net.Sub(l.Quantity.Mul(l.ProviderPrice)),
		}
	}
	return out
}

// AllocateLine reparte el descuento de la venta a UNA línea cuando el
// subtotal de la venta ya se conoce (p. ej. viene calculado por la
// consulta). Misma fórmula que AllocateDiscount.
func AllocateLine(discount, saleSubtotal decimal.Decimal, line Line) AllocatedLine {
	gross := line.UnitPrice.Mul(line.Quantity)
	var lineDiscount decimal.Decimal
	if saleSubtotal.GreaterThan(decimal.Zero) {
		lineDiscount = discount.Mul(gross).Div(saleSubtotal)
	}
	net := gross.Sub(lineDiscount)
	return AllocatedLine{
		Gross:     gross,
		Discount:  lineDiscount,
		Net:       net,
		NetProfit: net.Sub(line.Quantity.Mul(line.ProviderPrice)),
	}
}

// Subtotal devuelve la suma de brutos de las líneas.
func Subtotal(lines []Line) decimal.Decimal {
	s := decimal.Zero
	for _, l := range lines {
		s = s.Add(l.UnitPrice.Mul(l.Quantity))
	}
	return s
}

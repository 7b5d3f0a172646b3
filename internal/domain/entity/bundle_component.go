package entity

import "github.com/shopspring/decimal"

// BundleComponent asocia un producto compuesto con uno de sus componentes.
// Quantity es la cantidad de componente que consume UNA unidad del bundle.
// La relación es declarativa: ni el armado ni la venta del bundle tocan el
// stock de los componentes (el bundle tiene stock propio).
type BundleComponent struct {
	BundleProductID    string
	ComponentProductID string
	Quantity           decimal.Decimal
}

package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// CategoryFinishedGood marca los productos compuestos (bundles) creados por
// la operación de armado; los demás productos llevan la categoría libre
// que defina la tienda.
const CategoryFinishedGood = "PRODUCTO_TERMINADO"

// Product representa un producto con alcance de tienda. El campo Code
// correlaciona "el mismo" producto lógico entre tiendas distintas: la
// combinación (StoreID, Code) es única y es la llave que usa el traslado
// para resolver o crear la fila destino.
//
// Stock vive en la fila del producto y solo cambia vía movimientos
// (ajuste manual, venta o traslado); nunca se escribe directo.
type Product struct {
	ID            string
	StoreID       string
	Name          string
	Code          string
	Price         decimal.Decimal  // precio de venta
	ProviderPrice *decimal.Decimal // costo unitario; nil se trata como 0
	Stock         decimal.Decimal  // cantidad a la mano en ESTA tienda, nunca negativa
	IsBundle      bool
	Category      string
	Unit          string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Cost devuelve el costo unitario del proveedor, tratando nil como cero.
func (p *Product) Cost() decimal.Decimal {
	if p.ProviderPrice == nil {
		return decimal.Zero
	}
	return *p.ProviderPrice
}

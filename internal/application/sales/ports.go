package sales

import (
	"context"

	"github.com/jhoicas/tiendas-api/internal/domain/repository"
)

// SalesTxRunner transacción del checkout: descuentos de stock, asientos del
// libro y persistencia de la venta con sus líneas se confirman o revierten
// como unidad.
type SalesTxRunner interface {
	RunSale(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		movementRepo repository.StockMovementRepository,
		saleRepo repository.SaleRepository,
	) error) error
}

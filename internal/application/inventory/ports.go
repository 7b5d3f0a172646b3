package inventory

import (
	"context"

	"github.com/jhoicas/tiendas-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que actualización de stock y
// asiento del libro se confirmen o reviertan juntos: un movimiento jamás
// queda escrito sin su cambio de stock, ni al revés.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		movementRepo repository.StockMovementRepository,
	) error) error
}

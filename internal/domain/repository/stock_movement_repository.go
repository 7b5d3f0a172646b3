package repository

import (
	"time"

	"github.com/jhoicas/tiendas-api/internal/domain/entity"
)

// StockMovementRepository es el puerto del libro de inventario. Solo expone
// inserción y lectura: los asientos nunca se actualizan ni se borran.
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	ListByProduct(productID string, from, to *time.Time, limit, offset int) ([]*entity.StockMovement, error)
}

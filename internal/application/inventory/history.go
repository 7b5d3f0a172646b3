package inventory

import (
	"time"

	"github.com/jhoicas/tiendas-api/internal/application/dto"
	"github.com/jhoicas/tiendas-api/internal/domain"
	"github.com/jhoicas/tiendas-api/internal/domain/repository"
)

// MovementHistoryUseCase consulta de solo lectura del libro de movimientos
// de un producto, más recientes primero. No toca stock.
type MovementHistoryUseCase struct {
	productRepo  repository.ProductRepository
	movementRepo repository.StockMovementRepository
}

// NewMovementHistoryUseCase construye el caso de uso.
func NewMovementHistoryUseCase(
	productRepo repository.ProductRepository,
	movementRepo repository.StockMovementRepository,
) *MovementHistoryUseCase {
	return &MovementHistoryUseCase{productRepo: productRepo, movementRepo: movementRepo}
}

// ListByProduct lista los asientos del producto, con rango de fechas
// opcional y paginación.
func (uc *MovementHistoryUseCase) ListByProduct(productID string, from, to *time.Time, limit, offset int) ([]dto.MovementResponse, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	list, err := uc.movementRepo.ListByProduct(productID, from, to, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		out = append(out, dto.MovementResponse{
			ID:        m.ID,
			ProductID: m.ProductID,
			Type:      m.Type,
			Quantity:  m.Quantity,
			Date:      m.Date.Format(time.RFC3339),
			Details:   m.Details,
		})
	}
	return out, nil
}

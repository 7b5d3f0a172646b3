package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/tiendas-api/internal/domain"
	"github.com/jhoicas/tiendas-api/internal/domain/entity"
	"github.com/jhoicas/tiendas-api/internal/domain/repository"
)

// AdjustStockUseCase aplica ajustes manuales de stock (ENTRY/EXIT) de forma
// transaccional: bloqueo de fila (SELECT FOR UPDATE), actualización del
// stock y asiento en el libro en una sola transacción.
type AdjustStockUseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
}

// NewAdjustStockUseCase construye el caso de uso.
func NewAdjustStockUseCase(txRunner TxRunner, productRepo repository.ProductRepository) *AdjustStockUseCase {
	return &AdjustStockUseCase{txRunner: txRunner, productRepo: productRepo}
}

// AdjustInput entrada para un ajuste de stock.
type AdjustInput struct {
	ProductID string
	Type      string // ENTRY o EXIT
	Quantity  decimal.Decimal
	Details   string
	UserID    string
}

// Adjust valida y aplica el ajuste. Un EXIT que exceda el stock disponible
// falla con InsufficientStockError y no deja asiento en el libro.
func (uc *AdjustStockUseCase) Adjust(ctx context.Context, input AdjustInput) error {
	if !entity.IsValidMovementType(input.Type) {
		return domain.ErrInvalidInput
	}
	if !input.Quantity.GreaterThan(decimal.Zero) {
		return domain.ErrInvalidInput
	}

	// Pre-chequeo de existencia fuera de la tx (solo lectura)
	product, err := uc.productRepo.GetByID(input.ProductID)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}

	now := time.Now()

	return uc.txRunner.Run(ctx, func(
		products repository.ProductRepository,
		movements repository.StockMovementRepository,
	) error {
		// Bloquea la fila del producto para evitar que dos salidas
		// concurrentes lean el mismo stock y lo dejen negativo
		p, err := products.GetForUpdate(input.ProductID)
		if err != nil {
			return err
		}
		if p == nil {
			return domain.ErrNotFound
		}

		var newStock decimal.Decimal
		switch input.Type {
		case entity.MovementTypeEntry:
			newStock = p.Stock.Add(input.Quantity)
		case entity.MovementTypeExit:
			if input.Quantity.GreaterThan(p.Stock) {
				return domain.NewInsufficientStock(p.Stock, input.Quantity)
			}
			newStock = p.Stock.Sub(input.Quantity)
		}

		if err := products.UpdateStock(p.ID, newStock); err != nil {
			return err
		}
		return movements.Create(&entity.StockMovement{
			ID:        uuid.New().String(),
			ProductID: p.ID,
			Type:      input.Type,
			Quantity:  input.Quantity,
			Date:      now,
			Details:   input.Details,
			CreatedBy: input.UserID,
		})
	})
}

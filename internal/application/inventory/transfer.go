package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/tiendas-api/internal/domain"
	"github.com/jhoicas/tiendas-api/internal/domain/entity"
	"github.com/jhoicas/tiendas-api/internal/domain/repository"
)

// TransferStockUseCase mueve cantidad de un producto lógico (mismo code)
// entre dos tiendas como una sola operación que conserva el stock total:
// decrementa origen, incrementa destino y escribe los dos asientos del
// libro en una única transacción. Nunca son dos ajustes independientes; un
// fallo intermedio revierte todo.
type TransferStockUseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
	storeRepo   repository.StoreRepository
}

// NewTransferStockUseCase construye el caso de uso.
func NewTransferStockUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	storeRepo repository.StoreRepository,
) *TransferStockUseCase {
	return &TransferStockUseCase{txRunner: txRunner, productRepo: productRepo, storeRepo: storeRepo}
}

// TransferInput entrada para un traslado entre tiendas.
type TransferInput struct {
	ProductID     string
	TargetStoreID string
	Quantity      decimal.Decimal
	Reason        string
	UserID        string
}

// Transfer resuelve (o crea) la fila destino por (code, tienda destino) y
// ejecuta el traslado. Las dos filas se bloquean en orden ascendente de id
// para que traslados concurrentes en direcciones opuestas no se bloqueen
// mutuamente.
func (uc *TransferStockUseCase) Transfer(ctx context.Context, input TransferInput) error {
	if !input.Quantity.GreaterThan(decimal.Zero) {
		return domain.ErrInvalidInput
	}

	source, err := uc.productRepo.GetByID(input.ProductID)
	if err != nil {
		return err
	}
	if source == nil {
		return domain.ErrNotFound
	}
	if source.StoreID == input.TargetStoreID {
		return domain.ErrInvalidTarget
	}

	targetStore, err := uc.storeRepo.GetByID(input.TargetStoreID)
	if err != nil {
		return err
	}
	if targetStore == nil {
		return domain.ErrNotFound
	}
	sourceStore, err := uc.storeRepo.GetByID(source.StoreID)
	if err != nil {
		return err
	}
	if sourceStore == nil {
		return domain.ErrNotFound
	}

	now := time.Now()

	return uc.txRunner.Run(ctx, func(
		products repository.ProductRepository,
		movements repository.StockMovementRepository,
	) error {
		existing, err := products.GetByStoreAndCode(input.TargetStoreID, source.Code)
		if err != nil {
			return err
		}

		var src, dst *entity.Product
		if existing == nil {
			// La fila destino no existe: se crea dentro de la tx (nadie más
			// puede verla) y solo hay que bloquear el origen.
			src, err = products.GetForUpdate(source.ID)
			if err != nil {
				return err
			}
			if src == nil {
				return domain.ErrNotFound
			}
			dst = &entity.Product{
				ID:            uuid.New().String(),
				StoreID:       input.TargetStoreID,
				Name:          src.Name,
				Code:          src.Code,
				Price:         src.Price,
				ProviderPrice: src.ProviderPrice,
				Stock:         decimal.Zero,
				Category:      src.Category,
				Unit:          src.Unit,
				CreatedAt:     now,
				UpdatedAt:     now,
			}
			if err := products.Create(dst); err != nil {
				return err
			}
		} else {
			// Ambas filas existen: bloquear en orden ascendente de id para
			// evitar deadlock con traslados concurrentes en sentido inverso.
			firstID, secondID := source.ID, existing.ID
			if secondID < firstID {
				firstID, secondID = secondID, firstID
			}
			first, err := products.GetForUpdate(firstID)
			if err != nil {
				return err
			}
			second, err := products.GetForUpdate(secondID)
			if err != nil {
				return err
			}
			if first == nil || second == nil {
				return domain.ErrNotFound
			}
			if first.ID == source.ID {
				src, dst = first, second
			} else {
				src, dst = second, first
			}
		}

		if input.Quantity.GreaterThan(src.Stock) {
			return domain.NewInsufficientStock(src.Stock, input.Quantity)
		}

		if err := products.UpdateStock(src.ID, src.Stock.Sub(input.Quantity)); err != nil {
			return err
		}
		if err := products.UpdateStock(dst.ID, dst.Stock.Add(input.Quantity)); err != nil {
			return err
		}

		// Dos asientos: salida en origen y entrada en destino, con la tienda
		// contraparte y el motivo en los detalles.
		exit := &entity.StockMovement{
			ID:        uuid.New().String(),
			ProductID: src.ID,
			Type:      entity.MovementTypeExit,
			Quantity:  input.Quantity,
			Date:      now,
			Details:   transferDetails("Traslado hacia", targetStore.Name, input.Reason),
			CreatedBy: input.UserID,
		}
		if err := movements.Create(exit); err != nil {
			return err
		}
		entry := &entity.StockMovement{
			ID:        uuid.New().String(),
			ProductID: dst.ID,
			Type:      entity.MovementTypeEntry,
			Quantity:  input.Quantity,
			Date:      now,
			Details:   transferDetails("Traslado desde", sourceStore.Name, input.Reason),
			CreatedBy: input.UserID,
		}
		return movements.Create(entry)
	})
}

func transferDetails(prefix, storeName, reason string) string {
	if reason == "" {
		return fmt.Sprintf("%s %s", prefix, storeName)
	}
	return fmt.Sprintf("%s %s: %s", prefix, storeName, reason)
}

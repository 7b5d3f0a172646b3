package sales

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/tiendas-api/internal/domain"
	"github.com/jhoicas/tiendas-api/internal/domain/entity"
	"github.com/jhoicas/tiendas-api/internal/domain/repository"
)

// CreateSaleUseCase ejecuta el checkout: valida stock línea por línea,
// descuenta el inventario con su asiento EXIT en el libro y guarda cabecera
// y líneas de la venta, todo en una sola transacción. El cupón se consume
// solo como lectura para resolver el monto de descuento.
type CreateSaleUseCase struct {
	txRunner    SalesTxRunner
	productRepo repository.ProductRepository
	storeRepo   repository.StoreRepository
	promoRepo   repository.PromoCodeRepository
}

// NewCreateSaleUseCase construye el caso de uso.
func NewCreateSaleUseCase(
	txRunner SalesTxRunner,
	productRepo repository.ProductRepository,
	storeRepo repository.StoreRepository,
	promoRepo repository.PromoCodeRepository,
) *CreateSaleUseCase {
	return &CreateSaleUseCase{
		txRunner:    txRunner,
		productRepo: productRepo,
		storeRepo:   storeRepo,
		promoRepo:   promoRepo,
	}
}

// SaleItemInput una línea del checkout.
type SaleItemInput struct {
	ProductID string
	Quantity  decimal.Decimal
}

// CreateSaleInput entrada del checkout.
type CreateSaleInput struct {
	StoreID       string
	UserID        string
	CustomerName  string
	PaymentMethod string
	CouponCode    string
	Items         []SaleItemInput
}

// Create valida y persiste la venta. El precio unitario de cada línea se
// captura del producto al momento de la venta y queda inmutable. Total se
// guarda neto: subtotal bruto menos el descuento del cupón.
func (uc *CreateSaleUseCase) Create(ctx context.Context, input CreateSaleInput) (*entity.Sale, error) {
	if input.StoreID == "" || input.PaymentMethod == "" || len(input.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	seen := make(map[string]bool, len(input.Items))
	for _, item := range input.Items {
		if item.ProductID == "" || !item.Quantity.GreaterThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		if seen[item.ProductID] {
			return nil, domain.ErrInvalidInput
		}
		seen[item.ProductID] = true
	}

	store, err := uc.storeRepo.GetByID(input.StoreID)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, domain.ErrNotFound
	}

	// Pre-chequeo de productos fuera de la tx (solo lectura)
	for _, item := range input.Items {
		product, err := uc.productRepo.GetByID(item.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil || product.StoreID != input.StoreID {
			return nil, domain.ErrNotFound
		}
	}

	// Cupón: colaborador de solo lectura; resuelve el monto absoluto
	var promo *entity.PromoCode
	if input.CouponCode != "" {
		promo, err = uc.promoRepo.GetByCode(input.CouponCode)
		if err != nil {
			return nil, err
		}
		if promo == nil || !promo.Active {
			return nil, domain.ErrNotFound
		}
	}

	// Bloquear los productos en orden ascendente de id, el mismo orden que
	// usa el traslado, para no generar deadlocks entre ventas concurrentes
	items := append([]SaleItemInput(nil), input.Items...)
	sort.Slice(items, func(i, j int) bool { return items[i].ProductID < items[j].ProductID })

	now := time.Now()
	saleID := uuid.New().String()
	var sale *entity.Sale

	err = uc.txRunner.RunSale(ctx, func(
		products repository.ProductRepository,
		movements repository.StockMovementRepository,
		salesRepo repository.SaleRepository,
	) error {
		subtotal := decimal.Zero
		saleItems := make([]*entity.SaleItem, 0, len(items))

		for _, item := range items {
			p, err := products.GetForUpdate(item.ProductID)
			if err != nil {
				return err
			}
			if p == nil {
				return domain.ErrNotFound
			}
			if item.Quantity.GreaterThan(p.Stock) {
				return domain.NewInsufficientStock(p.Stock, item.Quantity)
			}
			if err := products.UpdateStock(p.ID, p.Stock.Sub(item.Quantity)); err != nil {
				return err
			}
			if err := movements.Create(&entity.StockMovement{
				ID:        uuid.New().String(),
				ProductID: p.ID,
				Type:      entity.MovementTypeExit,
				Quantity:  item.Quantity,
				Date:      now,
				Details:   fmt.Sprintf("Venta %s", saleID),
				CreatedBy: input.UserID,
			}); err != nil {
				return err
			}

			subtotal = subtotal.Add(p.Price.Mul(item.Quantity))
			saleItems = append(saleItems, &entity.SaleItem{
				ID:        uuid.New().String(),
				SaleID:    saleID,
				ProductID: p.ID,
				Quantity:  item.Quantity,
				Price:     p.Price,
			})
		}

		discount := decimal.Zero
		if promo != nil {
			discount = promo.Resolve(subtotal)
		}

		sale = &entity.Sale{
			ID:            saleID,
			StoreID:       input.StoreID,
			Date:          now,
			Total:         subtotal.Sub(discount),
			Discount:      discount,
			CouponCode:    input.CouponCode,
			PaymentMethod: input.PaymentMethod,
			Status:        entity.SaleStatusCompleted,
			UserID:        input.UserID,
			CustomerName:  input.CustomerName,
			Items:         saleItems,
		}
		if err := salesRepo.Create(sale); err != nil {
			return err
		}
		for _, si := range saleItems {
			if err := salesRepo.CreateItem(si); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return sale, nil
}

package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/tiendas-api/internal/domain"
	"github.com/jhoicas/tiendas-api/internal/domain/entity"
	"github.com/jhoicas/tiendas-api/internal/domain/repository"
)

const bundleCodePrefix = "BUN-"

// CatalogTxRunner transacción para operaciones de catálogo: producto del
// bundle y sus componentes se crean como unidad.
type CatalogTxRunner interface {
	RunCatalog(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		bundleRepo repository.BundleRepository,
	) error) error
}

// BundleUseCase crea productos compuestos. Es una operación de modelado, no
// de stock: el bundle nace con stock 0 y el stock de los componentes no se
// toca ni aquí ni al venderlo (el bundle mueve solo su propio stock).
type BundleUseCase struct {
	txRunner    CatalogTxRunner
	productRepo repository.ProductRepository
	bundleRepo  repository.BundleRepository
	storeRepo   repository.StoreRepository
}

// NewBundleUseCase construye el caso de uso. bundleRepo se usa para las
// lecturas fuera de transacción.
func NewBundleUseCase(
	txRunner CatalogTxRunner,
	productRepo repository.ProductRepository,
	bundleRepo repository.BundleRepository,
	storeRepo repository.StoreRepository,
) *BundleUseCase {
	return &BundleUseCase{txRunner: txRunner, productRepo: productRepo, bundleRepo: bundleRepo, storeRepo: storeRepo}
}

// BundleComponentInput un componente con su cantidad por unidad de bundle.
type BundleComponentInput struct {
	ProductID string
	Quantity  decimal.Decimal
}

// CreateBundleInput entrada para crear un bundle.
type CreateBundleInput struct {
	Name       string
	FinalPrice decimal.Decimal
	StoreID    string
	Components []BundleComponentInput
}

// BundleCode genera el código determinístico del bundle a partir del
// nombre: mayúsculas, espacios a guiones y prefijo fijo.
func BundleCode(name string) string {
	code := strings.ToUpper(strings.TrimSpace(name))
	code = strings.Join(strings.Fields(code), "-")
	return bundleCodePrefix + code
}

// CreateBundle valida los componentes y crea el producto compuesto con sus
// filas de componente en una sola transacción.
func (uc *BundleUseCase) CreateBundle(ctx context.Context, input CreateBundleInput) (*entity.Product, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" || len(input.Components) == 0 {
		return nil, domain.ErrInvalidInput
	}
	if input.FinalPrice.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	store, err := uc.storeRepo.GetByID(input.StoreID)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, domain.ErrNotFound
	}

	// Cada componente debe existir en la misma tienda, con cantidad positiva
	for _, c := range input.Components {
		if !c.Quantity.GreaterThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		component, err := uc.productRepo.GetByID(c.ProductID)
		if err != nil {
			return nil, err
		}
		if component == nil || component.StoreID != input.StoreID {
			return nil, domain.ErrNotFound
		}
	}

	code := BundleCode(name)
	if existing, err := uc.productRepo.GetByStoreAndCode(input.StoreID, code); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, domain.ErrDuplicate
	}

	now := time.Now()
	bundle := &entity.Product{
		ID:        uuid.New().String(),
		StoreID:   input.StoreID,
		Name:      name,
		Code:      code,
		Price:     input.FinalPrice,
		Stock:     decimal.Zero,
		IsBundle:  true,
		Category:  entity.CategoryFinishedGood,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = uc.txRunner.RunCatalog(ctx, func(
		products repository.ProductRepository,
		bundles repository.BundleRepository,
	) error {
		if err := products.Create(bundle); err != nil {
			return err
		}
		for _, c := range input.Components {
			component := &entity.BundleComponent{
				BundleProductID:    bundle.ID,
				ComponentProductID: c.ProductID,
				Quantity:           c.Quantity,
			}
			if err := bundles.CreateComponent(component); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return bundle, nil
}

// Components lista la composición declarada de un bundle existente.
func (uc *BundleUseCase) Components(bundleProductID string) ([]*entity.BundleComponent, error) {
	product, err := uc.productRepo.GetByID(bundleProductID)
	if err != nil {
		return nil, err
	}
	if product == nil || !product.IsBundle {
		return nil, domain.ErrNotFound
	}
	return uc.bundleRepo.ListComponents(bundleProductID)
}

package usecase

import (
	"github.com/jhoicas/tiendas-api/internal/domain/entity"
	"github.com/jhoicas/tiendas-api/internal/domain/repository"
)

// ProductUseCase consultas de catálogo de productos.
type ProductUseCase struct {
	productRepo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(productRepo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{productRepo: productRepo}
}

// ListByStore lista los productos de una tienda con paginación.
func (uc *ProductUseCase) ListByStore(storeID string, limit, offset int) ([]*entity.Product, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return uc.productRepo.ListByStore(storeID, limit, offset)
}

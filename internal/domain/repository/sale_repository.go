package repository

import (
	"time"

	"github.com/jhoicas/tiendas-api/internal/domain/entity"
)

// SaleRepository persiste ventas y sus líneas. Cabecera y líneas se crean
// como unidad en el checkout y son inmutables después (salvo el estatus).
type SaleRepository interface {
	Create(sale *entity.Sale) error
	CreateItem(item *entity.SaleItem) error
	GetByID(id string) (*entity.Sale, error)
	ListByStore(storeID string, from, to *time.Time, limit, offset int) ([]*entity.Sale, error)
}

// PromoCodeRepository consulta cupones promocionales (solo lectura; el CRUD
// de cupones vive en otro módulo).
type PromoCodeRepository interface {
	GetByCode(code string) (*entity.PromoCode, error)
}

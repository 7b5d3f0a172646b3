package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/tiendas-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para productos (DIP).
// El stock de la fila solo se escribe vía UpdateStock, siempre dentro de la
// transacción que además registra el movimiento correspondiente.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	// GetForUpdate obtiene el producto bloqueando la fila (SELECT FOR UPDATE).
	// Devuelve nil si no existe.
	GetForUpdate(id string) (*entity.Product, error)
	// GetByStoreAndCode resuelve "el mismo" producto lógico en otra tienda
	// por la llave (store_id, code). Devuelve nil si no existe.
	GetByStoreAndCode(storeID, code string) (*entity.Product, error)
	UpdateStock(id string, stock decimal.Decimal) error
	ListByStore(storeID string, limit, offset int) ([]*entity.Product, error)
}

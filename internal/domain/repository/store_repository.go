package repository

import "github.com/jhoicas/tiendas-api/internal/domain/entity"

// StoreRepository define el puerto de lectura de tiendas. El CRUD de tiendas
// es de otro módulo; aquí solo se consultan.
type StoreRepository interface {
	GetByID(id string) (*entity.Store, error)
	List() ([]*entity.Store, error)
}

package usecase

import (
	"github.com/jhoicas/tiendas-api/internal/domain/entity"
	"github.com/jhoicas/tiendas-api/internal/domain/repository"
)

// StoreUseCase consultas de tiendas (el CRUD de tiendas es de otro módulo).
type StoreUseCase struct {
	storeRepo repository.StoreRepository
}

// NewStoreUseCase construye el caso de uso.
func NewStoreUseCase(storeRepo repository.StoreRepository) *StoreUseCase {
	return &StoreUseCase{storeRepo: storeRepo}
}

// List devuelve todas las tiendas.
func (uc *StoreUseCase) List() ([]*entity.Store, error) {
	return uc.storeRepo.List()
}

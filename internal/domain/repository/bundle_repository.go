package repository

import "github.com/jhoicas/tiendas-api/internal/domain/entity"

// BundleRepository persiste la relación declarativa bundle → componentes.
type BundleRepository interface {
	CreateComponent(component *entity.BundleComponent) error
	ListComponents(bundleProductID string) ([]*entity.BundleComponent, error)
}

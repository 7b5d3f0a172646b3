package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/tiendas-api/internal/domain"
	"github.com/jhoicas/tiendas-api/internal/domain/entity"
	"github.com/jhoicas/tiendas-api/internal/domain/repository"
)

var _ repository.BundleRepository = (*BundleRepo)(nil)

// BundleRepo adaptador PostgreSQL de la relación bundle → componentes.
type BundleRepo struct {
	q Querier
}

// NewBundleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBundleRepository(q Querier) *BundleRepo {
	return &BundleRepo{q: q}
}

// CreateComponent inserta una fila componente de un bundle.
func (r *BundleRepo) CreateComponent(component *entity.BundleComponent) error {
	query := `
		INSERT INTO bundle_components (bundle_product_id, component_product_id, quantity)
		VALUES ($1, $2, $3)`
	_, err := r.q.Exec(context.Background(), query,
		component.BundleProductID, component.ComponentProductID, component.Quantity,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert bundle component: %w", err)
	}
	return nil
}

// ListComponents lista los componentes de un bundle.
func (r *BundleRepo) ListComponents(bundleProductID string) ([]*entity.BundleComponent, error) {
	query := `
		SELECT bundle_product_id, component_product_id, quantity
		FROM bundle_components WHERE bundle_product_id = $1`
	rows, err := r.q.Query(context.Background(), query, bundleProductID)
	if err != nil {
		return nil, fmt.Errorf("list bundle components: %w", err)
	}
	defer rows.Close()
	var list []*entity.BundleComponent
	for rows.Next() {
		var c entity.BundleComponent
		if err := rows.Scan(&c.BundleProductID, &c.ComponentProductID, &c.Quantity); err != nil {
			return nil, fmt.Errorf("scan bundle component: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

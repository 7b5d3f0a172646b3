package inventory_test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/tiendas-api/internal/domain/entity"
	"github.com/jhoicas/tiendas-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles en memoria de los puertos de persistencia. Guardan valores y
// devuelven copias, igual que haría la DB; el runner falso simula el
// rollback restaurando un snapshot cuando el callback falla.
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	byID map[string]entity.Product
}

func newFakeProductRepo(products ...entity.Product) *fakeProductRepo {
	r := &fakeProductRepo{byID: map[string]entity.Product{}}
	for _, p := range products {
		r.byID[p.ID] = p
	}
	return r
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	r.byID[p.ID] = *p
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := p
	return &cp, nil
}

func (r *fakeProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.GetByID(id)
}

func (r *fakeProductRepo) GetByStoreAndCode(storeID, code string) (*entity.Product, error) {
	for _, p := range r.byID {
		if p.StoreID == storeID && p.Code == code {
			cp := p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) UpdateStock(id string, stock decimal.Decimal) error {
	p := r.byID[id]
	p.Stock = stock
	r.byID[id] = p
	return nil
}

func (r *fakeProductRepo) ListByStore(storeID string, limit, offset int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.byID {
		if p.StoreID == storeID {
			cp := p
			out = append(out, &cp)
		}
	}
	return out, nil
}

type fakeMovementRepo struct {
	movements []entity.StockMovement
}

func (r *fakeMovementRepo) Create(m *entity.StockMovement) error {
	r.movements = append(r.movements, *m)
	return nil
}

func (r *fakeMovementRepo) ListByProduct(productID string, _, _ *time.Time, _, _ int) ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	for i := range r.movements {
		if r.movements[i].ProductID == productID {
			cp := r.movements[i]
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeMovementRepo) byProduct(productID string) []entity.StockMovement {
	var out []entity.StockMovement
	for _, m := range r.movements {
		if m.ProductID == productID {
			out = append(out, m)
		}
	}
	return out
}

type fakeStoreRepo struct {
	byID map[string]entity.Store
}

func newFakeStoreRepo(stores ...entity.Store) *fakeStoreRepo {
	r := &fakeStoreRepo{byID: map[string]entity.Store{}}
	for _, s := range stores {
		r.byID[s.ID] = s
	}
	return r
}

func (r *fakeStoreRepo) GetByID(id string) (*entity.Store, error) {
	s, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := s
	return &cp, nil
}

func (r *fakeStoreRepo) List() ([]*entity.Store, error) {
	var out []*entity.Store
	for _, s := range r.byID {
		cp := s
		out = append(out, &cp)
	}
	return out, nil
}

// fakeTxRunner entrega los repos compartidos al callback y restaura el
// estado previo si este falla (rollback simulado).
type fakeTxRunner struct {
	products  *fakeProductRepo
	movements *fakeMovementRepo
}

func (t *fakeTxRunner) Run(_ context.Context, fn func(
	productRepo repository.ProductRepository,
	movementRepo repository.StockMovementRepository,
) error) error {
	productsBefore := make(map[string]entity.Product, len(t.products.byID))
	for k, v := range t.products.byID {
		productsBefore[k] = v
	}
	movementsBefore := append([]entity.StockMovement(nil), t.movements.movements...)

	if err := fn(t.products, t.movements); err != nil {
		t.products.byID = productsBefore
		t.movements.movements = movementsBefore
		return err
	}
	return nil
}

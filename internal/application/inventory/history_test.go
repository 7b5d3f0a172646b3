package inventory_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tiendas-api/internal/application/inventory"
	"github.com/jhoicas/tiendas-api/internal/domain"
	"github.com/jhoicas/tiendas-api/internal/domain/entity"
)

func TestMovementHistory_ListaAsientosDelProducto(t *testing.T) {
	products := newFakeProductRepo(entity.Product{
		ID:      "p1",
		StoreID: "s1",
		Name:    "Café molido 500g",
		Code:    "A1",
		Stock:   qty("10"),
	})
	movements := &fakeMovementRepo{}
	when := time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)
	require.NoError(t, movements.Create(&entity.StockMovement{
		ID: "m1", ProductID: "p1", Type: entity.MovementTypeEntry,
		Quantity: qty("4"), Date: when, Details: "compra proveedor", CreatedBy: "u1",
	}))
	require.NoError(t, movements.Create(&entity.StockMovement{
		ID: "m2", ProductID: "p2", Type: entity.MovementTypeExit,
		Quantity: qty("1"), Date: when, CreatedBy: "u1",
	}))

	uc := inventory.NewMovementHistoryUseCase(products, movements)

	list, err := uc.ListByProduct("p1", nil, nil, 50, 0)
	require.NoError(t, err)
	require.Len(t, list, 1, "solo los asientos del producto consultado")

	m := list[0]
	assert.Equal(t, "m1", m.ID)
	assert.Equal(t, entity.MovementTypeEntry, m.Type)
	assert.True(t, m.Quantity.Equal(qty("4")))
	assert.Equal(t, when.Format(time.RFC3339), m.Date)
	assert.Equal(t, "compra proveedor", m.Details)
}

func TestMovementHistory_ProductoInexistente(t *testing.T) {
	uc := inventory.NewMovementHistoryUseCase(newFakeProductRepo(), &fakeMovementRepo{})

	_, err := uc.ListByProduct("nadie", nil, nil, 50, 0)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

package inventory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tiendas-api/internal/application/inventory"
	"github.com/jhoicas/tiendas-api/internal/domain"
	"github.com/jhoicas/tiendas-api/internal/domain/entity"
)

func qty(s string) decimal.Decimal {
	v, _ := decimal.NewFromString(s)
	return v
}

func newAdjustFixture(initialStock string) (*inventory.AdjustStockUseCase, *fakeProductRepo, *fakeMovementRepo) {
	products := newFakeProductRepo(entity.Product{
		ID:      "p1",
		StoreID: "s1",
		Name:    "Café molido 500g",
		Code:    "A1",
		Price:   qty("25"),
		Stock:   qty(initialStock),
	})
	movements := &fakeMovementRepo{}
	uc := inventory.NewAdjustStockUseCase(&fakeTxRunner{products: products, movements: movements}, products)
	return uc, products, movements
}

func TestAdjust_EntradaSumaStockYDejaAsiento(t *testing.T) {
	uc, products, movements := newAdjustFixture("10")

	err := uc.Adjust(context.Background(), inventory.AdjustInput{
		ProductID: "p1",
		Type:      entity.MovementTypeEntry,
		Quantity:  qty("4"),
		Details:   "compra proveedor",
		UserID:    "u1",
	})
	require.NoError(t, err)

	p, _ := products.GetByID("p1")
	assert.True(t, p.Stock.Equal(qty("14")), "stock esperado 14, quedó %s", p.Stock)

	require.Len(t, movements.movements, 1, "un ajuste exitoso escribe exactamente un asiento")
	m := movements.movements[0]
	assert.Equal(t, entity.MovementTypeEntry, m.Type)
	assert.True(t, m.Quantity.Equal(qty("4")))
	assert.Equal(t, "compra proveedor", m.Details)
}

func TestAdjust_SalidaRestaStock(t *testing.T) {
	uc, products, movements := newAdjustFixture("10")

	err := uc.Adjust(context.Background(), inventory.AdjustInput{
		ProductID: "p1",
		Type:      entity.MovementTypeExit,
		Quantity:  qty("10"),
		Details:   "merma",
	})
	require.NoError(t, err)

	p, _ := products.GetByID("p1")
	assert.True(t, p.Stock.IsZero(), "la salida puede dejar el stock exactamente en cero")
	require.Len(t, movements.movements, 1)
	assert.Equal(t, entity.MovementTypeExit, movements.movements[0].Type)
}

// Producto con stock 5 y salida de 8: debe fallar con stock insuficiente,
// el stock queda en 5 y el libro queda sin asientos nuevos.
func TestAdjust_SalidaInsuficienteNoDejaEfectos(t *testing.T) {
	uc, products, movements := newAdjustFixture("5")

	err := uc.Adjust(context.Background(), inventory.AdjustInput{
		ProductID: "p1",
		Type:      entity.MovementTypeExit,
		Quantity:  qty("8"),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInsufficientStock))

	var insufficientErr *domain.InsufficientStockError
	require.True(t, errors.As(err, &insufficientErr), "el error debe llevar la cantidad disponible")
	assert.True(t, insufficientErr.Available.Equal(qty("5")))

	p, _ := products.GetByID("p1")
	assert.True(t, p.Stock.Equal(qty("5")), "el stock no debe cambiar")
	assert.Empty(t, movements.movements, "una operación rechazada no escribe en el libro")
}

func TestAdjust_EntradasInvalidas(t *testing.T) {
	uc, _, _ := newAdjustFixture("5")
	ctx := context.Background()

	cases := []struct {
		name  string
		input inventory.AdjustInput
	}{
		{"tipo desconocido", inventory.AdjustInput{ProductID: "p1", Type: "TRANSFER", Quantity: qty("1")}},
		{"cantidad cero", inventory.AdjustInput{ProductID: "p1", Type: entity.MovementTypeEntry, Quantity: qty("0")}},
		{"cantidad negativa", inventory.AdjustInput{ProductID: "p1", Type: entity.MovementTypeExit, Quantity: qty("-3")}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := uc.Adjust(ctx, tc.input)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestAdjust_ProductoInexistente(t *testing.T) {
	uc, _, _ := newAdjustFixture("5")
	err := uc.Adjust(context.Background(), inventory.AdjustInput{
		ProductID: "no-existe",
		Type:      entity.MovementTypeEntry,
		Quantity:  qty("1"),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Tras cualquier secuencia de ajustes, la suma de entradas menos salidas
// del libro es igual al stock actual menos el inicial, y el stock nunca
// baja de cero.
func TestAdjust_LibroConsistenteConElStock(t *testing.T) {
	uc, products, movements := newAdjustFixture("20")
	ctx := context.Background()
	initial := qty("20")

	steps := []struct {
		typ string
		q   string
	}{
		{entity.MovementTypeExit, "7"},
		{entity.MovementTypeEntry, "3"},
		{entity.MovementTypeExit, "30"}, // rechazada, no debe contar
		{entity.MovementTypeExit, "16"},
		{entity.MovementTypeEntry, "1.5"},
	}
	for _, s := range steps {
		_ = uc.Adjust(ctx, inventory.AdjustInput{ProductID: "p1", Type: s.typ, Quantity: qty(s.q)})
		p, _ := products.GetByID("p1")
		assert.False(t, p.Stock.IsNegative(), "el stock nunca puede ser negativo")
	}

	ledger := decimal.Zero
	for _, m := range movements.byProduct("p1") {
		if m.Type == entity.MovementTypeEntry {
			ledger = ledger.Add(m.Quantity)
		} else {
			ledger = ledger.Sub(m.Quantity)
		}
	}
	p, _ := products.GetByID("p1")
	assert.True(t, ledger.Equal(p.Stock.Sub(initial)),
		"entradas-salidas (%s) debe igualar stock actual (%s) menos inicial (%s)", ledger, p.Stock, initial)
}

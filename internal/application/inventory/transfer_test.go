package inventory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tiendas-api/internal/application/inventory"
	"github.com/jhoicas/tiendas-api/internal/domain"
	"github.com/jhoicas/tiendas-api/internal/domain/entity"
)

func newTransferFixture(products ...entity.Product) (*inventory.TransferStockUseCase, *fakeProductRepo, *fakeMovementRepo) {
	productRepo := newFakeProductRepo(products...)
	movements := &fakeMovementRepo{}
	stores := newFakeStoreRepo(
		entity.Store{ID: "s1", Name: "Tienda Centro"},
		entity.Store{ID: "s2", Name: "Tienda Norte"},
	)
	uc := inventory.NewTransferStockUseCase(
		&fakeTxRunner{products: productRepo, movements: movements},
		productRepo,
		stores,
	)
	return uc, productRepo, movements
}

// El código "A1" existe solo en la tienda 1 con stock 20. Trasladar 5 a la
// tienda 2 debe dejar 15 en origen, crear la fila destino con stock 5 y
// escribir dos asientos (EXIT origen, ENTRY destino) de cantidad 5.
func TestTransfer_CreaLaFilaDestino(t *testing.T) {
	uc, products, movements := newTransferFixture(entity.Product{
		ID: "p1", StoreID: "s1", Name: "Azúcar 1kg", Code: "A1",
		Price: qty("8"), Stock: qty("20"), Category: "abarrotes", Unit: "und",
	})

	err := uc.Transfer(context.Background(), inventory.TransferInput{
		ProductID:     "p1",
		TargetStoreID: "s2",
		Quantity:      qty("5"),
		Reason:        "reposición sucursal",
		UserID:        "u1",
	})
	require.NoError(t, err)

	src, _ := products.GetByID("p1")
	assert.True(t, src.Stock.Equal(qty("15")))

	dst, _ := products.GetByStoreAndCode("s2", "A1")
	require.NotNil(t, dst, "debe crearse la fila del producto en la tienda destino")
	assert.True(t, dst.Stock.Equal(qty("5")))
	assert.Equal(t, "Azúcar 1kg", dst.Name)
	assert.Equal(t, "abarrotes", dst.Category)
	assert.True(t, dst.Price.Equal(qty("8")), "la fila nueva copia el precio del origen")

	require.Len(t, movements.movements, 2, "un traslado escribe exactamente dos asientos")
	exit := movements.byProduct("p1")
	entry := movements.byProduct(dst.ID)
	require.Len(t, exit, 1)
	require.Len(t, entry, 1)
	assert.Equal(t, entity.MovementTypeExit, exit[0].Type)
	assert.Equal(t, entity.MovementTypeEntry, entry[0].Type)
	assert.True(t, exit[0].Quantity.Equal(qty("5")))
	assert.True(t, entry[0].Quantity.Equal(qty("5")))
	assert.Contains(t, exit[0].Details, "Tienda Norte", "el asiento lleva la tienda contraparte")
	assert.Contains(t, entry[0].Details, "Tienda Centro")
	assert.Contains(t, exit[0].Details, "reposición sucursal")
}

// El traslado conserva el stock: la suma de las dos filas del mismo code no
// cambia.
func TestTransfer_ConservaElStockTotal(t *testing.T) {
	uc, products, _ := newTransferFixture(
		entity.Product{ID: "p1", StoreID: "s1", Code: "A1", Name: "Azúcar 1kg", Stock: qty("12")},
		entity.Product{ID: "p2", StoreID: "s2", Code: "A1", Name: "Azúcar 1kg", Stock: qty("3")},
	)

	err := uc.Transfer(context.Background(), inventory.TransferInput{
		ProductID: "p1", TargetStoreID: "s2", Quantity: qty("7"),
	})
	require.NoError(t, err)

	src, _ := products.GetByID("p1")
	dst, _ := products.GetByID("p2")
	assert.True(t, src.Stock.Equal(qty("5")))
	assert.True(t, dst.Stock.Equal(qty("10")))
	assert.True(t, src.Stock.Add(dst.Stock).Equal(qty("15")), "stockA+stockB debe mantenerse")
}

func TestTransfer_MismaTiendaEsInvalida(t *testing.T) {
	uc, _, _ := newTransferFixture(entity.Product{
		ID: "p1", StoreID: "s1", Code: "A1", Stock: qty("12"),
	})
	err := uc.Transfer(context.Background(), inventory.TransferInput{
		ProductID: "p1", TargetStoreID: "s1", Quantity: qty("2"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidTarget)
}

func TestTransfer_StockInsuficienteNoDejaEfectos(t *testing.T) {
	uc, products, movements := newTransferFixture(
		entity.Product{ID: "p1", StoreID: "s1", Code: "A1", Stock: qty("4")},
		entity.Product{ID: "p2", StoreID: "s2", Code: "A1", Stock: qty("1")},
	)

	err := uc.Transfer(context.Background(), inventory.TransferInput{
		ProductID: "p1", TargetStoreID: "s2", Quantity: qty("9"),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInsufficientStock))

	src, _ := products.GetByID("p1")
	dst, _ := products.GetByID("p2")
	assert.True(t, src.Stock.Equal(qty("4")))
	assert.True(t, dst.Stock.Equal(qty("1")))
	assert.Empty(t, movements.movements)
}

func TestTransfer_Invalidos(t *testing.T) {
	uc, _, _ := newTransferFixture(entity.Product{
		ID: "p1", StoreID: "s1", Code: "A1", Stock: qty("4"),
	})
	ctx := context.Background()

	err := uc.Transfer(ctx, inventory.TransferInput{ProductID: "p1", TargetStoreID: "s2", Quantity: qty("0")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	err = uc.Transfer(ctx, inventory.TransferInput{ProductID: "ghost", TargetStoreID: "s2", Quantity: qty("1")})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = uc.Transfer(ctx, inventory.TransferInput{ProductID: "p1", TargetStoreID: "s9", Quantity: qty("1")})
	assert.ErrorIs(t, err, domain.ErrNotFound, "tienda destino inexistente")
}

package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tiendas-api/internal/application/inventory"
	"github.com/jhoicas/tiendas-api/internal/domain/entity"
	"github.com/jhoicas/tiendas-api/internal/domain/repository"
	apphttp "github.com/jhoicas/tiendas-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles mínimos de persistencia para probar el mapeo de errores a HTTP.
// ──────────────────────────────────────────────────────────────────────────────

const (
	productCafe = "11111111-1111-4111-8111-111111111111"
	storeOrigen = "22222222-2222-4222-8222-222222222222"
)

type memProductRepo struct {
	byID map[string]entity.Product
}

func (r *memProductRepo) Create(p *entity.Product) error {
	r.byID[p.ID] = *p
	return nil
}

func (r *memProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := p
	return &cp, nil
}

func (r *memProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.GetByID(id)
}

func (r *memProductRepo) GetByStoreAndCode(storeID, code string) (*entity.Product, error) {
	for _, p := range r.byID {
		if p.StoreID == storeID && p.Code == code {
			cp := p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memProductRepo) UpdateStock(id string, stock decimal.Decimal) error {
	p := r.byID[id]
	p.Stock = stock
	r.byID[id] = p
	return nil
}

func (r *memProductRepo) ListByStore(string, int, int) ([]*entity.Product, error) {
	return nil, nil
}

type memMovementRepo struct {
	movements []entity.StockMovement
}

func (r *memMovementRepo) Create(m *entity.StockMovement) error {
	r.movements = append(r.movements, *m)
	return nil
}

func (r *memMovementRepo) ListByProduct(productID string, _, _ *time.Time, _, _ int) ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	for i := range r.movements {
		if r.movements[i].ProductID == productID {
			cp := r.movements[i]
			out = append(out, &cp)
		}
	}
	return out, nil
}

type memStoreRepo struct {
	stores map[string]entity.Store
}

func (r *memStoreRepo) GetByID(id string) (*entity.Store, error) {
	s, ok := r.stores[id]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (r *memStoreRepo) List() ([]*entity.Store, error) { return nil, nil }

type memTxRunner struct {
	products  *memProductRepo
	movements *memMovementRepo
}

func (tr *memTxRunner) Run(_ context.Context, fn func(
	repository.ProductRepository,
	repository.StockMovementRepository,
) error) error {
	return fn(tr.products, tr.movements)
}

// buildInventoryApp arma un Fiber mínimo con el handler real sobre los dobles.
func buildInventoryApp(t *testing.T) *fiber.App {
	t.Helper()
	products := &memProductRepo{byID: map[string]entity.Product{
		productCafe: {
			ID: productCafe, StoreID: storeOrigen, Name: "Café 500g", Code: "CAF-500",
			Price: decimal.NewFromInt(30), Stock: decimal.NewFromInt(5),
		},
	}}
	stores := &memStoreRepo{stores: map[string]entity.Store{
		storeOrigen: {ID: storeOrigen, Name: "Centro"},
	}}
	movements := &memMovementRepo{}
	tx := &memTxRunner{products: products, movements: movements}

	adjust := inventory.NewAdjustStockUseCase(tx, products)
	transfer := inventory.NewTransferStockUseCase(tx, products, stores)
	history := inventory.NewMovementHistoryUseCase(products, movements)

	app := fiber.New()
	handler := apphttp.NewInventoryHandler(adjust, transfer, history)
	inv := app.Group("/api/inventory", apphttp.AuthMiddleware(testJWTSecret))
	inv.Post("/:id/adjust", handler.AdjustStock)
	inv.Post("/transfer", handler.TransferStock)
	inv.Get("/:id/movements", handler.ListMovements)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body any) *http.Response {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", tokenForRole(t, "admin"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestAdjustStock_Entrada_Retorna200(t *testing.T) {
	app := buildInventoryApp(t)
	resp := postJSON(t, app, "/api/inventory/"+productCafe+"/adjust", fiber.Map{
		"quantity": "10", "type": "ENTRY", "details": "compra semanal",
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// Una salida mayor al stock responde 400 y el mensaje incluye la cantidad
// disponible.
func TestAdjustStock_StockInsuficiente_Retorna400ConDisponible(t *testing.T) {
	app := buildInventoryApp(t)
	resp := postJSON(t, app, "/api/inventory/"+productCafe+"/adjust", fiber.Map{
		"quantity": "8", "type": "EXIT",
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INSUFFICIENT_STOCK")
	assert.Contains(t, string(body), "disponible 5", "el mensaje debe traer la cantidad disponible")
}

func TestAdjustStock_ProductoInexistente_Retorna404(t *testing.T) {
	app := buildInventoryApp(t)
	resp := postJSON(t, app, "/api/inventory/99999999-9999-4999-8999-999999999999/adjust", fiber.Map{
		"quantity": "1", "type": "ENTRY",
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAdjustStock_TipoInvalido_Retorna400(t *testing.T) {
	app := buildInventoryApp(t)
	resp := postJSON(t, app, "/api/inventory/"+productCafe+"/adjust", fiber.Map{
		"quantity": "1", "type": "TRANSFER",
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// El historial devuelve el asiento que dejó un ajuste previo.
func TestListMovements_DevuelveAsientosDelProducto(t *testing.T) {
	app := buildInventoryApp(t)
	resp := postJSON(t, app, "/api/inventory/"+productCafe+"/adjust", fiber.Map{
		"quantity": "10", "type": "ENTRY", "details": "compra semanal",
	})
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	req := httptest.NewRequest(http.MethodGet, "/api/inventory/"+productCafe+"/movements", nil)
	req.Header.Set("Authorization", tokenForRole(t, "admin"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var movements []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&movements))
	require.Len(t, movements, 1)
	assert.Equal(t, "ENTRY", movements[0]["type"])
	assert.Equal(t, "compra semanal", movements[0]["details"])
}

func TestListMovements_ProductoInexistente_Retorna404(t *testing.T) {
	app := buildInventoryApp(t)
	req := httptest.NewRequest(http.MethodGet, "/api/inventory/99999999-9999-4999-8999-999999999999/movements", nil)
	req.Header.Set("Authorization", tokenForRole(t, "admin"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestTransferStock_MismaTienda_Retorna400(t *testing.T) {
	app := buildInventoryApp(t)
	resp := postJSON(t, app, "/api/inventory/transfer", fiber.Map{
		"product_id":      productCafe,
		"target_store_id": storeOrigen,
		"quantity":        "2",
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INVALID_TARGET")
}

func TestTransferStock_SinToken_Retorna401(t *testing.T) {
	app := buildInventoryApp(t)
	req := httptest.NewRequest(http.MethodPost, "/api/inventory/transfer", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tiendas-api/internal/application/analytics"
	"github.com/jhoicas/tiendas-api/internal/application/dto"
	"github.com/jhoicas/tiendas-api/internal/application/usecase"
	"github.com/jhoicas/tiendas-api/internal/domain"
	"github.com/jhoicas/tiendas-api/internal/domain/entity"
	"github.com/jhoicas/tiendas-api/pkg/validator"
)

// ProductHandler maneja catálogo, dashboard y feed de actividad (protegido).
type ProductHandler struct {
	bundleUC   *usecase.BundleUseCase
	productUC  *usecase.ProductUseCase
	dashboard  *analytics.DashboardUseCase
	activities *analytics.ActivityFeedUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(
	bundleUC *usecase.BundleUseCase,
	productUC *usecase.ProductUseCase,
	dashboard *analytics.DashboardUseCase,
	activities *analytics.ActivityFeedUseCase,
) *ProductHandler {
	return &ProductHandler{bundleUC: bundleUC, productUC: productUC, dashboard: dashboard, activities: activities}
}

// CreateBundle godoc
// @Summary      Crear producto compuesto (bundle)
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateBundleRequest  true  "name, final_price, store_id, components"
// @Success      201   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/products/bundle [post]
func (h *ProductHandler) CreateBundle(c *fiber.Ctx) error {
	var in dto.CreateBundleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if details := validator.ValidateStruct(in); details != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: validator.Describe(details)})
	}
	components := make([]usecase.BundleComponentInput, 0, len(in.Components))
	for _, comp := range in.Components {
		components = append(components, usecase.BundleComponentInput{ProductID: comp.ID, Quantity: comp.Quantity})
	}
	product, err := h.bundleUC.CreateBundle(c.Context(), usecase.CreateBundleInput{
		Name:       in.Name,
		FinalPrice: in.FinalPrice,
		StoreID:    in.StoreID,
		Components: components,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "tienda o componente no encontrado"})
		case errors.Is(err, domain.ErrDuplicate):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "ya existe un producto con ese código en la tienda"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.Status(fiber.StatusCreated).JSON(toProductResponse(product))
}

// GetBundleComponents godoc
// @Summary      Composición de un bundle
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del producto bundle"
// @Success      200  {array}   dto.BundleComponentResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/components [get]
func (h *ProductHandler) GetBundleComponents(c *fiber.Ctx) error {
	components, err := h.bundleUC.Components(c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "bundle no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := make([]dto.BundleComponentResponse, 0, len(components))
	for _, comp := range components {
		out = append(out, dto.BundleComponentResponse{ProductID: comp.ComponentProductID, Quantity: comp.Quantity})
	}
	return c.JSON(out)
}

// GetDashboardStats godoc
// @Summary      KPIs del dashboard con crecimiento contra el mes anterior
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        month     query  int     false  "Mes 1-12 (default: actual)"
// @Param        year      query  int     false  "Año (default: actual)"
// @Param        store_id  query  string  false  "Filtrar por tienda. Vacío = todas."
// @Success      200  {object}  dto.DashboardStatsDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/products/dashboard-stats [get]
func (h *ProductHandler) GetDashboardStats(c *fiber.Ctx) error {
	now := time.Now()
	month := c.QueryInt("month", int(now.Month()))
	year := c.QueryInt("year", now.Year())
	storeID := scopedStoreID(c)

	stats, err := h.dashboard.GetStats(c.Context(), month, year, storeID)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "mes o año fuera de rango"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(stats)
}

// GetActivities godoc
// @Summary      Feed cronológico de actividad (ventas y productos nuevos)
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        store_id  query  string  false  "Filtrar por tienda. Vacío = todas."
// @Param        search    query  string  false  "Subcadena sobre nombre de producto o tienda"
// @Success      200  {array}  dto.ActivityDTO
// @Router       /api/products/activities [get]
func (h *ProductHandler) GetActivities(c *fiber.Ctx) error {
	feed, err := h.activities.GetActivities(c.Context(), scopedStoreID(c), c.Query("search"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(feed)
}

// List godoc
// @Summary      Listar productos de una tienda
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        store_id  query  string  true   "Tienda"
// @Param        limit     query  int     false  "Máximo de filas (default 50)"
// @Param        offset    query  int     false  "Desplazamiento"
// @Success      200  {array}   dto.ProductResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	storeID := scopedStoreID(c)
	if storeID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "store_id requerido"})
	}
	limit := c.QueryInt("limit", 50)
	offset := c.QueryInt("offset", 0)
	products, err := h.productUC.ListByStore(storeID, limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}
	return c.JSON(out)
}

// scopedStoreID resuelve la tienda efectiva: un token con store_id acota al
// colaborador a su tienda aunque pida otra por query.
func scopedStoreID(c *fiber.Ctx) string {
	if tokenStore := GetStoreID(c); tokenStore != "" {
		return tokenStore
	}
	return c.Query("store_id")
}

func toProductResponse(p *entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:            p.ID,
		StoreID:       p.StoreID,
		Name:          p.Name,
		Code:          p.Code,
		Price:         p.Price,
		ProviderPrice: p.Cost(),
		Stock:         p.Stock,
		IsBundle:      p.IsBundle,
		Category:      p.Category,
		Unit:          p.Unit,
	}
}

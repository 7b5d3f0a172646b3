package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tiendas-api/internal/application/dto"
	appsales "github.com/jhoicas/tiendas-api/internal/application/sales"
	"github.com/jhoicas/tiendas-api/internal/domain"
	"github.com/jhoicas/tiendas-api/pkg/validator"
)

// SaleHandler maneja el checkout y las consultas de ventas (protegido).
type SaleHandler struct {
	createUC *appsales.CreateSaleUseCase
	listUC   *appsales.ListSalesUseCase
}

// NewSaleHandler construye el handler.
func NewSaleHandler(createUC *appsales.CreateSaleUseCase, listUC *appsales.ListSalesUseCase) *SaleHandler {
	return &SaleHandler{createUC: createUC, listUC: listUC}
}

// Create godoc
// @Summary      Registrar una venta
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSaleRequest  true  "store_id, payment_method, items, coupon_code opcional"
// @Success      201   {object}  dto.SaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/sales [post]
func (h *SaleHandler) Create(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.CreateSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if details := validator.ValidateStruct(in); details != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: validator.Describe(details)})
	}
	items := make([]appsales.SaleItemInput, 0, len(in.Items))
	for _, it := range in.Items {
		items = append(items, appsales.SaleItemInput{ProductID: it.ProductID, Quantity: it.Quantity})
	}
	sale, err := h.createUC.Create(c.Context(), appsales.CreateSaleInput{
		StoreID:       in.StoreID,
		UserID:        userID,
		CustomerName:  in.CustomerName,
		PaymentMethod: in.PaymentMethod,
		CouponCode:    in.CouponCode,
		Items:         items,
	})
	if err != nil {
		return inventoryError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(appsales.MapSale(sale))
}

// GetByID godoc
// @Summary      Detalle de una venta con el reparto de descuento por línea
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la venta"
// @Success      200  {object}  dto.SaleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id} [get]
func (h *SaleHandler) GetByID(c *fiber.Ctx) error {
	sale, err := h.listUC.GetByID(c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "venta no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(sale)
}

// List godoc
// @Summary      Listar ventas de una tienda con el reparto de descuento por línea
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        store_id  query  string  true   "Tienda"
// @Param        from      query  string  false  "Fecha inicial RFC3339"
// @Param        to        query  string  false  "Fecha final RFC3339"
// @Param        limit     query  int     false  "Máximo de filas (default 50)"
// @Param        offset    query  int     false  "Desplazamiento"
// @Success      200  {array}   dto.SaleResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/sales [get]
func (h *SaleHandler) List(c *fiber.Ctx) error {
	storeID := scopedStoreID(c)
	if storeID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "store_id requerido"})
	}
	from, err := parseTimeQuery(c, "from")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from inválido (RFC3339)"})
	}
	to, err := parseTimeQuery(c, "to")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "to inválido (RFC3339)"})
	}
	limit := c.QueryInt("limit", 50)
	offset := c.QueryInt("offset", 0)

	sales, err := h.listUC.ListByStore(storeID, from, to, limit, offset)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(sales)
}

func parseTimeQuery(c *fiber.Ctx, name string) (*time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

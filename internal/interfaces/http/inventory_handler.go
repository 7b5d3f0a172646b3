package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tiendas-api/internal/application/dto"
	"github.com/jhoicas/tiendas-api/internal/application/inventory"
	"github.com/jhoicas/tiendas-api/internal/domain"
	"github.com/jhoicas/tiendas-api/pkg/validator"
)

// InventoryHandler maneja las peticiones HTTP del libro de inventario (protegido).
type InventoryHandler struct {
	adjust   *inventory.AdjustStockUseCase
	transfer *inventory.TransferStockUseCase
	history  *inventory.MovementHistoryUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(
	adjust *inventory.AdjustStockUseCase,
	transfer *inventory.TransferStockUseCase,
	history *inventory.MovementHistoryUseCase,
) *InventoryHandler {
	return &InventoryHandler{adjust: adjust, transfer: transfer, history: history}
}

// AdjustStock godoc
// @Summary      Ajuste manual de stock
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "ID del producto"
// @Param        body  body  dto.AdjustStockRequest  true  "quantity, type (ENTRY|EXIT), details"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory/{id}/adjust [post]
func (h *InventoryHandler) AdjustStock(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.AdjustStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if details := validator.ValidateStruct(in); details != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: validator.Describe(details)})
	}
	err := h.adjust.Adjust(c.Context(), inventory.AdjustInput{
		ProductID: c.Params("id"),
		Type:      in.Type,
		Quantity:  in.Quantity,
		Details:   in.Details,
		UserID:    userID,
	})
	if err != nil {
		return inventoryError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "ajuste aplicado"})
}

// TransferStock godoc
// @Summary      Traslado de stock entre tiendas
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TransferStockRequest  true  "product_id, target_store_id, quantity, reason"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory/transfer [post]
func (h *InventoryHandler) TransferStock(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.TransferStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if details := validator.ValidateStruct(in); details != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: validator.Describe(details)})
	}
	err := h.transfer.Transfer(c.Context(), inventory.TransferInput{
		ProductID:     in.ProductID,
		TargetStoreID: in.TargetStoreID,
		Quantity:      in.Quantity,
		Reason:        in.Reason,
		UserID:        userID,
	})
	if err != nil {
		return inventoryError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "traslado aplicado"})
}

// ListMovements godoc
// @Summary      Historial de movimientos de un producto
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id      path   string  true   "ID del producto"
// @Param        from    query  string  false  "Fecha inicial RFC3339"
// @Param        to      query  string  false  "Fecha final RFC3339"
// @Param        limit   query  int     false  "Máximo de filas (default 50)"
// @Param        offset  query  int     false  "Desplazamiento"
// @Success      200  {array}   dto.MovementResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/{id}/movements [get]
func (h *InventoryHandler) ListMovements(c *fiber.Ctx) error {
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

	movements, err := h.history.ListByProduct(c.Params("id"), from, to, limit, offset)
	if err != nil {
		return inventoryError(c, err)
	}
	return c.JSON(movements)
}

// inventoryError mapea errores de dominio a estatus HTTP. El stock
// insuficiente responde 400 e incluye la cantidad disponible en el mensaje.
func inventoryError(c *fiber.Ctx, err error) error {
	var insufficient *domain.InsufficientStockError
	if errors.As(err, &insufficient) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code:    "INSUFFICIENT_STOCK",
			Message: fmt.Sprintf("stock insuficiente: disponible %s, solicitado %s", insufficient.Available, insufficient.Requested),
		})
	}
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	case errors.Is(err, domain.ErrInvalidTarget):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_TARGET", Message: "la tienda destino no puede ser la de origen"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto o tienda no encontrado"})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "registro duplicado"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tiendas-api/internal/application/dto"
	"github.com/jhoicas/tiendas-api/internal/application/usecase"
)

// StoreHandler maneja la lectura de tiendas (protegido).
type StoreHandler struct {
	uc *usecase.StoreUseCase
}

// NewStoreHandler construye el handler.
func NewStoreHandler(uc *usecase.StoreUseCase) *StoreHandler {
	return &StoreHandler{uc: uc}
}

// List godoc
// @Summary      Listar tiendas
// @Tags         stores
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.StoreResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/stores [get]
func (h *StoreHandler) List(c *fiber.Ctx) error {
	stores, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := make([]dto.StoreResponse, 0, len(stores))
	for _, s := range stores {
		out = append(out, dto.StoreResponse{ID: s.ID, Name: s.Name, Location: s.Location})
	}
	return c.JSON(out)
}

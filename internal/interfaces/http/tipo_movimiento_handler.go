package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Steven1400999/inventario-api/internal/application/dto"
	"github.com/Steven1400999/inventario-api/internal/application/usecase"
)

// TipoMovimientoHandler maneja las peticiones HTTP para TipoMovimiento
// (protegido).
type TipoMovimientoHandler struct {
	uc *usecase.TipoMovimientoUseCase
}

// NewTipoMovimientoHandler construye el handler.
func NewTipoMovimientoHandler(uc *usecase.TipoMovimientoUseCase) *TipoMovimientoHandler {
	return &TipoMovimientoHandler{uc: uc}
}

// Create godoc
// @Summary      Crear tipo de movimiento (Ingreso o Egreso)
// @Tags         tipos_movimiento
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TipoMovimientoRequest  true  "Etiqueta del tipo"
// @Success      201   {object}  dto.TipoMovimientoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/tipos_movimiento [post]
func (h *TipoMovimientoHandler) Create(c *fiber.Ctx) error {
	var in dto.TipoMovimientoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar tipos de movimiento
// @Tags         tipos_movimiento
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.TipoMovimientoResponse
// @Router       /api/tipos_movimiento [get]
func (h *TipoMovimientoHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.List(limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener tipo de movimiento por ID
// @Tags         tipos_movimiento
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del tipo"
// @Success      200  {object}  dto.TipoMovimientoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/tipos_movimiento/{id} [get]
func (h *TipoMovimientoHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Reemplazar tipo de movimiento
// @Tags         tipos_movimiento
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del tipo"
// @Param        body  body  dto.TipoMovimientoRequest  true  "Etiqueta del tipo"
// @Success      200   {object}  dto.TipoMovimientoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/tipos_movimiento/{id} [patch]
func (h *TipoMovimientoHandler) Update(c *fiber.Ctx) error {
	var in dto.TipoMovimientoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar tipo de movimiento
// @Tags         tipos_movimiento
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del tipo"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/tipos_movimiento/{id} [delete]
func (h *TipoMovimientoHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Tipo de movimiento eliminado"})
}

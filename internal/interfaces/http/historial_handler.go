package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Steven1400999/inventario-api/internal/application/dto"
	"github.com/Steven1400999/inventario-api/internal/application/inventory"
	"github.com/Steven1400999/inventario-api/internal/application/usecase"
)

// HistorialHandler maneja el libro de movimientos: el POST pasa por el
// motor de ajuste de stock; lecturas y borrado son directos.
type HistorialHandler struct {
	movimiento *inventory.RegisterMovementUseCase
	historial  *usecase.HistorialUseCase
}

// NewHistorialHandler construye el handler.
func NewHistorialHandler(movimiento *inventory.RegisterMovementUseCase, historial *usecase.HistorialUseCase) *HistorialHandler {
	return &HistorialHandler{movimiento: movimiento, historial: historial}
}

// RegisterMovement godoc
// @Summary      Registrar movimiento de inventario
// @Description  Aplica el ajuste de stock (Ingreso suma, Egreso resta con
//               validación de existencias) y agrega el registro al historial,
//               todo en una transacción.
// @Tags         historial_inventario
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterMovementRequest  true  "articulo_id, tipo_movimiento_id, cantidad"
// @Success      201   {object}  dto.HistorialResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/historial_inventario [post]
func (h *HistorialHandler) RegisterMovement(c *fiber.Ctx) error {
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.movimiento.RegisterMovement(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar historial de movimientos
// @Tags         historial_inventario
// @Security     Bearer
// @Produce      json
// @Param        articulo_id  query  string  false  "Filtrar por artículo"
// @Param        limit        query  int     false  "Límite"   default(20)
// @Param        offset       query  int     false  "Offset"   default(0)
// @Success      200  {object}  dto.HistorialListResponse
// @Router       /api/historial_inventario [get]
func (h *HistorialHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.historial.List(c.Query("articulo_id"), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Export godoc
// @Summary      Exportar historial a XLSX
// @Tags         historial_inventario
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}  binary
// @Router       /api/historial_inventario/export [get]
func (h *HistorialHandler) Export(c *fiber.Ctx) error {
	data, err := h.historial.Export()
	if err != nil {
		return respondError(c, err)
	}
	filename := fmt.Sprintf("historial_%s.xlsx", time.Now().Format("20060102"))
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}

// GetByID godoc
// @Summary      Obtener registro del historial por ID
// @Tags         historial_inventario
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del registro"
// @Success      200  {object}  dto.HistorialResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/historial_inventario/{id} [get]
func (h *HistorialHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.historial.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar registro del historial
// @Description  Elimina solo la fila del historial; el efecto del
//               movimiento sobre el stock NO se revierte.
// @Tags         historial_inventario
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del registro"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/historial_inventario/{id} [delete]
func (h *HistorialHandler) Delete(c *fiber.Ctx) error {
	if err := h.historial.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Registro de historial eliminado"})
}

package dto

import "time"

// RegisterMovementRequest body para POST /api/historial_inventario.
// FechaMovimiento no se acepta del cliente: la asigna el servidor.
type RegisterMovementRequest struct {
	ArticuloID       string `json:"articulo_id"`
	TipoMovimientoID string `json:"tipo_movimiento_id"`
	Cantidad         int64  `json:"cantidad"`
}

// HistorialResponse salida de un registro del historial.
type HistorialResponse struct {
	ID               string    `json:"id"`
	ArticuloID       string    `json:"articulo_id"`
	TipoMovimientoID string    `json:"tipo_movimiento_id"`
	Cantidad         int64     `json:"cantidad"`
	FechaMovimiento  time.Time `json:"fecha_movimiento"`
}

// HistorialListResponse lista paginada del historial.
type HistorialListResponse struct {
	Items []HistorialResponse `json:"items"`
	Page  PageResponse        `json:"page"`
}

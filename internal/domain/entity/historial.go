package entity

import "time"

// HistorialInventario es un registro del libro de movimientos: solo se
// agrega, nunca se modifica. Borrar un registro es una corrección
// administrativa y no revierte el efecto sobre el stock.
type HistorialInventario struct {
	ID               string
	ArticuloID       string
	TipoMovimientoID string
	Cantidad         int64
	FechaMovimiento  time.Time
}

package entity

import "time"

// MovementKind es la variante cerrada de clases de movimiento.
// La etiqueta libre del TipoMovimiento se mapea a esta variante en el
// borde; etiquetas no reconocidas se rechazan en vez de ignorarse.
type MovementKind string

const (
	KindIngreso MovementKind = "Ingreso" // entrada: suma stock
	KindEgreso  MovementKind = "Egreso"  // salida: resta stock
)

// ParseMovementKind mapea una etiqueta libre a la variante cerrada.
// Devuelve false si la etiqueta no corresponde a ninguna clase conocida.
func ParseMovementKind(label string) (MovementKind, bool) {
	switch label {
	case string(KindIngreso):
		return KindIngreso, true
	case string(KindEgreso):
		return KindEgreso, true
	}
	return "", false
}

// TipoMovimiento cataloga las clases de movimiento de inventario.
// Tipo es la etiqueta persistida y única ("Ingreso" o "Egreso").
type TipoMovimiento struct {
	ID        string
	Tipo      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Kind devuelve la variante cerrada correspondiente a la etiqueta.
func (t *TipoMovimiento) Kind() (MovementKind, bool) {
	return ParseMovementKind(t.Tipo)
}

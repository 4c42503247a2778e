package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Articulo representa un producto almacenado con precio y existencias.
// Stock nunca debe quedar negativo; los cambios pasan por el motor de movimientos.
type Articulo struct {
	ID          string
	Nombre      string
	Descripcion string
	CategoriaID string
	ProveedorID string
	Stock       int64
	Precio      decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

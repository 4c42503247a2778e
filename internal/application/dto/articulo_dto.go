package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ArticuloRequest entrada para crear o reemplazar un artículo.
// El PATCH reemplaza todos los campos mutables, igual que el POST.
type ArticuloRequest struct {
	Nombre      string          `json:"nombre"`
	Descripcion string          `json:"descripcion"`
	CategoriaID string          `json:"categoria_id"`
	ProveedorID string          `json:"proveedor_id"`
	Stock       int64           `json:"stock"`
	Precio      decimal.Decimal `json:"precio"`
}

// ArticuloResponse salida de un artículo.
type ArticuloResponse struct {
	ID          string          `json:"id"`
	Nombre      string          `json:"nombre"`
	Descripcion string          `json:"descripcion"`
	CategoriaID string          `json:"categoria_id"`
	ProveedorID string          `json:"proveedor_id"`
	Stock       int64           `json:"stock"`
	Precio      decimal.Decimal `json:"precio"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ArticuloListResponse lista paginada de artículos.
type ArticuloListResponse struct {
	Items []ArticuloResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

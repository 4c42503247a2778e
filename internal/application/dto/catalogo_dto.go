package dto

import "time"

// CategoriaRequest entrada para crear o reemplazar una categoría.
type CategoriaRequest struct {
	Categoria string `json:"categoria"`
}

// CategoriaResponse salida de una categoría.
type CategoriaResponse struct {
	ID        string    `json:"id"`
	Categoria string    `json:"categoria"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProveedorRequest entrada para crear o reemplazar un proveedor.
type ProveedorRequest struct {
	Proveedor string `json:"proveedor"`
}

// ProveedorResponse salida de un proveedor.
type ProveedorResponse struct {
	ID        string    `json:"id"`
	Proveedor string    `json:"proveedor"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TipoMovimientoRequest entrada para crear o reemplazar un tipo de movimiento.
// Tipo debe ser una etiqueta reconocida: "Ingreso" o "Egreso".
type TipoMovimientoRequest struct {
	Tipo string `json:"tipo"`
}

// TipoMovimientoResponse salida de un tipo de movimiento.
type TipoMovimientoResponse struct {
	ID        string    `json:"id"`
	Tipo      string    `json:"tipo"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

package entity

import "time"

// Proveedor representa a quien suministra artículos. Nombre único.
type Proveedor struct {
	ID        string
	Nombre    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

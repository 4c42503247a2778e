package entity

import "time"

// Categoria agrupa artículos bajo un nombre único.
type Categoria struct {
	ID        string
	Nombre    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

package entity

import "time"

// Usuario cuenta de acceso a la API.
type Usuario struct {
	ID           string
	Email        string
	PasswordHash string
	Nombre       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

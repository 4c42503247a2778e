package repository

import "github.com/Steven1400999/inventario-api/internal/domain/entity"

// HistorialRepository puerto de persistencia para el libro de movimientos.
// No expone Update: el historial es de solo agregado.
type HistorialRepository interface {
	Create(historial *entity.HistorialInventario) error
	GetByID(id string) (*entity.HistorialInventario, error)
	List(limit, offset int) ([]*entity.HistorialInventario, error)
	ListByArticulo(articuloID string, limit, offset int) ([]*entity.HistorialInventario, error)
	Delete(id string) error
}

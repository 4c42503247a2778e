package repository

import "github.com/Steven1400999/inventario-api/internal/domain/entity"

// ArticuloRepository define el puerto de persistencia para Articulo (DIP).
// GetForUpdate y UpdateStock los usa el motor de movimientos dentro de
// una transacción; el resto es CRUD directo.
type ArticuloRepository interface {
	Create(articulo *entity.Articulo) error
	GetByID(id string) (*entity.Articulo, error)
	GetForUpdate(id string) (*entity.Articulo, error)
	List(limit, offset int) ([]*entity.Articulo, error)
	Update(articulo *entity.Articulo) error
	UpdateStock(id string, stock int64) error
	Delete(id string) error
}

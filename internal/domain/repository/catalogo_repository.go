package repository

import "github.com/Steven1400999/inventario-api/internal/domain/entity"

// CategoriaRepository puerto de persistencia para Categoria.
type CategoriaRepository interface {
	Create(categoria *entity.Categoria) error
	GetByID(id string) (*entity.Categoria, error)
	List(limit, offset int) ([]*entity.Categoria, error)
	Update(categoria *entity.Categoria) error
	Delete(id string) error
}

// ProveedorRepository puerto de persistencia para Proveedor.
type ProveedorRepository interface {
	Create(proveedor *entity.Proveedor) error
	GetByID(id string) (*entity.Proveedor, error)
	List(limit, offset int) ([]*entity.Proveedor, error)
	Update(proveedor *entity.Proveedor) error
	Delete(id string) error
}

// TipoMovimientoRepository puerto de persistencia para TipoMovimiento.
type TipoMovimientoRepository interface {
	Create(tipo *entity.TipoMovimiento) error
	GetByID(id string) (*entity.TipoMovimiento, error)
	List(limit, offset int) ([]*entity.TipoMovimiento, error)
	Update(tipo *entity.TipoMovimiento) error
	Delete(id string) error
}

package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/Steven1400999/inventario-api/internal/domain"
	"github.com/Steven1400999/inventario-api/internal/domain/entity"
	"github.com/Steven1400999/inventario-api/internal/domain/repository"
)

var _ repository.ArticuloRepository = (*ArticuloRepo)(nil)

// ArticuloRepo implementación del puerto ArticuloRepository sobre
// PostgreSQL (usable con pool o tx).
type ArticuloRepo struct {
	q Querier
}

// NewArticuloRepository construye el adaptador. Pasar pool o tx (Querier).
func NewArticuloRepository(q Querier) *ArticuloRepo {
	return &ArticuloRepo{q: q}
}

const articuloColumns = `id, nombre, descripcion, categoria_id, proveedor_id, stock, precio, created_at, updated_at`

// Create persiste un nuevo artículo.
func (r *ArticuloRepo) Create(a *entity.Articulo) error {
	query := `
		INSERT INTO articulos (` + articuloColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		a.ID, a.Nombre, a.Descripcion, a.CategoriaID, a.ProveedorID,
		a.Stock, a.Precio, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert articulo: %w", err)
	}
	return nil
}

// GetByID obtiene un artículo por ID. Devuelve nil, nil si no existe.
func (r *ArticuloRepo) GetByID(id string) (*entity.Articulo, error) {
	return r.get(id, false)
}

// GetForUpdate obtiene un artículo y bloquea su fila (SELECT FOR UPDATE)
// hasta que la transacción termine. Solo tiene sentido dentro de una tx.
func (r *ArticuloRepo) GetForUpdate(id string) (*entity.Articulo, error) {
	return r.get(id, true)
}

func (r *ArticuloRepo) get(id string, forUpdate bool) (*entity.Articulo, error) {
	query := `SELECT ` + articuloColumns + ` FROM articulos WHERE id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	var a entity.Articulo
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&a.ID, &a.Nombre, &a.Descripcion, &a.CategoriaID, &a.ProveedorID,
		&a.Stock, &a.Precio, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get articulo: %w", err)
	}
	return &a, nil
}

// List lista artículos con paginación.
func (r *ArticuloRepo) List(limit, offset int) ([]*entity.Articulo, error) {
	query := `
		SELECT ` + articuloColumns + `
		FROM articulos ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list articulos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Articulo
	for rows.Next() {
		var a entity.Articulo
		if err := rows.Scan(&a.ID, &a.Nombre, &a.Descripcion, &a.CategoriaID, &a.ProveedorID,
			&a.Stock, &a.Precio, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan articulo: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// Update reemplaza los campos mutables de un artículo.
func (r *ArticuloRepo) Update(a *entity.Articulo) error {
	query := `
		UPDATE articulos
		SET nombre = $2, descripcion = $3, categoria_id = $4, proveedor_id = $5, stock = $6, precio = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		a.ID, a.Nombre, a.Descripcion, a.CategoriaID, a.ProveedorID,
		a.Stock, a.Precio, a.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("update articulo: %w", err)
	}
	return nil
}

// UpdateStock actualiza solo las existencias (usado por el motor de
// movimientos dentro de la transacción).
func (r *ArticuloRepo) UpdateStock(id string, stock int64) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE articulos SET stock = $2, updated_at = now() WHERE id = $1`,
		id, stock,
	)
	if err != nil {
		return fmt.Errorf("update stock: %w", err)
	}
	return nil
}

// Delete elimina un artículo; el historial asociado cae en cascada
// (ON DELETE CASCADE en la BD).
func (r *ArticuloRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM articulos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete articulo: %w", err)
	}
	return nil
}

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

var _ repository.TipoMovimientoRepository = (*TipoMovimientoRepo)(nil)

// TipoMovimientoRepo implementación de TipoMovimientoRepository sobre
// PostgreSQL.
type TipoMovimientoRepo struct {
	q Querier
}

// NewTipoMovimientoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTipoMovimientoRepository(q Querier) *TipoMovimientoRepo {
	return &TipoMovimientoRepo{q: q}
}

// Create persiste un nuevo tipo de movimiento. Etiqueta única.
func (r *TipoMovimientoRepo) Create(t *entity.TipoMovimiento) error {
	query := `
		INSERT INTO tipos_movimiento (id, tipo, created_at, updated_at)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query, t.ID, t.Tipo, t.CreatedAt, t.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert tipo_movimiento: %w", err)
	}
	return nil
}

// GetByID obtiene un tipo de movimiento por ID. Devuelve nil, nil si no existe.
func (r *TipoMovimientoRepo) GetByID(id string) (*entity.TipoMovimiento, error) {
	var t entity.TipoMovimiento
	err := r.q.QueryRow(context.Background(),
		`SELECT id, tipo, created_at, updated_at FROM tipos_movimiento WHERE id = $1`, id,
	).Scan(&t.ID, &t.Tipo, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get tipo_movimiento: %w", err)
	}
	return &t, nil
}

// List lista tipos de movimiento con paginación.
func (r *TipoMovimientoRepo) List(limit, offset int) ([]*entity.TipoMovimiento, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, tipo, created_at, updated_at FROM tipos_movimiento ORDER BY tipo LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("list tipos_movimiento: %w", err)
	}
	defer rows.Close()
	var list []*entity.TipoMovimiento
	for rows.Next() {
		var t entity.TipoMovimiento
		if err := rows.Scan(&t.ID, &t.Tipo, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan tipo_movimiento: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

// Update reemplaza la etiqueta del tipo.
func (r *TipoMovimientoRepo) Update(t *entity.TipoMovimiento) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE tipos_movimiento SET tipo = $2, updated_at = $3 WHERE id = $1`,
		t.ID, t.Tipo, t.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update tipo_movimiento: %w", err)
	}
	return nil
}

// Delete elimina un tipo de movimiento. La BD rechaza el borrado si el
// historial lo referencia (RESTRICT) y se devuelve ErrConflict.
func (r *TipoMovimientoRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM tipos_movimiento WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete tipo_movimiento: %w", err)
	}
	return nil
}

package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/Steven1400999/inventario-api/internal/domain/entity"
	"github.com/Steven1400999/inventario-api/internal/domain/repository"
)

var _ repository.HistorialRepository = (*HistorialRepo)(nil)

// HistorialRepo implementación de HistorialRepository sobre PostgreSQL
// (usable con pool o tx).
type HistorialRepo struct {
	q Querier
}

// NewHistorialRepository construye el adaptador. Pasar pool o tx (Querier).
func NewHistorialRepository(q Querier) *HistorialRepo {
	return &HistorialRepo{q: q}
}

const historialColumns = `id, articulo_id, tipo_movimiento_id, cantidad, fecha_movimiento`

// Create persiste un registro del historial.
func (r *HistorialRepo) Create(h *entity.HistorialInventario) error {
	query := `
		INSERT INTO historial_inventario (` + historialColumns + `)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		h.ID, h.ArticuloID, h.TipoMovimientoID, h.Cantidad, h.FechaMovimiento,
	)
	if err != nil {
		return fmt.Errorf("insert historial: %w", err)
	}
	return nil
}

// GetByID obtiene un registro por ID. Devuelve nil, nil si no existe.
func (r *HistorialRepo) GetByID(id string) (*entity.HistorialInventario, error) {
	var h entity.HistorialInventario
	err := r.q.QueryRow(context.Background(),
		`SELECT `+historialColumns+` FROM historial_inventario WHERE id = $1`, id,
	).Scan(&h.ID, &h.ArticuloID, &h.TipoMovimientoID, &h.Cantidad, &h.FechaMovimiento)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get historial: %w", err)
	}
	return &h, nil
}

// List lista el historial ordenado por fecha descendente.
func (r *HistorialRepo) List(limit, offset int) ([]*entity.HistorialInventario, error) {
	query := `
		SELECT ` + historialColumns + `
		FROM historial_inventario ORDER BY fecha_movimiento DESC LIMIT $1 OFFSET $2`
	return r.list(query, limit, offset)
}

// ListByArticulo lista el historial de un artículo.
func (r *HistorialRepo) ListByArticulo(articuloID string, limit, offset int) ([]*entity.HistorialInventario, error) {
	query := `
		SELECT ` + historialColumns + `
		FROM historial_inventario WHERE articulo_id = $3
		ORDER BY fecha_movimiento DESC LIMIT $1 OFFSET $2`
	return r.list(query, limit, offset, articuloID)
}

func (r *HistorialRepo) list(query string, limit, offset int, extra ...any) ([]*entity.HistorialInventario, error) {
	args := append([]any{limit, offset}, extra...)
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list historial: %w", err)
	}
	defer rows.Close()
	var list []*entity.HistorialInventario
	for rows.Next() {
		var h entity.HistorialInventario
		if err := rows.Scan(&h.ID, &h.ArticuloID, &h.TipoMovimientoID, &h.Cantidad, &h.FechaMovimiento); err != nil {
			return nil, fmt.Errorf("scan historial: %w", err)
		}
		list = append(list, &h)
	}
	return list, rows.Err()
}

// Delete elimina solo la fila del historial; el stock del artículo no
// se toca.
func (r *HistorialRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM historial_inventario WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete historial: %w", err)
	}
	return nil
}

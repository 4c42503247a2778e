package inventory

import (
	"context"

	"github.com/Steven1400999/inventario-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que la actualización de stock
// y el alta en historial se confirmen juntas o ninguna.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		artRepo repository.ArticuloRepository,
		histRepo repository.HistorialRepository,
	) error) error
}

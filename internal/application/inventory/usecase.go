package inventory

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/Steven1400999/inventario-api/internal/application/dto"
	"github.com/Steven1400999/inventario-api/internal/domain"
	"github.com/Steven1400999/inventario-api/internal/domain/entity"
	"github.com/Steven1400999/inventario-api/internal/domain/repository"
	"github.com/Steven1400999/inventario-api/internal/metrics"
)

// RegisterMovementUseCase registra movimientos de inventario de forma
// transaccional: bloquea la fila del artículo (SELECT FOR UPDATE),
// valida el egreso contra el stock actual y confirma el ajuste de stock
// junto con el alta en historial, o nada.
type RegisterMovementUseCase struct {
	txRunner TxRunner
	tipoRepo repository.TipoMovimientoRepository
}

// NewRegisterMovementUseCase construye el caso de uso.
func NewRegisterMovementUseCase(txRunner TxRunner, tipoRepo repository.TipoMovimientoRepository) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{txRunner: txRunner, tipoRepo: tipoRepo}
}

// RegisterMovement aplica un movimiento sobre un artículo.
// Cantidad debe ser > 0. Para Egreso exige stock suficiente; si no lo
// hay, falla con ErrInsufficientStock sin tocar stock ni historial.
// Etiquetas de tipo no reconocidas se rechazan con ErrTipoNoReconocido.
func (uc *RegisterMovementUseCase) RegisterMovement(ctx context.Context, in dto.RegisterMovementRequest) (*dto.HistorialResponse, error) {
	if in.ArticuloID == "" || in.TipoMovimientoID == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Cantidad <= 0 {
		return nil, domain.ErrInvalidInput
	}

	tipo, err := uc.tipoRepo.GetByID(in.TipoMovimientoID)
	if err != nil {
		return nil, err
	}
	if tipo == nil {
		return nil, domain.ErrTipoMovimientoNotFound
	}
	kind, ok := tipo.Kind()
	if !ok {
		return nil, domain.ErrTipoNoReconocido
	}

	var registro *entity.HistorialInventario
	err = uc.txRunner.Run(ctx, func(
		artRepo repository.ArticuloRepository,
		histRepo repository.HistorialRepository,
	) error {
		// Bloquea la fila del artículo durante toda la transacción para
		// evitar lost updates entre movimientos concurrentes.
		articulo, err := artRepo.GetForUpdate(in.ArticuloID)
		if err != nil {
			return err
		}
		if articulo == nil {
			return domain.ErrArticuloNotFound
		}

		var nuevoStock int64
		switch kind {
		case entity.KindIngreso:
			nuevoStock = articulo.Stock + in.Cantidad
		case entity.KindEgreso:
			if articulo.Stock < in.Cantidad {
				return domain.ErrInsufficientStock
			}
			nuevoStock = articulo.Stock - in.Cantidad
		default:
			return domain.ErrTipoNoReconocido
		}

		if err := artRepo.UpdateStock(articulo.ID, nuevoStock); err != nil {
			return err
		}
		registro = &entity.HistorialInventario{
			ID:               uuid.New().String(),
			ArticuloID:       in.ArticuloID,
			TipoMovimientoID: in.TipoMovimientoID,
			Cantidad:         in.Cantidad,
			FechaMovimiento:  time.Now(),
		}
		return histRepo.Create(registro)
	})
	if err != nil {
		if errors.Is(err, domain.ErrInsufficientStock) {
			metrics.EgresosRechazados.Inc()
		}
		return nil, err
	}

	metrics.MovimientosRegistrados.WithLabelValues(string(kind)).Inc()
	return toHistorialResponse(registro), nil
}

func toHistorialResponse(h *entity.HistorialInventario) *dto.HistorialResponse {
	if h == nil {
		return nil
	}
	return &dto.HistorialResponse{
		ID:               h.ID,
		ArticuloID:       h.ArticuloID,
		TipoMovimientoID: h.TipoMovimientoID,
		Cantidad:         h.Cantidad,
		FechaMovimiento:  h.FechaMovimiento,
	}
}

package usecase

import (
	"github.com/Steven1400999/inventario-api/internal/application/dto"
	"github.com/Steven1400999/inventario-api/internal/domain"
	"github.com/Steven1400999/inventario-api/internal/domain/entity"
	"github.com/Steven1400999/inventario-api/internal/domain/repository"
)

// HistorialExporter genera una representación descargable del historial.
type HistorialExporter interface {
	Export(items []*entity.HistorialInventario) ([]byte, error)
}

// HistorialUseCase lectura y borrado del libro de movimientos. El alta
// pasa por inventory.RegisterMovementUseCase; aquí no hay Update porque
// el historial es de solo agregado.
type HistorialUseCase struct {
	repo     repository.HistorialRepository
	exporter HistorialExporter
}

// NewHistorialUseCase construye el caso de uso.
func NewHistorialUseCase(repo repository.HistorialRepository, exporter HistorialExporter) *HistorialUseCase {
	return &HistorialUseCase{repo: repo, exporter: exporter}
}

// GetByID obtiene un registro del historial por ID.
func (uc *HistorialUseCase) GetByID(id string) (*dto.HistorialResponse, error) {
	h, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if h == nil {
		return nil, domain.ErrHistorialNotFound
	}
	return toHistorialResponse(h), nil
}

// List lista el historial con paginación; opcionalmente filtrado por artículo.
func (uc *HistorialUseCase) List(articuloID string, limit, offset int) (*dto.HistorialListResponse, error) {
	var (
		list []*entity.HistorialInventario
		err  error
	)
	if articuloID != "" {
		list, err = uc.repo.ListByArticulo(articuloID, limit, offset)
	} else {
		list, err = uc.repo.List(limit, offset)
	}
	if err != nil {
		return nil, err
	}
	items := make([]dto.HistorialResponse, 0, len(list))
	for _, h := range list {
		items = append(items, *toHistorialResponse(h))
	}
	return &dto.HistorialListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina solo la fila del historial. No revierte el efecto que
// el movimiento tuvo sobre el stock del artículo.
func (uc *HistorialUseCase) Delete(id string) error {
	h, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if h == nil {
		return domain.ErrHistorialNotFound
	}
	return uc.repo.Delete(id)
}

// Export genera el historial completo (hasta exportMax filas) en XLSX.
func (uc *HistorialUseCase) Export() ([]byte, error) {
	const exportMax = 10000
	list, err := uc.repo.List(exportMax, 0)
	if err != nil {
		return nil, err
	}
	return uc.exporter.Export(list)
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

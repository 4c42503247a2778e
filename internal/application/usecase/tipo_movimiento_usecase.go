package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/Steven1400999/inventario-api/internal/application/dto"
	"github.com/Steven1400999/inventario-api/internal/domain"
	"github.com/Steven1400999/inventario-api/internal/domain/entity"
	"github.com/Steven1400999/inventario-api/internal/domain/repository"
)

// TipoMovimientoUseCase casos de uso CRUD para tipos de movimiento.
// La etiqueta se valida contra la variante cerrada {Ingreso, Egreso};
// etiquetas desconocidas se rechazan aquí, no se ignoran en el motor.
type TipoMovimientoUseCase struct {
	repo repository.TipoMovimientoRepository
}

// NewTipoMovimientoUseCase construye el caso de uso.
func NewTipoMovimientoUseCase(repo repository.TipoMovimientoRepository) *TipoMovimientoUseCase {
	return &TipoMovimientoUseCase{repo: repo}
}

// Create crea un tipo de movimiento con etiqueta reconocida y única.
func (uc *TipoMovimientoUseCase) Create(in dto.TipoMovimientoRequest) (*dto.TipoMovimientoResponse, error) {
	if in.Tipo == "" {
		return nil, domain.ErrInvalidInput
	}
	if _, ok := entity.ParseMovementKind(in.Tipo); !ok {
		return nil, domain.ErrTipoNoReconocido
	}
	now := time.Now()
	tipo := &entity.TipoMovimiento{
		ID:        uuid.New().String(),
		Tipo:      in.Tipo,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(tipo); err != nil {
		return nil, err
	}
	return toTipoMovimientoResponse(tipo), nil
}

// GetByID obtiene un tipo de movimiento por ID.
func (uc *TipoMovimientoUseCase) GetByID(id string) (*dto.TipoMovimientoResponse, error) {
	tipo, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if tipo == nil {
		return nil, domain.ErrTipoMovimientoNotFound
	}
	return toTipoMovimientoResponse(tipo), nil
}

// List lista tipos de movimiento con paginación.
func (uc *TipoMovimientoUseCase) List(limit, offset int) ([]dto.TipoMovimientoResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.TipoMovimientoResponse, 0, len(list))
	for _, t := range list {
		items = append(items, *toTipoMovimientoResponse(t))
	}
	return items, nil
}

// Update reemplaza la etiqueta; debe seguir siendo reconocida.
func (uc *TipoMovimientoUseCase) Update(id string, in dto.TipoMovimientoRequest) (*dto.TipoMovimientoResponse, error) {
	if in.Tipo == "" {
		return nil, domain.ErrInvalidInput
	}
	if _, ok := entity.ParseMovementKind(in.Tipo); !ok {
		return nil, domain.ErrTipoNoReconocido
	}
	tipo, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if tipo == nil {
		return nil, domain.ErrTipoMovimientoNotFound
	}
	tipo.Tipo = in.Tipo
	tipo.UpdatedAt = time.Now()
	if err := uc.repo.Update(tipo); err != nil {
		return nil, err
	}
	return toTipoMovimientoResponse(tipo), nil
}

// Delete elimina un tipo de movimiento. Si el historial lo referencia,
// la BD lo impide y se devuelve ErrConflict.
func (uc *TipoMovimientoUseCase) Delete(id string) error {
	tipo, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if tipo == nil {
		return domain.ErrTipoMovimientoNotFound
	}
	return uc.repo.Delete(id)
}

func toTipoMovimientoResponse(t *entity.TipoMovimiento) *dto.TipoMovimientoResponse {
	if t == nil {
		return nil
	}
	return &dto.TipoMovimientoResponse{
		ID:        t.ID,
		Tipo:      t.Tipo,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/Steven1400999/inventario-api/internal/application/dto"
	"github.com/Steven1400999/inventario-api/internal/domain"
	"github.com/Steven1400999/inventario-api/internal/domain/entity"
	"github.com/Steven1400999/inventario-api/internal/domain/repository"
)

// ProveedorUseCase casos de uso CRUD para proveedores.
type ProveedorUseCase struct {
	repo repository.ProveedorRepository
}

// NewProveedorUseCase construye el caso de uso.
func NewProveedorUseCase(repo repository.ProveedorRepository) *ProveedorUseCase {
	return &ProveedorUseCase{repo: repo}
}

// Create crea un proveedor. Nombre obligatorio y único.
func (uc *ProveedorUseCase) Create(in dto.ProveedorRequest) (*dto.ProveedorResponse, error) {
	if in.Proveedor == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	proveedor := &entity.Proveedor{
		ID:        uuid.New().String(),
		Nombre:    in.Proveedor,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(proveedor); err != nil {
		return nil, err
	}
	return toProveedorResponse(proveedor), nil
}

// GetByID obtiene un proveedor por ID.
func (uc *ProveedorUseCase) GetByID(id string) (*dto.ProveedorResponse, error) {
	proveedor, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if proveedor == nil {
		return nil, domain.ErrProveedorNotFound
	}
	return toProveedorResponse(proveedor), nil
}

// List lista proveedores con paginación.
func (uc *ProveedorUseCase) List(limit, offset int) ([]dto.ProveedorResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProveedorResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProveedorResponse(p))
	}
	return items, nil
}

// Update reemplaza el nombre del proveedor.
func (uc *ProveedorUseCase) Update(id string, in dto.ProveedorRequest) (*dto.ProveedorResponse, error) {
	if in.Proveedor == "" {
		return nil, domain.ErrInvalidInput
	}
	proveedor, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if proveedor == nil {
		return nil, domain.ErrProveedorNotFound
	}
	proveedor.Nombre = in.Proveedor
	proveedor.UpdatedAt = time.Now()
	if err := uc.repo.Update(proveedor); err != nil {
		return nil, err
	}
	return toProveedorResponse(proveedor), nil
}

// Delete elimina un proveedor. Si algún artículo lo referencia, la BD
// lo impide y se devuelve ErrConflict.
func (uc *ProveedorUseCase) Delete(id string) error {
	proveedor, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if proveedor == nil {
		return domain.ErrProveedorNotFound
	}
	return uc.repo.Delete(id)
}

func toProveedorResponse(p *entity.Proveedor) *dto.ProveedorResponse {
	if p == nil {
		return nil
	}
	return &dto.ProveedorResponse{
		ID:        p.ID,
		Proveedor: p.Nombre,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

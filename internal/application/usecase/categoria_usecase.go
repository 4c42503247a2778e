package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/Steven1400999/inventario-api/internal/application/dto"
	"github.com/Steven1400999/inventario-api/internal/domain"
	"github.com/Steven1400999/inventario-api/internal/domain/entity"
	"github.com/Steven1400999/inventario-api/internal/domain/repository"
)

// CategoriaUseCase casos de uso CRUD para categorías.
type CategoriaUseCase struct {
	repo repository.CategoriaRepository
}

// NewCategoriaUseCase construye el caso de uso.
func NewCategoriaUseCase(repo repository.CategoriaRepository) *CategoriaUseCase {
	return &CategoriaUseCase{repo: repo}
}

// Create crea una categoría. Nombre obligatorio y único.
func (uc *CategoriaUseCase) Create(in dto.CategoriaRequest) (*dto.CategoriaResponse, error) {
	if in.Categoria == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	categoria := &entity.Categoria{
		ID:        uuid.New().String(),
		Nombre:    in.Categoria,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(categoria); err != nil {
		return nil, err
	}
	return toCategoriaResponse(categoria), nil
}

// GetByID obtiene una categoría por ID.
func (uc *CategoriaUseCase) GetByID(id string) (*dto.CategoriaResponse, error) {
	categoria, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if categoria == nil {
		return nil, domain.ErrCategoriaNotFound
	}
	return toCategoriaResponse(categoria), nil
}

// List lista categorías con paginación.
func (uc *CategoriaUseCase) List(limit, offset int) ([]dto.CategoriaResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoriaResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCategoriaResponse(c))
	}
	return items, nil
}

// Update reemplaza el nombre de la categoría.
func (uc *CategoriaUseCase) Update(id string, in dto.CategoriaRequest) (*dto.CategoriaResponse, error) {
	if in.Categoria == "" {
		return nil, domain.ErrInvalidInput
	}
	categoria, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if categoria == nil {
		return nil, domain.ErrCategoriaNotFound
	}
	categoria.Nombre = in.Categoria
	categoria.UpdatedAt = time.Now()
	if err := uc.repo.Update(categoria); err != nil {
		return nil, err
	}
	return toCategoriaResponse(categoria), nil
}

// Delete elimina una categoría. Si algún artículo la referencia, la BD
// lo impide y se devuelve ErrConflict.
func (uc *CategoriaUseCase) Delete(id string) error {
	categoria, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if categoria == nil {
		return domain.ErrCategoriaNotFound
	}
	return uc.repo.Delete(id)
}

func toCategoriaResponse(c *entity.Categoria) *dto.CategoriaResponse {
	if c == nil {
		return nil
	}
	return &dto.CategoriaResponse{
		ID:        c.ID,
		Categoria: c.Nombre,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

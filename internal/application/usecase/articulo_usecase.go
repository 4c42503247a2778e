package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Steven1400999/inventario-api/internal/application/dto"
	"github.com/Steven1400999/inventario-api/internal/domain"
	"github.com/Steven1400999/inventario-api/internal/domain/entity"
	"github.com/Steven1400999/inventario-api/internal/domain/repository"
)

// ArticuloUseCase casos de uso CRUD para artículos. El stock se fija al
// crear y después solo cambia vía movimientos de inventario (o un
// reemplazo explícito por PATCH, como hace la API).
type ArticuloUseCase struct {
	repo          repository.ArticuloRepository
	categoriaRepo repository.CategoriaRepository
	proveedorRepo repository.ProveedorRepository
}

// NewArticuloUseCase construye el caso de uso.
func NewArticuloUseCase(
	repo repository.ArticuloRepository,
	categoriaRepo repository.CategoriaRepository,
	proveedorRepo repository.ProveedorRepository,
) *ArticuloUseCase {
	return &ArticuloUseCase{repo: repo, categoriaRepo: categoriaRepo, proveedorRepo: proveedorRepo}
}

// validate revisa campos obligatorios y referencias del request.
func (uc *ArticuloUseCase) validate(in dto.ArticuloRequest) error {
	if in.Nombre == "" || in.CategoriaID == "" || in.ProveedorID == "" {
		return domain.ErrInvalidInput
	}
	if in.Stock < 0 || in.Precio.LessThan(decimal.Zero) {
		return domain.ErrInvalidInput
	}
	categoria, err := uc.categoriaRepo.GetByID(in.CategoriaID)
	if err != nil {
		return err
	}
	if categoria == nil {
		return domain.ErrCategoriaNotFound
	}
	proveedor, err := uc.proveedorRepo.GetByID(in.ProveedorID)
	if err != nil {
		return err
	}
	if proveedor == nil {
		return domain.ErrProveedorNotFound
	}
	return nil
}

// Create crea un artículo nuevo.
func (uc *ArticuloUseCase) Create(in dto.ArticuloRequest) (*dto.ArticuloResponse, error) {
	if err := uc.validate(in); err != nil {
		return nil, err
	}
	now := time.Now()
	articulo := &entity.Articulo{
		ID:          uuid.New().String(),
		Nombre:      in.Nombre,
		Descripcion: in.Descripcion,
		CategoriaID: in.CategoriaID,
		ProveedorID: in.ProveedorID,
		Stock:       in.Stock,
		Precio:      in.Precio,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(articulo); err != nil {
		return nil, err
	}
	return toArticuloResponse(articulo), nil
}

// GetByID obtiene un artículo por ID.
func (uc *ArticuloUseCase) GetByID(id string) (*dto.ArticuloResponse, error) {
	articulo, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if articulo == nil {
		return nil, domain.ErrArticuloNotFound
	}
	return toArticuloResponse(articulo), nil
}

// List lista artículos con paginación.
func (uc *ArticuloUseCase) List(limit, offset int) (*dto.ArticuloListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ArticuloResponse, 0, len(list))
	for _, a := range list {
		items = append(items, *toArticuloResponse(a))
	}
	return &dto.ArticuloListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update reemplaza todos los campos mutables del artículo (PATCH de la
// API original: mismo parser que el POST, reemplazo completo).
func (uc *ArticuloUseCase) Update(id string, in dto.ArticuloRequest) (*dto.ArticuloResponse, error) {
	articulo, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if articulo == nil {
		return nil, domain.ErrArticuloNotFound
	}
	if err := uc.validate(in); err != nil {
		return nil, err
	}
	articulo.Nombre = in.Nombre
	articulo.Descripcion = in.Descripcion
	articulo.CategoriaID = in.CategoriaID
	articulo.ProveedorID = in.ProveedorID
	articulo.Stock = in.Stock
	articulo.Precio = in.Precio
	articulo.UpdatedAt = time.Now()
	if err := uc.repo.Update(articulo); err != nil {
		return nil, err
	}
	return toArticuloResponse(articulo), nil
}

// Delete elimina un artículo; la BD elimina en cascada su historial.
func (uc *ArticuloUseCase) Delete(id string) error {
	articulo, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if articulo == nil {
		return domain.ErrArticuloNotFound
	}
	return uc.repo.Delete(id)
}

func toArticuloResponse(a *entity.Articulo) *dto.ArticuloResponse {
	if a == nil {
		return nil
	}
	return &dto.ArticuloResponse{
		ID:          a.ID,
		Nombre:      a.Nombre,
		Descripcion: a.Descripcion,
		CategoriaID: a.CategoriaID,
		ProveedorID: a.ProveedorID,
		Stock:       a.Stock,
		Precio:      a.Precio,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

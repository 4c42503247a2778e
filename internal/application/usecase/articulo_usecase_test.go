package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Steven1400999/inventario-api/internal/application/dto"
	"github.com/Steven1400999/inventario-api/internal/application/usecase"
	"github.com/Steven1400999/inventario-api/internal/domain"
	"github.com/Steven1400999/inventario-api/internal/domain/entity"
)

type memArticuloRepo struct {
	items map[string]*entity.Articulo
}

func newMemArticuloRepo() *memArticuloRepo {
	return &memArticuloRepo{items: map[string]*entity.Articulo{}}
}

func (r *memArticuloRepo) Create(a *entity.Articulo) error {
	r.items[a.ID] = a
	return nil
}

func (r *memArticuloRepo) GetByID(id string) (*entity.Articulo, error) {
	a, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return a, nil
}

func (r *memArticuloRepo) GetForUpdate(id string) (*entity.Articulo, error) {
	return r.GetByID(id)
}

func (r *memArticuloRepo) List(limit, offset int) ([]*entity.Articulo, error) {
	var list []*entity.Articulo
	for _, a := range r.items {
		list = append(list, a)
	}
	return list, nil
}

func (r *memArticuloRepo) Update(a *entity.Articulo) error {
	r.items[a.ID] = a
	return nil
}

func (r *memArticuloRepo) UpdateStock(id string, stock int64) error {
	if a, ok := r.items[id]; ok {
		a.Stock = stock
	}
	return nil
}

func (r *memArticuloRepo) Delete(id string) error {
	delete(r.items, id)
	return nil
}

type memCategoriaRepo struct {
	items map[string]*entity.Categoria
}

func (r *memCategoriaRepo) Create(c *entity.Categoria) error { r.items[c.ID] = c; return nil }
func (r *memCategoriaRepo) Update(c *entity.Categoria) error { r.items[c.ID] = c; return nil }
func (r *memCategoriaRepo) Delete(id string) error { delete(r.items, id); return nil }
func (r *memCategoriaRepo) GetByID(id string) (*entity.Categoria, error) {
	c, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return c, nil
}
func (r *memCategoriaRepo) List(limit, offset int) ([]*entity.Categoria, error) {
	var list []*entity.Categoria
	for _, c := range r.items {
		list = append(list, c)
	}
	return list, nil
}

type memProveedorRepo struct {
	items map[string]*entity.Proveedor
}

func (r *memProveedorRepo) Create(p *entity.Proveedor) error { r.items[p.ID] = p; return nil }
func (r *memProveedorRepo) Update(p *entity.Proveedor) error { r.items[p.ID] = p; return nil }
func (r *memProveedorRepo) Delete(id string) error { delete(r.items, id); return nil }
func (r *memProveedorRepo) GetByID(id string) (*entity.Proveedor, error) {
	p, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return p, nil
}
func (r *memProveedorRepo) List(limit, offset int) ([]*entity.Proveedor, error) {
	var list []*entity.Proveedor
	for _, p := range r.items {
		list = append(list, p)
	}
	return list, nil
}

func nuevoArticuloUseCase(t *testing.T) (*usecase.ArticuloUseCase, *memArticuloRepo) {
	t.Helper()
	repo := newMemArticuloRepo()
	categorias := &memCategoriaRepo{items: map[string]*entity.Categoria{
		"cat-1": {ID: "cat-1", Nombre: "Ferretería"},
	}}
	proveedores := &memProveedorRepo{items: map[string]*entity.Proveedor{
		"prov-1": {ID: "prov-1", Nombre: "ACME"},
	}}
	return usecase.NewArticuloUseCase(repo, categorias, proveedores), repo
}

func articuloValido() dto.ArticuloRequest {
	return dto.ArticuloRequest{
		Nombre:      "Tornillo 3/8",
		Descripcion: "Caja x100",
		CategoriaID: "cat-1",
		ProveedorID: "prov-1",
		Stock:       10,
		Precio:      decimal.NewFromFloat(1.50),
	}
}

func TestArticuloCreate(t *testing.T) {
	uc, repo := nuevoArticuloUseCase(t)

	out, err := uc.Create(articuloValido())
	require.NoError(t, err)
	assert.NotEmpty(t, out.ID)
	assert.Equal(t, int64(10), out.Stock)
	assert.Len(t, repo.items, 1)
}

// Crear con categoría o proveedor inexistente falla con el NotFound
// específico de la referencia rota.
func TestArticuloCreate_ReferenciasRotas(t *testing.T) {
	uc, _ := nuevoArticuloUseCase(t)

	in := articuloValido()
	in.CategoriaID = "no-existe"
	_, err := uc.Create(in)
	assert.ErrorIs(t, err, domain.ErrCategoriaNotFound)

	in = articuloValido()
	in.ProveedorID = "no-existe"
	_, err = uc.Create(in)
	assert.ErrorIs(t, err, domain.ErrProveedorNotFound)
}

func TestArticuloCreate_Invalido(t *testing.T) {
	uc, _ := nuevoArticuloUseCase(t)

	in := articuloValido()
	in.Nombre = ""
	_, err := uc.Create(in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	in = articuloValido()
	in.Stock = -1
	_, err = uc.Create(in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	in = articuloValido()
	in.Precio = decimal.NewFromFloat(-0.01)
	_, err = uc.Create(in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Update reemplaza todos los campos mutables (semántica del PATCH).
func TestArticuloUpdate_ReemplazoCompleto(t *testing.T) {
	uc, _ := nuevoArticuloUseCase(t)

	creado, err := uc.Create(articuloValido())
	require.NoError(t, err)

	in := articuloValido()
	in.Nombre = "Tornillo 1/2"
	in.Stock = 99
	out, err := uc.Update(creado.ID, in)
	require.NoError(t, err)
	assert.Equal(t, "Tornillo 1/2", out.Nombre)
	assert.Equal(t, int64(99), out.Stock)
	assert.Equal(t, creado.ID, out.ID)
}

func TestArticuloGetByID_NoExiste(t *testing.T) {
	uc, _ := nuevoArticuloUseCase(t)

	_, err := uc.GetByID("no-existe")
	assert.ErrorIs(t, err, domain.ErrArticuloNotFound)
}

func TestArticuloDelete(t *testing.T) {
	uc, repo := nuevoArticuloUseCase(t)

	creado, err := uc.Create(articuloValido())
	require.NoError(t, err)

	require.NoError(t, uc.Delete(creado.ID))
	assert.Empty(t, repo.items)

	err = uc.Delete(creado.ID)
	assert.ErrorIs(t, err, domain.ErrArticuloNotFound)
}

package inventory_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Steven1400999/inventario-api/internal/application/dto"
	"github.com/Steven1400999/inventario-api/internal/application/inventory"
	"github.com/Steven1400999/inventario-api/internal/domain"
	"github.com/Steven1400999/inventario-api/internal/domain/entity"
	"github.com/Steven1400999/inventario-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeArticuloRepo struct {
	items map[string]*entity.Articulo
}

func newFakeArticuloRepo() *fakeArticuloRepo {
	return &fakeArticuloRepo{items: map[string]*entity.Articulo{}}
}

func (r *fakeArticuloRepo) Create(a *entity.Articulo) error {
	r.items[a.ID] = a
	return nil
}

func (r *fakeArticuloRepo) GetByID(id string) (*entity.Articulo, error) {
	a, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	copia := *a
	return &copia, nil
}

// GetForUpdate en el fake no bloquea nada; devuelve lo mismo que GetByID.
func (r *fakeArticuloRepo) GetForUpdate(id string) (*entity.Articulo, error) {
	return r.GetByID(id)
}

func (r *fakeArticuloRepo) List(limit, offset int) ([]*entity.Articulo, error) {
	var list []*entity.Articulo
	for _, a := range r.items {
		list = append(list, a)
	}
	return list, nil
}

func (r *fakeArticuloRepo) Update(a *entity.Articulo) error {
	r.items[a.ID] = a
	return nil
}

func (r *fakeArticuloRepo) UpdateStock(id string, stock int64) error {
	if a, ok := r.items[id]; ok {
		a.Stock = stock
	}
	return nil
}

func (r *fakeArticuloRepo) Delete(id string) error {
	delete(r.items, id)
	return nil
}

type fakeHistorialRepo struct {
	items []*entity.HistorialInventario
}

func (r *fakeHistorialRepo) Create(h *entity.HistorialInventario) error {
	copia := *h
	r.items = append(r.items, &copia)
	return nil
}

func (r *fakeHistorialRepo) GetByID(id string) (*entity.HistorialInventario, error) {
	for _, h := range r.items {
		if h.ID == id {
			copia := *h
			return &copia, nil
		}
	}
	return nil, nil
}

func (r *fakeHistorialRepo) List(limit, offset int) ([]*entity.HistorialInventario, error) {
	return r.items, nil
}

func (r *fakeHistorialRepo) ListByArticulo(articuloID string, limit, offset int) ([]*entity.HistorialInventario, error) {
	var list []*entity.HistorialInventario
	for _, h := range r.items {
		if h.ArticuloID == articuloID {
			list = append(list, h)
		}
	}
	return list, nil
}

func (r *fakeHistorialRepo) Delete(id string) error {
	for i, h := range r.items {
		if h.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeTipoRepo struct {
	items map[string]*entity.TipoMovimiento
}

func newFakeTipoRepo() *fakeTipoRepo {
	return &fakeTipoRepo{items: map[string]*entity.TipoMovimiento{}}
}

func (r *fakeTipoRepo) Create(t *entity.TipoMovimiento) error {
	r.items[t.ID] = t
	return nil
}

func (r *fakeTipoRepo) GetByID(id string) (*entity.TipoMovimiento, error) {
	t, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return t, nil
}

func (r *fakeTipoRepo) List(limit, offset int) ([]*entity.TipoMovimiento, error) {
	var list []*entity.TipoMovimiento
	for _, t := range r.items {
		list = append(list, t)
	}
	return list, nil
}

func (r *fakeTipoRepo) Update(t *entity.TipoMovimiento) error {
	r.items[t.ID] = t
	return nil
}

func (r *fakeTipoRepo) Delete(id string) error {
	delete(r.items, id)
	return nil
}

// fakeTxRunner simula la transacción: toma un snapshot antes de ejecutar
// fn y lo restaura si fn falla (rollback).
type fakeTxRunner struct {
	art  *fakeArticuloRepo
	hist *fakeHistorialRepo
}

func (r *fakeTxRunner) Run(ctx context.Context, fn func(
	artRepo repository.ArticuloRepository,
	histRepo repository.HistorialRepository,
) error) error {
	artBackup := map[string]*entity.Articulo{}
	for id, a := range r.art.items {
		copia := *a
		artBackup[id] = &copia
	}
	histLen := len(r.hist.items)

	if err := fn(r.art, r.hist); err != nil {
		r.art.items = artBackup
		r.hist.items = r.hist.items[:histLen]
		return err
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Armado del escenario
// ──────────────────────────────────────────────────────────────────────────────

const (
	articuloID = "art-1"
	ingresoID  = "tipo-ingreso"
	egresoID   = "tipo-egreso"
)

type escenario struct {
	uc   *inventory.RegisterMovementUseCase
	art  *fakeArticuloRepo
	hist *fakeHistorialRepo
	tipo *fakeTipoRepo
}

// nuevoEscenario arma un artículo con el stock indicado y los tipos
// Ingreso y Egreso dados de alta.
func nuevoEscenario(t *testing.T, stock int64) *escenario {
	t.Helper()
	art := newFakeArticuloRepo()
	hist := &fakeHistorialRepo{}
	tipo := newFakeTipoRepo()

	now := time.Now()
	require.NoError(t, art.Create(&entity.Articulo{
		ID:          articuloID,
		Nombre:      "Tornillo 3/8",
		CategoriaID: "cat-1",
		ProveedorID: "prov-1",
		Stock:       stock,
		Precio:      decimal.NewFromFloat(1.50),
		CreatedAt:   now,
		UpdatedAt:   now,
	}))
	require.NoError(t, tipo.Create(&entity.TipoMovimiento{ID: ingresoID, Tipo: "Ingreso"}))
	require.NoError(t, tipo.Create(&entity.TipoMovimiento{ID: egresoID, Tipo: "Egreso"}))

	runner := &fakeTxRunner{art: art, hist: hist}
	return &escenario{
		uc:   inventory.NewRegisterMovementUseCase(runner, tipo),
		art:  art,
		hist: hist,
		tipo: tipo,
	}
}

func (e *escenario) stock(t *testing.T) int64 {
	t.Helper()
	a, err := e.art.GetByID(articuloID)
	require.NoError(t, err)
	require.NotNil(t, a)
	return a.Stock
}

func registrar(t *testing.T, e *escenario, tipoID string, cantidad int64) (*dto.HistorialResponse, error) {
	t.Helper()
	return e.uc.RegisterMovement(context.Background(), dto.RegisterMovementRequest{
		ArticuloID:       articuloID,
		TipoMovimientoID: tipoID,
		Cantidad:         cantidad,
	})
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests del motor de movimientos
// ──────────────────────────────────────────────────────────────────────────────

// Ingreso suma la cantidad al stock y agrega exactamente un registro.
func TestRegisterMovement_IngresoSumaStock(t *testing.T) {
	e := nuevoEscenario(t, 10)

	out, err := registrar(t, e, ingresoID, 5)
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Equal(t, int64(15), e.stock(t), "el stock debe quedar en 10+5")
	assert.Len(t, e.hist.items, 1, "debe agregarse exactamente un registro al historial")
	assert.Equal(t, articuloID, out.ArticuloID)
	assert.Equal(t, ingresoID, out.TipoMovimientoID)
	assert.Equal(t, int64(5), out.Cantidad)
	assert.False(t, out.FechaMovimiento.IsZero(), "la fecha la asigna el servidor")
}

// Egreso con stock suficiente resta la cantidad.
func TestRegisterMovement_EgresoRestaStock(t *testing.T) {
	e := nuevoEscenario(t, 10)

	_, err := registrar(t, e, egresoID, 4)
	require.NoError(t, err)

	assert.Equal(t, int64(6), e.stock(t))
	assert.Len(t, e.hist.items, 1)
}

// Egreso por el total del stock deja el stock en cero (borde q == s).
func TestRegisterMovement_EgresoTotalDejaCero(t *testing.T) {
	e := nuevoEscenario(t, 10)

	_, err := registrar(t, e, egresoID, 10)
	require.NoError(t, err)

	assert.Equal(t, int64(0), e.stock(t))
}

// Egreso mayor al stock falla con ErrInsufficientStock sin tocar nada.
func TestRegisterMovement_EgresoInsuficiente(t *testing.T) {
	e := nuevoEscenario(t, 10)

	_, err := registrar(t, e, egresoID, 11)
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.Equal(t, int64(10), e.stock(t), "el stock no debe cambiar")
	assert.Empty(t, e.hist.items, "no debe escribirse ningún registro en el historial")
}

// Artículo inexistente: NotFound específico y ningún cambio de estado.
func TestRegisterMovement_ArticuloInexistente(t *testing.T) {
	e := nuevoEscenario(t, 10)

	_, err := e.uc.RegisterMovement(context.Background(), dto.RegisterMovementRequest{
		ArticuloID:       "no-existe",
		TipoMovimientoID: ingresoID,
		Cantidad:         1,
	})
	require.ErrorIs(t, err, domain.ErrArticuloNotFound)
	assert.Empty(t, e.hist.items)
}

// Tipo de movimiento inexistente: NotFound específico y ningún cambio.
func TestRegisterMovement_TipoInexistente(t *testing.T) {
	e := nuevoEscenario(t, 10)

	_, err := registrar(t, e, "no-existe", 1)
	require.ErrorIs(t, err, domain.ErrTipoMovimientoNotFound)

	assert.Equal(t, int64(10), e.stock(t))
	assert.Empty(t, e.hist.items)
}

// Cantidad cero o negativa se rechaza (endurecimiento deliberado sobre
// el comportamiento de referencia).
func TestRegisterMovement_CantidadNoPositiva(t *testing.T) {
	e := nuevoEscenario(t, 10)

	for _, cantidad := range []int64{0, -3} {
		_, err := registrar(t, e, ingresoID, cantidad)
		require.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad %d debe rechazarse", cantidad)
	}
	assert.Equal(t, int64(10), e.stock(t))
	assert.Empty(t, e.hist.items)
}

// Etiqueta de tipo no reconocida: se rechaza en vez de omitir el ajuste
// en silencio; no se escribe registro ni cambia el stock.
func TestRegisterMovement_TipoNoReconocido(t *testing.T) {
	e := nuevoEscenario(t, 10)
	require.NoError(t, e.tipo.Create(&entity.TipoMovimiento{ID: "tipo-raro", Tipo: "Prestamo"}))

	_, err := registrar(t, e, "tipo-raro", 5)
	require.ErrorIs(t, err, domain.ErrTipoNoReconocido)

	assert.Equal(t, int64(10), e.stock(t))
	assert.Empty(t, e.hist.items)
}

// Escenario encadenado: 10 → Ingreso 5 → Egreso 3 → Egreso 999 (falla).
func TestRegisterMovement_Encadenado(t *testing.T) {
	e := nuevoEscenario(t, 10)

	_, err := registrar(t, e, ingresoID, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(15), e.stock(t))
	assert.Len(t, e.hist.items, 1)

	_, err = registrar(t, e, egresoID, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(12), e.stock(t), "el egreso parte del stock ya incrementado")
	assert.Len(t, e.hist.items, 2)

	_, err = registrar(t, e, egresoID, 999)
	require.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, int64(12), e.stock(t), "el intento fallido no debe alterar el stock")
	assert.Len(t, e.hist.items, 2, "el intento fallido no debe agregar registros")
}

package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Steven1400999/inventario-api/internal/application/dto"
	"github.com/Steven1400999/inventario-api/internal/application/inventory"
	"github.com/Steven1400999/inventario-api/internal/application/usecase"
	"github.com/Steven1400999/inventario-api/internal/domain/entity"
	"github.com/Steven1400999/inventario-api/internal/domain/repository"
	httpiface "github.com/Steven1400999/inventario-api/internal/interfaces/http"
)

type stubArticuloRepo struct {
	items map[string]*entity.Articulo
}

func (r *stubArticuloRepo) Create(a *entity.Articulo) error { r.items[a.ID] = a; return nil }
func (r *stubArticuloRepo) Update(a *entity.Articulo) error { r.items[a.ID] = a; return nil }
func (r *stubArticuloRepo) Delete(id string) error          { delete(r.items, id); return nil }
func (r *stubArticuloRepo) GetByID(id string) (*entity.Articulo, error) {
	a, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return a, nil
}
func (r *stubArticuloRepo) GetForUpdate(id string) (*entity.Articulo, error) {
	return r.GetByID(id)
}
func (r *stubArticuloRepo) List(limit, offset int) ([]*entity.Articulo, error) {
	var list []*entity.Articulo
	for _, a := range r.items {
		list = append(list, a)
	}
	return list, nil
}
func (r *stubArticuloRepo) UpdateStock(id string, stock int64) error {
	if a, ok := r.items[id]; ok {
		a.Stock = stock
	}
	return nil
}

type stubHistorialRepo struct {
	items []*entity.HistorialInventario
}

func (r *stubHistorialRepo) Create(h *entity.HistorialInventario) error {
	r.items = append(r.items, h)
	return nil
}
func (r *stubHistorialRepo) GetByID(id string) (*entity.HistorialInventario, error) {
	for _, h := range r.items {
		if h.ID == id {
			return h, nil
		}
	}
	return nil, nil
}
func (r *stubHistorialRepo) List(limit, offset int) ([]*entity.HistorialInventario, error) {
	return r.items, nil
}
func (r *stubHistorialRepo) ListByArticulo(articuloID string, limit, offset int) ([]*entity.HistorialInventario, error) {
	var list []*entity.HistorialInventario
	for _, h := range r.items {
		if h.ArticuloID == articuloID {
			list = append(list, h)
		}
	}
	return list, nil
}
func (r *stubHistorialRepo) Delete(id string) error {
	for i, h := range r.items {
		if h.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return nil
}

type stubTipoRepo struct {
	items map[string]*entity.TipoMovimiento
}

func (r *stubTipoRepo) Create(t *entity.TipoMovimiento) error { r.items[t.ID] = t; return nil }
func (r *stubTipoRepo) Update(t *entity.TipoMovimiento) error { r.items[t.ID] = t; return nil }
func (r *stubTipoRepo) Delete(id string) error                { delete(r.items, id); return nil }
func (r *stubTipoRepo) GetByID(id string) (*entity.TipoMovimiento, error) {
	t, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return t, nil
}
func (r *stubTipoRepo) List(limit, offset int) ([]*entity.TipoMovimiento, error) {
	var list []*entity.TipoMovimiento
	for _, t := range r.items {
		list = append(list, t)
	}
	return list, nil
}

type stubTxRunner struct {
	art  *stubArticuloRepo
	hist *stubHistorialRepo
}

func (r *stubTxRunner) Run(ctx context.Context, fn func(
	artRepo repository.ArticuloRepository,
	histRepo repository.HistorialRepository,
) error) error {
	backup := map[string]*entity.Articulo{}
	for id, a := range r.art.items {
		copia := *a
		backup[id] = &copia
	}
	histLen := len(r.hist.items)
	if err := fn(r.art, r.hist); err != nil {
		r.art.items = backup
		r.hist.items = r.hist.items[:histLen]
		return err
	}
	return nil
}

type stubExporter struct{}

func (stubExporter) Export(items []*entity.HistorialInventario) ([]byte, error) {
	return []byte("xlsx"), nil
}

type historialApp struct {
	app   *fiber.App
	art   *stubArticuloRepo
	tipos *stubTipoRepo
}

// appHistorial monta las rutas del historial sobre fakes en memoria con
// un artículo (stock 10) y los tipos Ingreso y Egreso dados de alta.
func appHistorial(t *testing.T) *historialApp {
	t.Helper()
	art := &stubArticuloRepo{items: map[string]*entity.Articulo{
		"art-1": {
			ID:          "art-1",
			Nombre:      "Tornillo 3/8",
			CategoriaID: "cat-1",
			ProveedorID: "prov-1",
			Stock:       10,
			Precio:      decimal.NewFromFloat(1.50),
			CreatedAt:   time.Now(),
			UpdatedAt:   time.Now(),
		},
	}}
	hist := &stubHistorialRepo{}
	tipos := &stubTipoRepo{items: map[string]*entity.TipoMovimiento{
		"tipo-ingreso": {ID: "tipo-ingreso", Tipo: "Ingreso"},
		"tipo-egreso":  {ID: "tipo-egreso", Tipo: "Egreso"},
	}}

	movimientoUC := inventory.NewRegisterMovementUseCase(&stubTxRunner{art: art, hist: hist}, tipos)
	historialUC := usecase.NewHistorialUseCase(hist, stubExporter{})
	handler := httpiface.NewHistorialHandler(movimientoUC, historialUC)

	app := fiber.New()
	grupo := app.Group("/api/historial_inventario")
	grupo.Post("/", handler.RegisterMovement)
	grupo.Get("/", handler.List)
	grupo.Get("/:id", handler.GetByID)
	grupo.Delete("/:id", handler.Delete)

	return &historialApp{app: app, art: art, tipos: tipos}
}

func postMovimiento(t *testing.T, app *fiber.App, in dto.RegisterMovementRequest) *http.Response {
	t.Helper()
	body, err := json.Marshal(in)
	require.NoError(t, err)
	req := httptest.NewRequest("POST", "/api/historial_inventario/", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func decodeError(t *testing.T, resp *http.Response) dto.ErrorResponse {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out dto.ErrorResponse
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

func TestHistorialPost_IngresoCreado(t *testing.T) {
	ha := appHistorial(t)

	resp := postMovimiento(t, ha.app, dto.RegisterMovementRequest{
		ArticuloID:       "art-1",
		TipoMovimientoID: "tipo-ingreso",
		Cantidad:         5,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out dto.HistorialResponse
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, "art-1", out.ArticuloID)
	assert.Equal(t, int64(5), out.Cantidad)
	assert.Equal(t, int64(15), ha.art.items["art-1"].Stock)
}

// Egreso por más del stock: 400 con código INSUFFICIENT_STOCK y el
// stock intacto.
func TestHistorialPost_StockInsuficiente(t *testing.T) {
	ha := appHistorial(t)

	resp := postMovimiento(t, ha.app, dto.RegisterMovementRequest{
		ArticuloID:       "art-1",
		TipoMovimientoID: "tipo-egreso",
		Cantidad:         999,
	})
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INSUFFICIENT_STOCK", decodeError(t, resp).Code)
	assert.Equal(t, int64(10), ha.art.items["art-1"].Stock)
}

func TestHistorialPost_CantidadNoPositiva(t *testing.T) {
	ha := appHistorial(t)

	for _, cantidad := range []int64{0, -1} {
		resp := postMovimiento(t, ha.app, dto.RegisterMovementRequest{
			ArticuloID:       "art-1",
			TipoMovimientoID: "tipo-ingreso",
			Cantidad:         cantidad,
		})
		require.Equal(t, fiber.StatusBadRequest, resp.StatusCode, "cantidad %d", cantidad)
		assert.Equal(t, "VALIDATION", decodeError(t, resp).Code)
	}
}

func TestHistorialPost_ArticuloInexistente(t *testing.T) {
	ha := appHistorial(t)

	resp := postMovimiento(t, ha.app, dto.RegisterMovementRequest{
		ArticuloID:       "no-existe",
		TipoMovimientoID: "tipo-ingreso",
		Cantidad:         1,
	})
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", decodeError(t, resp).Code)
}

func TestHistorialPost_TipoInexistente(t *testing.T) {
	ha := appHistorial(t)

	resp := postMovimiento(t, ha.app, dto.RegisterMovementRequest{
		ArticuloID:       "art-1",
		TipoMovimientoID: "no-existe",
		Cantidad:         1,
	})
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", decodeError(t, resp).Code)
}

func TestHistorialPost_TipoNoReconocido(t *testing.T) {
	ha := appHistorial(t)
	ha.tipos.items["tipo-raro"] = &entity.TipoMovimiento{ID: "tipo-raro", Tipo: "Prestamo"}

	resp := postMovimiento(t, ha.app, dto.RegisterMovementRequest{
		ArticuloID:       "art-1",
		TipoMovimientoID: "tipo-raro",
		Cantidad:         1,
	})
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "TIPO_NO_RECONOCIDO", decodeError(t, resp).Code)
	assert.Equal(t, int64(10), ha.art.items["art-1"].Stock)
}

func TestHistorialPost_CuerpoInvalido(t *testing.T) {
	ha := appHistorial(t)

	req := httptest.NewRequest("POST", "/api/historial_inventario/", bytes.NewReader([]byte("{no-es-json")))
	req.Header.Set("Content-Type", "application/json")
	resp, err := ha.app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_BODY", decodeError(t, resp).Code)
}

func TestHistorialGetByID_NotFound(t *testing.T) {
	ha := appHistorial(t)

	req := httptest.NewRequest("GET", "/api/historial_inventario/no-existe", nil)
	resp, err := ha.app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", decodeError(t, resp).Code)
}

// Borrar un registro devuelve mensaje y deja el stock como estaba.
func TestHistorialDelete_NoTocaStock(t *testing.T) {
	ha := appHistorial(t)

	resp := postMovimiento(t, ha.app, dto.RegisterMovementRequest{
		ArticuloID:       "art-1",
		TipoMovimientoID: "tipo-ingreso",
		Cantidad:         5,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var creado dto.HistorialResponse
	require.NoError(t, json.Unmarshal(raw, &creado))

	req := httptest.NewRequest("DELETE", "/api/historial_inventario/"+creado.ID, nil)
	delResp, err := ha.app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, delResp.StatusCode)

	assert.Equal(t, int64(15), ha.art.items["art-1"].Stock, "el borrado del registro no revierte el movimiento")
}

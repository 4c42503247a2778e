package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Steven1400999/inventario-api/internal/application/auth"
	"github.com/Steven1400999/inventario-api/internal/application/inventory"
	"github.com/Steven1400999/inventario-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ArticuloUC       *usecase.ArticuloUseCase
	CategoriaUC      *usecase.CategoriaUseCase
	ProveedorUC      *usecase.ProveedorUseCase
	TipoMovimientoUC *usecase.TipoMovimientoUseCase
	HistorialUC      *usecase.HistorialUseCase
	RegisterMovement *inventory.RegisterMovementUseCase
	AuthUC           *auth.AuthUseCase
	JWTSecret        string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	articulos := protected.Group("/articulos")
	articuloHandler := NewArticuloHandler(deps.ArticuloUC)
	articulos.Post("/", articuloHandler.Create)
	articulos.Get("/", articuloHandler.List)
	articulos.Get("/:id", articuloHandler.GetByID)
	articulos.Patch("/:id", articuloHandler.Update)
	articulos.Delete("/:id", articuloHandler.Delete)

	categorias := protected.Group("/categorias")
	categoriaHandler := NewCategoriaHandler(deps.CategoriaUC)
	categorias.Post("/", categoriaHandler.Create)
	categorias.Get("/", categoriaHandler.List)
	categorias.Get("/:id", categoriaHandler.GetByID)
	categorias.Patch("/:id", categoriaHandler.Update)
	categorias.Delete("/:id", categoriaHandler.Delete)

	proveedores := protected.Group("/proveedores")
	proveedorHandler := NewProveedorHandler(deps.ProveedorUC)
	proveedores.Post("/", proveedorHandler.Create)
	proveedores.Get("/", proveedorHandler.List)
	proveedores.Get("/:id", proveedorHandler.GetByID)
	proveedores.Patch("/:id", proveedorHandler.Update)
	proveedores.Delete("/:id", proveedorHandler.Delete)

	tipos := protected.Group("/tipos_movimiento")
	tipoHandler := NewTipoMovimientoHandler(deps.TipoMovimientoUC)
	tipos.Post("/", tipoHandler.Create)
	tipos.Get("/", tipoHandler.List)
	tipos.Get("/:id", tipoHandler.GetByID)
	tipos.Patch("/:id", tipoHandler.Update)
	tipos.Delete("/:id", tipoHandler.Delete)

	historial := protected.Group("/historial_inventario")
	historialHandler := NewHistorialHandler(deps.RegisterMovement, deps.HistorialUC)
	historial.Post("/", historialHandler.RegisterMovement)
	historial.Get("/", historialHandler.List)
	historial.Get("/export", historialHandler.Export)
	historial.Get("/:id", historialHandler.GetByID)
	historial.Delete("/:id", historialHandler.Delete)
}

package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrArticuloNotFound       = errors.New("artículo no encontrado")
	ErrCategoriaNotFound      = errors.New("categoría no encontrada")
	ErrProveedorNotFound      = errors.New("proveedor no encontrado")
	ErrTipoMovimientoNotFound = errors.New("tipo de movimiento no encontrado")
	ErrHistorialNotFound      = errors.New("registro de historial no encontrado")
	ErrUsuarioNotFound        = errors.New("usuario no encontrado")
	ErrInvalidInput           = errors.New("entrada inválida")
	ErrDuplicate              = errors.New("recurso duplicado")
	ErrConflict               = errors.New("conflicto con el estado actual")
	ErrInsufficientStock      = errors.New("stock insuficiente")
	ErrTipoNoReconocido       = errors.New("tipo de movimiento no reconocido")
	ErrEmailAlreadyExists     = errors.New("el email ya está registrado")
	ErrUnauthorized           = errors.New("no autorizado")
)

package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrUnauthorized = errors.New("no autorizado")
	ErrForbidden    = errors.New("acceso denegado")

	// ErrInvalidTemplate error de configuración: plantilla de cotización desconocida.
	// No es recuperable; se propaga tal cual hasta el cliente.
	ErrInvalidTemplate = errors.New("Invalid forCompany value")
)

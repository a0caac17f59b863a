package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrDuplicate    = errors.New("recurso duplicado")
	ErrUnauthorized = errors.New("no autorizado")
	ErrForbidden    = errors.New("acceso denegado")

	// ErrMissingSimulationInput la simulación no recibió precio absoluto ni porcentaje.
	ErrMissingSimulationInput = errors.New("se requiere new_price o percentage")
)

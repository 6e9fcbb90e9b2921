package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	// ErrRemote cubre cualquier fallo del servicio de productos (red o respuesta no 2xx).
	ErrRemote = errors.New("fallo en el servicio remoto")
)

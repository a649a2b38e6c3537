package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrInputTooLarge      = errors.New("el archivo supera el tamaño máximo permitido")
	ErrUnreadableDocument = errors.New("el documento no es un PDF legible")
	ErrRender             = errors.New("no se pudo generar el informe")
)

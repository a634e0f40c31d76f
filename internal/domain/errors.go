package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound         = errors.New("recurso no encontrado")
	ErrInvalidInput     = errors.New("entrada inválida")
	ErrConflict         = errors.New("la colección cambió desde la última lectura")
	ErrUnsupportedMedia = errors.New("tipo de archivo no permitido")
	ErrFileTooLarge     = errors.New("archivo demasiado grande")
	ErrMissingFile      = errors.New("no se recibió ningún archivo")
)

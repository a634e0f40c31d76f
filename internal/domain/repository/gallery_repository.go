package repository

import "io"

// GalleryRepository persistencia de la lista de imágenes de la galería.
type GalleryRepository interface {
	CollectionRepository
}

// MediaStorage puerto para los archivos subidos al directorio público.
type MediaStorage interface {
	// Save crea name (sin sobrescribir) copiando como máximo limit bytes de r.
	// Devuelve la URL pública y los bytes escritos.
	Save(name string, r io.Reader, limit int64) (url string, written int64, err error)
	// IsLocal indica si src apunta a un archivo subido por la aplicación.
	IsLocal(src string) bool
	// Delete elimina el archivo referenciado por src. domain.ErrNotFound si no existe.
	Delete(src string) error
}

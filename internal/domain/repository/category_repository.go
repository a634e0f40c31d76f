package repository

import (
	"encoding/json"

	"github.com/jhoicas/Vitrina-web/internal/domain/entity"
)

// CollectionRepository puerto de persistencia para colecciones que se reemplazan completas (DIP).
type CollectionRepository interface {
	// Load nunca falla: un documento ausente o corrupto se lee como colección vacía.
	Load() entity.Collection
	// Replace sobrescribe el documento. Si expectedVersion no está vacío y no coincide
	// con la versión actual devuelve domain.ErrConflict sin escribir.
	Replace(items []json.RawMessage, expectedVersion string) (string, error)
}

// CategoryRepository persistencia de la lista de categorías.
type CategoryRepository interface {
	CollectionRepository
}

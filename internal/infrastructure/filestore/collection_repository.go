package filestore

import (
	"encoding/json"

	"github.com/jhoicas/Vitrina-web/internal/domain/entity"
	"github.com/jhoicas/Vitrina-web/internal/domain/repository"
)

var (
	_ repository.CategoryRepository = (*CollectionRepo)(nil)
	_ repository.GalleryRepository  = (*CollectionRepo)(nil)
)

// CollectionRepo implementación de CollectionRepository sobre un archivo JSON.
type CollectionRepo struct {
	store *Store
	path  string
}

// NewCategoryRepository adaptador de persistencia para categorías.
func NewCategoryRepository(store *Store, path string) *CollectionRepo {
	return &CollectionRepo{store: store, path: path}
}

// NewGalleryRepository adaptador de persistencia para la galería.
func NewGalleryRepository(store *Store, path string) *CollectionRepo {
	return &CollectionRepo{store: store, path: path}
}

// Load lee el documento completo.
func (r *CollectionRepo) Load() entity.Collection {
	items, version := r.store.Snapshot(r.path)
	return entity.Collection{Items: items, Version: version}
}

// Replace sobrescribe el documento completo.
func (r *CollectionRepo) Replace(items []json.RawMessage, expectedVersion string) (string, error) {
	return r.store.Replace(r.path, items, expectedVersion)
}

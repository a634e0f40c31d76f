package dto

import "github.com/jhoicas/Vitrina-web/internal/domain/entity"

// HomeView datos de la portada: primeras categorías e imágenes.
type HomeView struct {
	Categories []entity.Category
	Gallery    []entity.GalleryImage
}

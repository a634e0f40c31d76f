package usecase

import (
	"github.com/jhoicas/Vitrina-web/internal/application/dto"
	"github.com/jhoicas/Vitrina-web/internal/domain/entity"
)

const (
	homeCategories = 3
	homeImages     = 6
)

// SiteUseCase datos de solo lectura para las páginas públicas.
type SiteUseCase struct {
	categories *CategoryUseCase
	gallery    *GalleryUseCase
}

// NewSiteUseCase construye el caso de uso.
func NewSiteUseCase(categories *CategoryUseCase, gallery *GalleryUseCase) *SiteUseCase {
	return &SiteUseCase{categories: categories, gallery: gallery}
}

// Home primeras 3 categorías y primeras 6 imágenes.
func (uc *SiteUseCase) Home() dto.HomeView {
	return dto.HomeView{
		Categories: firstN(uc.categories.Categories(), homeCategories),
		Gallery:    firstN(uc.gallery.Images(), homeImages),
	}
}

// Services todas las categorías.
func (uc *SiteUseCase) Services() []entity.Category {
	return uc.categories.Categories()
}

// Gallery todas las imágenes.
func (uc *SiteUseCase) Gallery() []entity.GalleryImage {
	return uc.gallery.Images()
}

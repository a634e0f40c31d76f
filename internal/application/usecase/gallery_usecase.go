package usecase

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jhoicas/Vitrina-web/internal/application/dto"
	"github.com/jhoicas/Vitrina-web/internal/domain"
	"github.com/jhoicas/Vitrina-web/internal/domain/entity"
	"github.com/jhoicas/Vitrina-web/internal/domain/repository"
	"github.com/jhoicas/Vitrina-web/pkg/logger"
)

// GalleryUseCase lectura y reemplazo completo de la galería, más el borrado de archivos subidos.
type GalleryUseCase struct {
	repo    repository.GalleryRepository
	storage repository.MediaStorage
	strict  bool
	log     *logger.Logger
}

// NewGalleryUseCase construye el caso de uso.
func NewGalleryUseCase(repo repository.GalleryRepository, storage repository.MediaStorage, strict bool, log *logger.Logger) *GalleryUseCase {
	return &GalleryUseCase{repo: repo, storage: storage, strict: strict, log: log.Component("gallery")}
}

// List devuelve la galería tal como está guardada.
func (uc *GalleryUseCase) List() dto.CollectionResponse {
	c := uc.repo.Load()
	return dto.CollectionResponse{Items: c.Items, Version: c.Version}
}

// Replace sobrescribe la galería completa con items.
func (uc *GalleryUseCase) Replace(items []json.RawMessage, ifMatch string) (string, error) {
	if uc.strict {
		if err := validateItems[entity.GalleryImage](items); err != nil {
			return "", fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}
	}
	version, err := uc.repo.Replace(items, ifMatch)
	if err != nil {
		return "", err
	}
	uc.log.Info().Int("count", len(items)).Msg("galería guardada")
	return version, nil
}

// Images vista tipada para renderizar páginas.
func (uc *GalleryUseCase) Images() []entity.GalleryImage {
	return decodeItems[entity.GalleryImage](uc.repo.Load().Items, uc.log, "gallery_image")
}

// DeleteImage elimina el archivo detrás de src si es un upload local. Las URLs externas
// no tocan el sistema de archivos. Devuelve si se borró algo.
func (uc *GalleryUseCase) DeleteImage(src string) (bool, error) {
	src = strings.TrimSpace(src)
	if src == "" {
		return false, fmt.Errorf("%w: src es requerido", domain.ErrInvalidInput)
	}
	if !uc.storage.IsLocal(src) {
		return false, nil
	}
	err := uc.storage.Delete(src)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, domain.ErrNotFound):
		uc.log.Warn().Str("src", src).Msg("archivo a eliminar no existe")
		return false, nil
	case errors.Is(err, domain.ErrInvalidInput):
		return false, err
	default:
		uc.log.Error().Err(err).Str("src", src).Msg("no se pudo eliminar archivo")
		return false, err
	}
}

package usecase

import (
	"encoding/json"
	"fmt"

	"github.com/jhoicas/Vitrina-web/internal/application/dto"
	"github.com/jhoicas/Vitrina-web/internal/domain"
	"github.com/jhoicas/Vitrina-web/internal/domain/entity"
	"github.com/jhoicas/Vitrina-web/internal/domain/repository"
	"github.com/jhoicas/Vitrina-web/pkg/logger"
)

// CategoryUseCase lectura y reemplazo completo de la lista de categorías.
type CategoryUseCase struct {
	repo   repository.CategoryRepository
	strict bool
	log    *logger.Logger
}

// NewCategoryUseCase construye el caso de uso. Con strict=true se validan las entidades antes de guardar.
func NewCategoryUseCase(repo repository.CategoryRepository, strict bool, log *logger.Logger) *CategoryUseCase {
	return &CategoryUseCase{repo: repo, strict: strict, log: log.Component("categories")}
}

// List devuelve la lista tal como está guardada.
func (uc *CategoryUseCase) List() dto.CollectionResponse {
	c := uc.repo.Load()
	return dto.CollectionResponse{Items: c.Items, Version: c.Version}
}

// Replace sobrescribe la lista completa con items, sin modificarlos.
func (uc *CategoryUseCase) Replace(items []json.RawMessage, ifMatch string) (string, error) {
	if uc.strict {
		if err := validateItems[entity.Category](items); err != nil {
			return "", fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}
	}
	version, err := uc.repo.Replace(items, ifMatch)
	if err != nil {
		return "", err
	}
	uc.log.Info().Int("count", len(items)).Msg("categorías guardadas")
	return version, nil
}

// Categories vista tipada para renderizar páginas.
func (uc *CategoryUseCase) Categories() []entity.Category {
	return decodeItems[entity.Category](uc.repo.Load().Items, uc.log, "category")
}

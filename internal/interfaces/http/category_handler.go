package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Vitrina-web/internal/application/usecase"
	"github.com/jhoicas/Vitrina-web/pkg/logger"
)

// CategoryHandler maneja las peticiones HTTP para la lista de categorías.
type CategoryHandler struct {
	uc  *usecase.CategoryUseCase
	log *logger.Logger
}

// NewCategoryHandler construye el handler.
func NewCategoryHandler(uc *usecase.CategoryUseCase, log *logger.Logger) *CategoryHandler {
	return &CategoryHandler{uc: uc, log: log}
}

// List godoc
// @Summary      Listar categorías
// @Tags         categories
// @Produce      json
// @Success      200  {array}  entity.Category
// @Header       200  {string}  ETag  "versión del documento"
// @Router       /api/categories [get]
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	return writeCollection(c, h.uc.List())
}

// Replace godoc
// @Summary      Reemplazar todas las categorías
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        If-Match  header  string  false  "versión esperada (ETag)"
// @Param        body  body  []entity.Category  true  "Colección completa"
// @Success      200   {object}  dto.SuccessResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.SaveFailedResponse
// @Router       /api/categories [post]
func (h *CategoryHandler) Replace(c *fiber.Ctx) error {
	return replaceCollection(c, h.uc.Replace, "categories", h.log)
}

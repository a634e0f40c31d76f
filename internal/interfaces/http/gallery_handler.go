package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Vitrina-web/internal/application/dto"
	"github.com/jhoicas/Vitrina-web/internal/application/usecase"
	"github.com/jhoicas/Vitrina-web/internal/domain"
	"github.com/jhoicas/Vitrina-web/pkg/logger"
)

// GalleryHandler maneja las peticiones HTTP para la galería.
type GalleryHandler struct {
	uc  *usecase.GalleryUseCase
	log *logger.Logger
}

// NewGalleryHandler construye el handler.
func NewGalleryHandler(uc *usecase.GalleryUseCase, log *logger.Logger) *GalleryHandler {
	return &GalleryHandler{uc: uc, log: log}
}

// List godoc
// @Summary      Listar imágenes de la galería
// @Tags         gallery
// @Produce      json
// @Success      200  {array}  entity.GalleryImage
// @Router       /api/gallery [get]
func (h *GalleryHandler) List(c *fiber.Ctx) error {
	return writeCollection(c, h.uc.List())
}

// Replace godoc
// @Summary      Reemplazar toda la galería
// @Tags         gallery
// @Accept       json
// @Produce      json
// @Param        If-Match  header  string  false  "versión esperada (ETag)"
// @Param        body  body  []entity.GalleryImage  true  "Colección completa"
// @Success      200   {object}  dto.SuccessResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.SaveFailedResponse
// @Router       /api/gallery [post]
func (h *GalleryHandler) Replace(c *fiber.Ctx) error {
	return replaceCollection(c, h.uc.Replace, "gallery", h.log)
}

// DeleteImage godoc
// @Summary      Eliminar el archivo subido de una imagen
// @Description  Solo borra si src está bajo el prefijo de uploads; las URLs externas se ignoran.
// @Tags         gallery
// @Accept       json
// @Produce      json
// @Param        body  body  dto.DeleteImageRequest  true  "src de la imagen"
// @Success      200   {object}  dto.DeleteImageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/gallery/image [delete]
func (h *GalleryHandler) DeleteImage(c *fiber.Ctx) error {
	var in dto.DeleteImageRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	deleted, err := h.uc.DeleteImage(in.Src)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "DELETE_FAILED", Message: "no se pudo eliminar el archivo"})
	}
	return c.JSON(dto.DeleteImageResponse{Success: true, Deleted: deleted})
}

package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Vitrina-web/internal/application/dto"
	"github.com/jhoicas/Vitrina-web/internal/application/usecase"
	"github.com/jhoicas/Vitrina-web/internal/domain"
)

// uploadField nombre del campo multipart.
const uploadField = "image"

// UploadHandler recibe un archivo por petición, solo en el campo image.
type UploadHandler struct {
	uc *usecase.UploadUseCase
}

// NewUploadHandler construye el handler.
func NewUploadHandler(uc *usecase.UploadUseCase) *UploadHandler {
	return &UploadHandler{uc: uc}
}

// Upload godoc
// @Summary      Subir imagen o video
// @Tags         upload
// @Accept       multipart/form-data
// @Produce      json
// @Param        image  formData  file  true  "jpg, jpeg, png, gif, webp o mp4 (máx. 50 MiB)"
// @Success      200    {object}  dto.UploadResponse
// @Failure      400    {object}  dto.ErrorResponse
// @Failure      413    {object}  dto.ErrorResponse
// @Failure      500    {object}  dto.ErrorResponse
// @Router       /api/upload [post]
func (h *UploadHandler) Upload(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "NO_FILE", Message: "se esperaba multipart/form-data con el campo image"})
	}
	for field := range form.File {
		if field != uploadField {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "UNEXPECTED_FIELD", Message: "campo de archivo inesperado: " + field})
		}
	}
	files := form.File[uploadField]
	switch {
	case len(files) == 0:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "NO_FILE", Message: "no se recibió ningún archivo"})
	case len(files) > 1:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "TOO_MANY_FILES", Message: "solo se acepta un archivo por petición"})
	}
	fh := files[0]
	if fh.Size > h.uc.MaxBytes() {
		return c.Status(fiber.StatusRequestEntityTooLarge).JSON(dto.ErrorResponse{Code: "FILE_TOO_LARGE", Message: domain.ErrFileTooLarge.Error()})
	}
	f, err := fh.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "UPLOAD_FAILED", Message: "no se pudo leer el archivo"})
	}
	defer f.Close()

	out, err := h.uc.Upload(dto.UploadInput{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get(fiber.HeaderContentType),
		Size:        fh.Size,
		Content:     f,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMissingFile):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "NO_FILE", Message: err.Error()})
		case errors.Is(err, domain.ErrUnsupportedMedia):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "UNSUPPORTED_TYPE", Message: err.Error()})
		case errors.Is(err, domain.ErrFileTooLarge):
			return c.Status(fiber.StatusRequestEntityTooLarge).JSON(dto.ErrorResponse{Code: "FILE_TOO_LARGE", Message: err.Error()})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "UPLOAD_FAILED", Message: "no se pudo guardar el archivo"})
	}
	return c.JSON(out)
}

package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Vitrina-web/internal/application/dto"
	"github.com/jhoicas/Vitrina-web/internal/domain"
	"github.com/jhoicas/Vitrina-web/pkg/logger"
)

// replaceFunc firma común de CategoryUseCase.Replace y GalleryUseCase.Replace.
type replaceFunc func(items []json.RawMessage, ifMatch string) (string, error)

// writeCollection responde el arreglo guardado con su versión como ETag.
func writeCollection(c *fiber.Ctx, col dto.CollectionResponse) error {
	if col.Version != "" {
		c.Set(fiber.HeaderETag, `"`+col.Version+`"`)
	}
	items := col.Items
	if items == nil {
		items = []json.RawMessage{}
	}
	return c.JSON(items)
}

// replaceCollection decodifica un arreglo JSON del cuerpo y reemplaza la colección completa.
// Un cuerpo que no es arreglo responde 400 sin tocar el archivo.
func replaceCollection(c *fiber.Ctx, replace replaceFunc, what string, log *logger.Logger) error {
	body := bytes.TrimSpace(c.Body())
	var items []json.RawMessage
	if len(body) == 0 || body[0] != '[' || json.Unmarshal(body, &items) != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "se esperaba un arreglo JSON de " + what})
	}

	version, err := replace(items, parseIfMatch(c.Get(fiber.HeaderIfMatch)))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrConflict):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "VERSION_CONFLICT", Message: "la colección fue modificada por otra sesión, recargue"})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		log.Error().Err(err).Str("collection", what).Msg("error guardando colección")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.SaveFailedResponse{Success: false, Error: "Failed to save " + what})
	}
	c.Set(fiber.HeaderETag, `"`+version+`"`)
	return c.JSON(dto.SuccessResponse{Success: true})
}

// parseIfMatch acepta `"v"`, `W/"v"` o `v`; `*` equivale a no exigir versión.
func parseIfMatch(h string) string {
	h = strings.TrimSpace(h)
	h = strings.TrimPrefix(h, "W/")
	h = strings.Trim(h, `"`)
	if h == "*" {
		return ""
	}
	return h
}

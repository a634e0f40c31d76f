package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"
	"github.com/jhoicas/Vitrina-web/internal/application/dto"
	"github.com/jhoicas/Vitrina-web/internal/interfaces/web"
)

// multipartOverhead margen sobre el tope de upload para cabeceras y límites multipart.
const multipartOverhead = 1 << 20

// NewApp construye la aplicación Fiber con vistas embebidas, recover y todas las rutas.
func NewApp(deps RouterDeps, maxUploadBytes int64) *fiber.App {
	engine := html.NewFileSystem(http.FS(web.Templates()), ".html")

	if deps.Assets == nil {
		deps.Assets = http.FS(web.Static())
	}

	app := fiber.New(fiber.Config{
		AppName:               deps.SiteName,
		Views:                 engine,
		BodyLimit:             int(maxUploadBytes) + multipartOverhead,
		ReadTimeout:           30 * time.Second,
		WriteTimeout:          30 * time.Second,
		IdleTimeout:           60 * time.Second,
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler,
	})
	app.Use(recover.New())

	Router(app, deps)
	return app
}

// errorHandler responde los errores de Fiber (404, 413 por BodyLimit, pánicos) con ErrorResponse.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}
	errCode := "INTERNAL"
	switch code {
	case fiber.StatusNotFound:
		errCode = "NOT_FOUND"
	case fiber.StatusRequestEntityTooLarge:
		errCode = "FILE_TOO_LARGE"
	}
	return c.Status(code).JSON(dto.ErrorResponse{Code: errCode, Message: err.Error()})
}

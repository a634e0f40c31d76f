package http

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/jhoicas/Vitrina-web/internal/application/usecase"
	"github.com/jhoicas/Vitrina-web/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CategoryUC   *usecase.CategoryUseCase
	GalleryUC    *usecase.GalleryUseCase
	UploadUC     *usecase.UploadUseCase
	SiteUC       *usecase.SiteUseCase
	SiteName     string
	UploadPrefix string          // p. ej. /uploads
	Uploads      http.FileSystem // directorio de archivos subidos
	Assets       http.FileSystem // css/js embebidos
	Log          *logger.Logger
}

// Router registra las páginas, la API y los archivos servidos.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": deps.SiteName})
	})

	// Páginas (solo lectura)
	pageHandler := NewPageHandler(deps.SiteUC, deps.SiteName, deps.UploadPrefix)
	app.Get("/", pageHandler.Home)
	app.Get("/services", pageHandler.Services)
	app.Get("/gallery", pageHandler.Gallery)
	app.Get("/admin", pageHandler.Admin)

	// API (sin autenticación)
	api := app.Group("/api")

	categoryHandler := NewCategoryHandler(deps.CategoryUC, deps.Log)
	api.Get("/categories", categoryHandler.List)
	api.Post("/categories", categoryHandler.Replace)

	galleryHandler := NewGalleryHandler(deps.GalleryUC, deps.Log)
	api.Get("/gallery", galleryHandler.List)
	api.Post("/gallery", galleryHandler.Replace)
	api.Delete("/gallery/image", galleryHandler.DeleteImage)

	uploadHandler := NewUploadHandler(deps.UploadUC)
	api.Post("/upload", uploadHandler.Upload)

	// Archivos
	if deps.Uploads != nil {
		app.Use(deps.UploadPrefix, filesystem.New(filesystem.Config{Root: deps.Uploads, MaxAge: 3600}))
	}
	if deps.Assets != nil {
		app.Use("/assets", filesystem.New(filesystem.Config{Root: deps.Assets, MaxAge: 300}))
	}
}

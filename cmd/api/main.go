package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/jhoicas/Vitrina-web/internal/application/usecase"
	"github.com/jhoicas/Vitrina-web/internal/infrastructure/filestore"
	"github.com/jhoicas/Vitrina-web/internal/infrastructure/uploads"
	httpRouter "github.com/jhoicas/Vitrina-web/internal/interfaces/http"
	"github.com/jhoicas/Vitrina-web/internal/interfaces/web"
	"github.com/jhoicas/Vitrina-web/pkg/config"
	"github.com/jhoicas/Vitrina-web/pkg/logger"
	"github.com/spf13/afero"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("site", cfg.App.SiteName).
		Str("data_dir", cfg.Data.Dir).
		Str("upload_dir", cfg.Upload.Dir).
		Msg("iniciando aplicación")

	fs := afero.NewOsFs()
	store := filestore.NewStore(fs, log)
	storage := uploads.NewLocalStorage(fs, cfg.Upload.Dir, cfg.Upload.URLPrefix, log)

	categoryUC := usecase.NewCategoryUseCase(
		filestore.NewCategoryRepository(store, cfg.Data.CategoriesFile), cfg.App.StrictValidation, log)
	galleryUC := usecase.NewGalleryUseCase(
		filestore.NewGalleryRepository(store, cfg.Data.GalleryFile), storage, cfg.App.StrictValidation, log)
	uploadUC := usecase.NewUploadUseCase(storage, cfg.Upload.MaxBytes, log)
	siteUC := usecase.NewSiteUseCase(categoryUC, galleryUC)

	app := httpRouter.NewApp(httpRouter.RouterDeps{
		CategoryUC:   categoryUC,
		GalleryUC:    galleryUC,
		UploadUC:     uploadUC,
		SiteUC:       siteUC,
		SiteName:     cfg.App.SiteName,
		UploadPrefix: storage.URLPrefix(),
		Uploads:      storage.FileSystem(),
		Assets:       http.FS(web.Static()),
		Log:          log,
	}, cfg.Upload.MaxBytes)

	// Swagger UI en local: http://localhost:<port>/docs (solo si existe el JSON generado)
	if _, err := os.Stat(cfg.Docs.File); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.Docs.File,
			Path:     "docs",
			Title:    cfg.App.SiteName + " API",
		}))
	}

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()
	log.Info().Str("addr", cfg.HTTP.Addr()).Msg("servidor escuchando")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

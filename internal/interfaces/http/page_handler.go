package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Vitrina-web/internal/application/usecase"
)

const (
	mainLayout  = "layouts/main"
	adminLayout = "layouts/admin"
)

// PageHandler renderiza las páginas públicas y el shell del administrador. Solo lectura.
type PageHandler struct {
	uc           *usecase.SiteUseCase
	siteName     string
	uploadPrefix string
}

// NewPageHandler construye el handler. uploadPrefix se pasa al editor para
// distinguir archivos subidos de URLs externas.
func NewPageHandler(uc *usecase.SiteUseCase, siteName, uploadPrefix string) *PageHandler {
	return &PageHandler{uc: uc, siteName: siteName, uploadPrefix: uploadPrefix}
}

// Home portada con las primeras categorías e imágenes.
func (h *PageHandler) Home(c *fiber.Ctx) error {
	home := h.uc.Home()
	return c.Render("home", fiber.Map{
		"Title":      h.siteName,
		"SiteName":   h.siteName,
		"Categories": home.Categories,
		"Gallery":    home.Gallery,
		"ActivePage": "home",
	}, mainLayout)
}

// Services todas las categorías con sus servicios.
func (h *PageHandler) Services(c *fiber.Ctx) error {
	return c.Render("services", fiber.Map{
		"Title":      "Services - " + h.siteName,
		"SiteName":   h.siteName,
		"Categories": h.uc.Services(),
		"ActivePage": "services",
	}, mainLayout)
}

// Gallery todas las imágenes.
func (h *PageHandler) Gallery(c *fiber.Ctx) error {
	return c.Render("gallery", fiber.Map{
		"Title":      "Gallery - " + h.siteName,
		"SiteName":   h.siteName,
		"Gallery":    h.uc.Gallery(),
		"ActivePage": "gallery",
	}, mainLayout)
}

// Admin shell del editor; los datos los pide admin.js a la API.
func (h *PageHandler) Admin(c *fiber.Ctx) error {
	return c.Render("admin", fiber.Map{
		"Title":        "Admin - " + h.siteName,
		"SiteName":     h.siteName,
		"UploadPrefix": h.uploadPrefix,
	}, adminLayout)
}

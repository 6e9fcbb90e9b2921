package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-admin/internal/application/ports"
	"github.com/jhoicas/Inventario-admin/internal/application/productview"
	"github.com/jhoicas/Inventario-admin/internal/application/usecase"
	"github.com/jhoicas/Inventario-admin/internal/interfaces/web"
	"github.com/jhoicas/Inventario-admin/pkg/logger"
)

// RouterDeps dependencias de la consola de administración.
type RouterDeps struct {
	Sessions   *productview.Registry
	SessionTTL time.Duration
	Renderer   *web.Renderer
	Exporter   ports.ProductListExporter
	Log        *logger.Logger
}

// Router registra las rutas de la consola.
func Router(app *fiber.App, deps RouterDeps) {
	admin := app.Group("/admin", SessionMiddleware(deps.Sessions, deps.SessionTTL))
	h := NewAdminHandler(deps.Sessions, deps.Renderer, deps.Exporter, deps.Log)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect(productsPath, fiber.StatusFound)
	})

	products := admin.Group("/products")
	products.Get("/", h.Page)
	products.Get("/state", h.State)
	products.Get("/export.pdf", h.Export)
	products.Get("/new", h.New)
	products.Post("/save", h.Save)
	products.Post("/close", h.Close)
	products.Get("/:id/edit", h.Edit)
	products.Get("/:id/delete", h.ConfirmDelete)
	products.Post("/:id/delete", h.Delete)

	admin.Post("/toasts/:id/dismiss", h.DismissToast)
	admin.Post("/session/leave", h.Leave)
}

// SandboxDeps dependencias de la API sandbox. Con JWTSecret vacío la API no exige token.
type SandboxDeps struct {
	ProductUC *usecase.ProductUseCase
	JWTSecret string
}

// SandboxRouter registra la API REST de productos (desarrollo y tests).
func SandboxRouter(app *fiber.App, deps SandboxDeps) {
	api := app.Group("/api")
	if deps.JWTSecret != "" {
		api.Use(ServiceAuthMiddleware(deps.JWTSecret))
	}

	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)
}

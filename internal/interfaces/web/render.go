package web

import (
	"embed"
	"fmt"
	"io"
	"io/fs"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"

	"github.com/jhoicas/Inventario-admin/internal/application/ports"
	"github.com/jhoicas/Inventario-admin/internal/application/productview"
	"github.com/jhoicas/Inventario-admin/pkg/money"
)

//go:embed templates/*.html
var templateFS embed.FS

// PageTitle título de la pantalla.
const PageTitle = "Manajemen Produk"

// PageTemplate vista de la pantalla (templates/products.html).
const PageTemplate = "products"

// ConfirmDialog diálogo de confirmación de borrado.
type ConfirmDialog struct {
	ProductID   string
	ProductName string
	Prompt      string
}

// PageData todo lo que necesita la plantilla.
type PageData struct {
	Title   string
	Columns []string
	Rows    []Row
	Modal   FormModal
	Confirm *ConfirmDialog
	Toasts  []ports.Notice
}

// Renderer arma los datos de la pantalla y expone el motor de vistas de Fiber
// sobre las plantillas embebidas.
type Renderer struct {
	engine       *html.Engine
	money        *money.Formatter
	skeletonRows int
}

// NewRenderer carga las plantillas embebidas en el motor html de Fiber.
func NewRenderer(f *money.Formatter, skeletonRows int) (*Renderer, error) {
	sub, err := fs.Sub(templateFS, "templates")
	if err != nil {
		return nil, fmt.Errorf("web: plantillas: %w", err)
	}
	engine := html.NewFileSystem(http.FS(sub), ".html")
	if err := engine.Load(); err != nil {
		return nil, fmt.Errorf("web: cargar plantillas: %w", err)
	}
	if skeletonRows <= 0 {
		skeletonRows = DefaultSkeletonRows
	}
	return &Renderer{engine: engine, money: f, skeletonRows: skeletonRows}, nil
}

// Views motor para fiber.Config{Views: ...}; los handlers usan c.Render(PageTemplate, data).
func (r *Renderer) Views() fiber.Views {
	return r.engine
}

// Rows filas de la tabla para el snapshot.
func (r *Renderer) Rows(snap productview.Snapshot) []Row {
	return TableRows(snap, r.money, r.skeletonRows)
}

// Page arma los datos de la página. form/errs solo se pasan al volver a mostrar
// un formulario inválido.
func (r *Renderer) Page(snap productview.Snapshot, toasts []ports.Notice, form *ProductForm, errs FieldErrors, confirm *ConfirmDialog) PageData {
	return PageData{
		Title:   PageTitle,
		Columns: Columns,
		Rows:    r.Rows(snap),
		Modal:   NewFormModal(snap.Modal, form, errs),
		Confirm: confirm,
		Toasts:  toasts,
	}
}

// Render escribe la página completa fuera de un contexto Fiber.
func (r *Renderer) Render(w io.Writer, data PageData) error {
	if err := r.engine.Render(w, PageTemplate, data); err != nil {
		return fmt.Errorf("web: renderizar: %w", err)
	}
	return nil
}

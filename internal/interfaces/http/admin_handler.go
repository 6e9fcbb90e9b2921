package http

import (
	"context"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-admin/internal/application/dto"
	"github.com/jhoicas/Inventario-admin/internal/application/ports"
	"github.com/jhoicas/Inventario-admin/internal/application/productview"
	"github.com/jhoicas/Inventario-admin/internal/interfaces/web"
	"github.com/jhoicas/Inventario-admin/pkg/logger"
)

const productsPath = "/admin/products"

// msgProductNotFound se muestra al editar un producto que ya no está en la tabla.
const msgProductNotFound = "Produk tidak ditemukan."

// AdminHandler sirve la pantalla de gestión de productos. Cada acción del usuario
// llega como un GET o un POST de formulario y termina en una redirección a la página
// (PRG) o en la página renderizada.
type AdminHandler struct {
	sessions *productview.Registry
	renderer *web.Renderer
	exporter ports.ProductListExporter
	log      *logger.Logger
	now      func() time.Time
}

// NewAdminHandler construye el handler.
func NewAdminHandler(sessions *productview.Registry, renderer *web.Renderer, exporter ports.ProductListExporter, log *logger.Logger) *AdminHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &AdminHandler{
		sessions: sessions,
		renderer: renderer,
		exporter: exporter,
		log:      log.Named("admin"),
		now:      time.Now,
	}
}

// Page GET /admin/products. Monta la vista en la primera visita; ?reload=1 fuerza un refresco.
func (h *AdminHandler) Page(c *fiber.Ctx) error {
	s := GetSession(c)
	ctx := c.UserContext()
	if !s.View.Mount(ctx) && c.Query("reload") == "1" {
		s.View.Refresh(ctx)
	}
	return h.render(c, fiber.StatusOK, s, nil, nil, nil)
}

// New GET /admin/products/new abre el modal en modo creación.
func (h *AdminHandler) New(c *fiber.Ctx) error {
	s := GetSession(c)
	s.View.Mount(c.UserContext())
	s.View.OpenCreate()
	return h.render(c, fiber.StatusOK, s, nil, nil, nil)
}

// Edit GET /admin/products/:id/edit abre el modal con el producto de la tabla.
func (h *AdminHandler) Edit(c *fiber.Ctx) error {
	s := GetSession(c)
	s.View.Mount(c.UserContext())
	if !s.View.OpenEditByID(c.Params("id")) {
		s.Notices.Error(msgProductNotFound)
		return h.render(c, fiber.StatusNotFound, s, nil, nil, nil)
	}
	return h.render(c, fiber.StatusOK, s, nil, nil, nil)
}

// Close POST /admin/products/close cierra el modal sin guardar.
func (h *AdminHandler) Close(c *fiber.Ctx) error {
	GetSession(c).View.CloseModal()
	return c.Redirect(productsPath, fiber.StatusSeeOther)
}

// Save POST /admin/products/save. El destino (crear o editar) lo fija el campo
// oculto editing_id del formulario, no el modal que la sesión tenga abierto.
// El formulario se valida antes de llamar a Save; si es inválido el modal se
// vuelve a mostrar con los errores y no hay llamada remota.
func (h *AdminHandler) Save(c *fiber.Ctx) error {
	s := GetSession(c)
	ctx := c.UserContext()
	var form web.ProductForm
	if err := c.BodyParser(&form); err != nil {
		h.retarget(ctx, s, "")
		return h.render(c, fiber.StatusUnprocessableEntity, s, &form, web.FieldErrors{"_": "Data formulir tidak valid."}, nil)
	}
	form.EditingID = strings.TrimSpace(form.EditingID)
	if !h.retarget(ctx, s, form.EditingID) {
		s.Notices.Error(msgProductNotFound)
		return h.render(c, fiber.StatusNotFound, s, nil, nil, nil)
	}
	payload, errs := form.Validate()
	if len(errs) > 0 {
		return h.render(c, fiber.StatusUnprocessableEntity, s, &form, errs, nil)
	}

	res := s.View.Save(ctx, payload)
	h.log.Debug().Str("op", string(res.Op)).Str("outcome", res.Outcome.String()).Str("product_id", res.ProductID).Msg("save")
	return c.Redirect(productsPath, fiber.StatusSeeOther)
}

// retarget deja el modal de la sesión apuntando a editingID ("" = crear); las
// pestañas comparten cookie, así que el modal puede estar en otro producto o
// cerrado. Devuelve false si el producto ya no está en la colección.
func (h *AdminHandler) retarget(ctx context.Context, s *productview.Session, editingID string) bool {
	modal := s.View.Snapshot().Modal
	current := ""
	if p := modal.Editing(); p != nil {
		current = p.ID
	}
	if modal.IsOpen() && current == editingID {
		return true
	}

	h.log.Debug().Str("form_target", editingID).Str("modal_target", current).Msg("modal desincronizado")
	s.View.Mount(ctx)
	if editingID == "" {
		s.View.OpenCreate()
		return true
	}
	return s.View.OpenEditByID(editingID)
}

// ConfirmDelete GET /admin/products/:id/delete muestra el diálogo de confirmación.
func (h *AdminHandler) ConfirmDelete(c *fiber.Ctx) error {
	s := GetSession(c)
	s.View.Mount(c.UserContext())
	id := c.Params("id")
	dialog := &web.ConfirmDialog{ProductID: id, Prompt: productview.MsgConfirmDelete}
	for _, p := range s.View.Snapshot().Products {
		if p.ID == id {
			dialog.ProductName = p.Name
			break
		}
	}
	return h.render(c, fiber.StatusOK, s, nil, nil, dialog)
}

// Delete POST /admin/products/:id/delete. confirm=yes confirma; cualquier otro valor
// equivale a rechazar y no se llama al servicio remoto.
func (h *AdminHandler) Delete(c *fiber.Ctx) error {
	s := GetSession(c)
	res := s.View.Delete(c.UserContext(), c.Params("id"), formConfirmer(c.FormValue("confirm")))
	h.log.Debug().Str("product_id", res.ProductID).Str("outcome", res.Outcome.String()).Msg("delete")
	return c.Redirect(productsPath, fiber.StatusSeeOther)
}

// DismissToast POST /admin/toasts/:id/dismiss.
func (h *AdminHandler) DismissToast(c *fiber.Ctx) error {
	GetSession(c).Notices.Dismiss(c.Params("id"))
	return c.Redirect(productsPath, fiber.StatusSeeOther)
}

// Leave POST /admin/session/leave desmonta la vista y descarta la colección.
func (h *AdminHandler) Leave(c *fiber.Ctx) error {
	s := GetSession(c)
	h.sessions.Leave(s.ID)
	c.ClearCookie(SessionCookie)
	return c.SendStatus(fiber.StatusNoContent)
}

// State GET /admin/products/state devuelve el estado renderizable en JSON.
func (h *AdminHandler) State(c *fiber.Ctx) error {
	s := GetSession(c)
	snap := s.View.Snapshot()

	out := dto.ViewStateResponse{
		Load:   snap.Load.String(),
		Modal:  snap.Modal.Kind.String(),
		Rows:   make([]dto.RowResponse, 0),
		Toasts: make([]dto.ToastResponse, 0),
	}
	if p := snap.Modal.Editing(); p != nil {
		out.EditingID = p.ID
	}
	for _, r := range h.renderer.Rows(snap) {
		out.Rows = append(out.Rows, dto.RowResponse{
			Placeholder: r.Placeholder,
			ID:          r.ID,
			ImageURL:    r.ImageURL,
			Name:        r.Name,
			Price:       r.Price,
			Stock:       r.Stock,
		})
	}
	for _, n := range s.Notices.Visible(h.now()) {
		out.Toasts = append(out.Toasts, dto.ToastResponse{ID: n.ID, Kind: string(n.Kind), Message: n.Message, CreatedAt: n.CreatedAt})
	}
	return c.JSON(out)
}

// Export GET /admin/products/export.pdf exporta la colección cacheada.
func (h *AdminHandler) Export(c *fiber.Ctx) error {
	s := GetSession(c)
	doc, err := h.exporter.ExportProductList(c.UserContext(), web.PageTitle, s.View.Snapshot().Products)
	if err != nil {
		h.log.Error().Err(err).Msg("exportar PDF")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "EXPORT_FAILED", Message: "no se pudo generar el PDF"})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="produk.pdf"`)
	return c.Send(doc)
}

func (h *AdminHandler) render(c *fiber.Ctx, status int, s *productview.Session, form *web.ProductForm, errs web.FieldErrors, confirm *web.ConfirmDialog) error {
	data := h.renderer.Page(s.View.Snapshot(), s.Notices.Visible(h.now()), form, errs, confirm)
	if err := c.Status(status).Render(web.PageTemplate, data); err != nil {
		h.log.Error().Err(err).Msg("renderizar página")
		return fiber.NewError(fiber.StatusInternalServerError, "render")
	}
	return nil
}

func formConfirmer(answer string) ports.Confirmer {
	yes := strings.EqualFold(strings.TrimSpace(answer), "yes")
	return ports.ConfirmFunc(func(context.Context, string) bool { return yes })
}

package http

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/arteideas/backend/internal/application/crm"
	"github.com/arteideas/backend/internal/application/dto"
)

// AgendaHandler maneja los eventos de agenda del CRM, más las dos páginas
// públicas de demostración que no requieren credenciales ni tenant.
type AgendaHandler struct {
	uc *crm.AgendaUseCase
}

// NewAgendaHandler construye el handler de agenda.
func NewAgendaHandler(uc *crm.AgendaUseCase) *AgendaHandler {
	return &AgendaHandler{uc: uc}
}

// Create POST /api/crm/agenda/eventos/
func (h *AgendaHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateEventoRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.uc.Create(c.Context(), GetTenantID(c), in)
	if err != nil {
		return mapError(c, err)
	}
	return ok(c, fiber.StatusCreated, out)
}

// List GET /api/crm/agenda/eventos/
func (h *AgendaHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return fail(c, fiber.StatusBadRequest, "VALIDATION", "paginación inválida")
	}
	page.DefaultPage()
	out, err := h.uc.List(c.Context(), GetTenantID(c), page.Limit, page.Offset)
	if err != nil {
		return mapError(c, err)
	}
	return ok(c, fiber.StatusOK, out)
}

// Proximos GET /api/crm/agenda/proximos/?dias=30&limit=10
func (h *AgendaHandler) Proximos(c *fiber.Ctx) error {
	dias, _ := strconv.Atoi(c.Query("dias", "30"))
	limit, _ := strconv.Atoi(c.Query("limit", "10"))
	out, err := h.uc.Proximos(c.Context(), GetTenantID(c), dias, limit)
	if err != nil {
		return mapError(c, err)
	}
	return ok(c, fiber.StatusOK, out)
}

// GetByID GET /api/crm/agenda/eventos/:id/
func (h *AgendaHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), GetTenantID(c), c.Params("id"))
	if err != nil {
		return mapError(c, err)
	}
	return ok(c, fiber.StatusOK, out)
}

// Update PATCH /api/crm/agenda/eventos/:id/
func (h *AgendaHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateEventoRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.uc.Update(c.Context(), GetTenantID(c), c.Params("id"), in)
	if err != nil {
		return mapError(c, err)
	}
	return ok(c, fiber.StatusOK, out)
}

// Delete DELETE /api/crm/agenda/eventos/:id/
func (h *AgendaHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), GetTenantID(c), c.Params("id")); err != nil {
		return mapError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// demoEventos datos de muestra para las páginas públicas. No tocan la base
// de datos: el demo debe funcionar sin tenant y sin credenciales.
func demoEventos() []dto.EventoResponse {
	base := time.Now().Truncate(time.Hour)
	return []dto.EventoResponse{
		{
			ID:     "demo-1",
			Titulo: "Sesión fotográfica — Colegio San Martín",
			Lugar:  "Estudio principal",
			Inicio: base.AddDate(0, 0, 2),
			Fin:    base.AddDate(0, 0, 2).Add(3 * time.Hour),
			Estado: "programado",
		},
		{
			ID:     "demo-2",
			Titulo: "Entrega de anuarios — Promoción 2026",
			Lugar:  "Oficina Arte Ideas",
			Inicio: base.AddDate(0, 0, 5),
			Fin:    base.AddDate(0, 0, 5).Add(2 * time.Hour),
			Estado: "programado",
		},
	}
}

// Demo GET /api/crm/agenda/demo/ (público, HTML)
func (h *AgendaHandler) Demo(c *fiber.Ctx) error {
	var b []byte
	b = append(b, `<!DOCTYPE html>
<html lang="es">
<head><meta charset="utf-8"><title>Agenda — Arte Ideas</title></head>
<body>
<h1>Próximos Eventos</h1>
<ul>
`...)
	for _, e := range demoEventos() {
		b = append(b, "<li>"...)
		b = append(b, e.Inicio.Format("02/01/2006 15:04")...)
		b = append(b, " — "...)
		b = append(b, e.Titulo...)
		b = append(b, "</li>\n"...)
	}
	b = append(b, `</ul>
</body>
</html>
`...)
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Send(b)
}

// DemoProximos GET /api/crm/agenda/proximos-eventos-demo/ (público, JSON)
func (h *AgendaHandler) DemoProximos(c *fiber.Ctx) error {
	return c.JSON(dto.ProximosEventosResponse{Eventos: demoEventos()})
}

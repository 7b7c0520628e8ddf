package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/arteideas/backend/internal/application/crm"
	"github.com/arteideas/backend/internal/application/dto"
)

// ContratoHandler maneja las peticiones HTTP de contratos, incluida la
// exportación a PDF.
type ContratoHandler struct {
	uc *crm.ContratoUseCase
}

// NewContratoHandler construye el handler.
func NewContratoHandler(uc *crm.ContratoUseCase) *ContratoHandler {
	return &ContratoHandler{uc: uc}
}

// Create POST /api/crm/contratos/
func (h *ContratoHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateContratoRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.uc.Create(c.Context(), GetTenantID(c), in)
	if err != nil {
		return mapError(c, err)
	}
	return ok(c, fiber.StatusCreated, out)
}

// List GET /api/crm/contratos/?cliente_id=...&limit=20&offset=0
func (h *ContratoHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return fail(c, fiber.StatusBadRequest, "VALIDATION", "paginación inválida")
	}
	page.DefaultPage()
	out, err := h.uc.List(c.Context(), GetTenantID(c), c.Query("cliente_id"), page.Limit, page.Offset)
	if err != nil {
		return mapError(c, err)
	}
	return ok(c, fiber.StatusOK, out)
}

// GetByID GET /api/crm/contratos/:id/
func (h *ContratoHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), GetTenantID(c), c.Params("id"))
	if err != nil {
		return mapError(c, err)
	}
	return ok(c, fiber.StatusOK, out)
}

// Update PATCH /api/crm/contratos/:id/
func (h *ContratoHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateContratoRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.uc.Update(c.Context(), GetTenantID(c), c.Params("id"), in)
	if err != nil {
		return mapError(c, err)
	}
	return ok(c, fiber.StatusOK, out)
}

// Delete DELETE /api/crm/contratos/:id/
func (h *ContratoHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), GetTenantID(c), c.Params("id")); err != nil {
		return mapError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// PDF GET /api/crm/contratos/:id/pdf/
func (h *ContratoHandler) PDF(c *fiber.Ctx) error {
	id := c.Params("id")
	doc, err := h.uc.PDF(c.Context(), GetTenantID(c), id)
	if err != nil {
		return mapError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`inline; filename="contrato-%s.pdf"`, id))
	return c.Send(doc)
}

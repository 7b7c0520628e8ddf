package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/arteideas/backend/internal/application/crm"
	"github.com/arteideas/backend/internal/application/dto"
)

// ActivoDigitalHandler maneja los entregables digitales del CRM.
type ActivoDigitalHandler struct {
	uc *crm.ActivoUseCase
}

// NewActivoDigitalHandler construye el handler.
func NewActivoDigitalHandler(uc *crm.ActivoUseCase) *ActivoDigitalHandler {
	return &ActivoDigitalHandler{uc: uc}
}

// Create POST /api/crm/activos/
func (h *ActivoDigitalHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateActivoDigitalRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.uc.Create(c.Context(), GetTenantID(c), in)
	if err != nil {
		return mapError(c, err)
	}
	return ok(c, fiber.StatusCreated, out)
}

// List GET /api/crm/activos/?cliente_id=...
func (h *ActivoDigitalHandler) List(c *fiber.Ctx) error {
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

// GetByID GET /api/crm/activos/:id/
func (h *ActivoDigitalHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), GetTenantID(c), c.Params("id"))
	if err != nil {
		return mapError(c, err)
	}
	return ok(c, fiber.StatusOK, out)
}

// Delete DELETE /api/crm/activos/:id/
func (h *ActivoDigitalHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), GetTenantID(c), c.Params("id")); err != nil {
		return mapError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/arteideas/backend/internal/application/dto"
	"github.com/arteideas/backend/internal/application/operations"
)

// ProduccionHandler maneja las órdenes de producción. Canónico en
// /api/operations/produccion/, con montaje legacy directo en /api/operations/.
type ProduccionHandler struct {
	uc *operations.ProduccionUseCase
}

// NewProduccionHandler construye el handler.
func NewProduccionHandler(uc *operations.ProduccionUseCase) *ProduccionHandler {
	return &ProduccionHandler{uc: uc}
}

// Create POST /api/operations/produccion/
func (h *ProduccionHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOrdenProduccionRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.uc.Create(c.Context(), GetTenantID(c), in)
	if err != nil {
		return mapError(c, err)
	}
	return ok(c, fiber.StatusCreated, out)
}

// List GET /api/operations/produccion/
func (h *ProduccionHandler) List(c *fiber.Ctx) error {
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

// GetByID GET /api/operations/produccion/:id/
func (h *ProduccionHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), GetTenantID(c), c.Params("id"))
	if err != nil {
		return mapError(c, err)
	}
	return ok(c, fiber.StatusOK, out)
}

// Update PATCH /api/operations/produccion/:id/
func (h *ProduccionHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateOrdenProduccionRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.uc.Update(c.Context(), GetTenantID(c), c.Params("id"), in)
	if err != nil {
		return mapError(c, err)
	}
	return ok(c, fiber.StatusOK, out)
}

// Delete DELETE /api/operations/produccion/:id/
func (h *ProduccionHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), GetTenantID(c), c.Params("id")); err != nil {
		return mapError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

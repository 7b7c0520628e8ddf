package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/arteideas/backend/internal/application/dto"
	"github.com/arteideas/backend/internal/application/operations"
)

// ActivoFisicoHandler maneja los activos físicos de operaciones con sus
// subrecursos (mantenimientos) y los recursos hermanos repuestos y
// financiamientos.
type ActivoFisicoHandler struct {
	uc *operations.ActivoFisicoUseCase
}

// NewActivoFisicoHandler construye el handler.
func NewActivoFisicoHandler(uc *operations.ActivoFisicoUseCase) *ActivoFisicoHandler {
	return &ActivoFisicoHandler{uc: uc}
}

// Create POST /api/operations/activos/
func (h *ActivoFisicoHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateActivoFisicoRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.uc.Create(c.Context(), GetTenantID(c), in)
	if err != nil {
		return mapError(c, err)
	}
	return ok(c, fiber.StatusCreated, out)
}

// List GET /api/operations/activos/
func (h *ActivoFisicoHandler) List(c *fiber.Ctx) error {
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

// GetByID GET /api/operations/activos/:id/
func (h *ActivoFisicoHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), GetTenantID(c), c.Params("id"))
	if err != nil {
		return mapError(c, err)
	}
	return ok(c, fiber.StatusOK, out)
}

// Update PATCH /api/operations/activos/:id/
func (h *ActivoFisicoHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateActivoFisicoRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.uc.Update(c.Context(), GetTenantID(c), c.Params("id"), in)
	if err != nil {
		return mapError(c, err)
	}
	return ok(c, fiber.StatusOK, out)
}

// Delete DELETE /api/operations/activos/:id/
func (h *ActivoFisicoHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), GetTenantID(c), c.Params("id")); err != nil {
		return mapError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// CreateMantenimiento POST /api/operations/activos/:id/mantenimientos/
func (h *ActivoFisicoHandler) CreateMantenimiento(c *fiber.Ctx) error {
	var in dto.CreateMantenimientoRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.uc.RegistrarMantenimiento(c.Context(), GetTenantID(c), c.Params("id"), in)
	if err != nil {
		return mapError(c, err)
	}
	return ok(c, fiber.StatusCreated, out)
}

// ListMantenimientos GET /api/operations/activos/:id/mantenimientos/
func (h *ActivoFisicoHandler) ListMantenimientos(c *fiber.Ctx) error {
	out, err := h.uc.ListMantenimientos(c.Context(), GetTenantID(c), c.Params("id"))
	if err != nil {
		return mapError(c, err)
	}
	return ok(c, fiber.StatusOK, out)
}

// CreateRepuesto POST /api/operations/repuestos/
func (h *ActivoFisicoHandler) CreateRepuesto(c *fiber.Ctx) error {
	var in dto.CreateRepuestoRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.uc.CreateRepuesto(c.Context(), GetTenantID(c), in)
	if err != nil {
		return mapError(c, err)
	}
	return ok(c, fiber.StatusCreated, out)
}

// ListRepuestos GET /api/operations/repuestos/
func (h *ActivoFisicoHandler) ListRepuestos(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return fail(c, fiber.StatusBadRequest, "VALIDATION", "paginación inválida")
	}
	page.DefaultPage()
	out, err := h.uc.ListRepuestos(c.Context(), GetTenantID(c), page.Limit, page.Offset)
	if err != nil {
		return mapError(c, err)
	}
	return ok(c, fiber.StatusOK, out)
}

// CreateFinanciamiento POST /api/operations/financiamientos/
func (h *ActivoFisicoHandler) CreateFinanciamiento(c *fiber.Ctx) error {
	var in dto.CreateFinanciamientoRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.uc.CreateFinanciamiento(c.Context(), GetTenantID(c), in)
	if err != nil {
		return mapError(c, err)
	}
	return ok(c, fiber.StatusCreated, out)
}

// ListFinanciamientos GET /api/operations/financiamientos/
func (h *ActivoFisicoHandler) ListFinanciamientos(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return fail(c, fiber.StatusBadRequest, "VALIDATION", "paginación inválida")
	}
	page.DefaultPage()
	out, err := h.uc.ListFinanciamientos(c.Context(), GetTenantID(c), page.Limit, page.Offset)
	if err != nil {
		return mapError(c, err)
	}
	return ok(c, fiber.StatusOK, out)
}

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/arteideas/backend/internal/application/commerce"
	"github.com/arteideas/backend/internal/application/dto"
)

// PedidoHandler maneja los pedidos de comercio. Se monta dos veces: en la
// ruta canónica /api/commerce/pedidos/ y en el alias deprecado
// /api/commerce/orders/.
type PedidoHandler struct {
	uc *commerce.PedidoUseCase
}

// NewPedidoHandler construye el handler.
func NewPedidoHandler(uc *commerce.PedidoUseCase) *PedidoHandler {
	return &PedidoHandler{uc: uc}
}

// Create POST /api/commerce/pedidos/
func (h *PedidoHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePedidoRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.uc.Create(c.Context(), GetTenantID(c), in)
	if err != nil {
		return mapError(c, err)
	}
	return ok(c, fiber.StatusCreated, out)
}

// List GET /api/commerce/pedidos/?cliente_id=...
func (h *PedidoHandler) List(c *fiber.Ctx) error {
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

// GetByID GET /api/commerce/pedidos/:id/
func (h *PedidoHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), GetTenantID(c), c.Params("id"))
	if err != nil {
		return mapError(c, err)
	}
	return ok(c, fiber.StatusOK, out)
}

// Update PATCH /api/commerce/pedidos/:id/
func (h *PedidoHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdatePedidoRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.uc.Update(c.Context(), GetTenantID(c), c.Params("id"), in)
	if err != nil {
		return mapError(c, err)
	}
	return ok(c, fiber.StatusOK, out)
}

// Delete DELETE /api/commerce/pedidos/:id/
func (h *PedidoHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), GetTenantID(c), c.Params("id")); err != nil {
		return mapError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

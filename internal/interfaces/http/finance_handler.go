package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/arteideas/backend/internal/application/dto"
	"github.com/arteideas/backend/internal/application/finance"
)

// FinanceHandler maneja las finanzas: categorías de gasto, gastos de personal
// y de servicios, y presupuestos por categoría y periodo.
type FinanceHandler struct {
	uc *finance.FinanceUseCase
}

// NewFinanceHandler construye el handler de finanzas.
func NewFinanceHandler(uc *finance.FinanceUseCase) *FinanceHandler {
	return &FinanceHandler{uc: uc}
}

// CreateCategoria POST /api/finance/categorias-gasto/
func (h *FinanceHandler) CreateCategoria(c *fiber.Ctx) error {
	var in dto.CreateCategoriaGastoRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.uc.CreateCategoria(c.Context(), GetTenantID(c), in)
	if err != nil {
		return mapError(c, err)
	}
	return ok(c, fiber.StatusCreated, out)
}

// ListCategorias GET /api/finance/categorias-gasto/
func (h *FinanceHandler) ListCategorias(c *fiber.Ctx) error {
	out, err := h.uc.ListCategorias(c.Context(), GetTenantID(c))
	if err != nil {
		return mapError(c, err)
	}
	return ok(c, fiber.StatusOK, out)
}

// DeleteCategoria DELETE /api/finance/categorias-gasto/:id/
func (h *FinanceHandler) DeleteCategoria(c *fiber.Ctx) error {
	if err := h.uc.DeleteCategoria(c.Context(), GetTenantID(c), c.Params("id")); err != nil {
		return mapError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// CreateGastoPersonal POST /api/finance/gastos-personal/
func (h *FinanceHandler) CreateGastoPersonal(c *fiber.Ctx) error {
	var in dto.CreateGastoPersonalRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.uc.CreateGastoPersonal(c.Context(), GetTenantID(c), in)
	if err != nil {
		return mapError(c, err)
	}
	return ok(c, fiber.StatusCreated, out)
}

// ListGastosPersonal GET /api/finance/gastos-personal/?periodo=2026-08
func (h *FinanceHandler) ListGastosPersonal(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return fail(c, fiber.StatusBadRequest, "VALIDATION", "paginación inválida")
	}
	page.DefaultPage()
	out, err := h.uc.ListGastosPersonal(c.Context(), GetTenantID(c), c.Query("periodo"), page.Limit, page.Offset)
	if err != nil {
		return mapError(c, err)
	}
	return ok(c, fiber.StatusOK, out)
}

// DeleteGastoPersonal DELETE /api/finance/gastos-personal/:id/
func (h *FinanceHandler) DeleteGastoPersonal(c *fiber.Ctx) error {
	if err := h.uc.DeleteGastoPersonal(c.Context(), GetTenantID(c), c.Params("id")); err != nil {
		return mapError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// CreateGastoServicio POST /api/finance/gastos-servicios/
func (h *FinanceHandler) CreateGastoServicio(c *fiber.Ctx) error {
	var in dto.CreateGastoServicioRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.uc.CreateGastoServicio(c.Context(), GetTenantID(c), in)
	if err != nil {
		return mapError(c, err)
	}
	return ok(c, fiber.StatusCreated, out)
}

// ListGastosServicio GET /api/finance/gastos-servicios/
func (h *FinanceHandler) ListGastosServicio(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return fail(c, fiber.StatusBadRequest, "VALIDATION", "paginación inválida")
	}
	page.DefaultPage()
	out, err := h.uc.ListGastosServicio(c.Context(), GetTenantID(c), page.Limit, page.Offset)
	if err != nil {
		return mapError(c, err)
	}
	return ok(c, fiber.StatusOK, out)
}

// DeleteGastoServicio DELETE /api/finance/gastos-servicios/:id/
func (h *FinanceHandler) DeleteGastoServicio(c *fiber.Ctx) error {
	if err := h.uc.DeleteGastoServicio(c.Context(), GetTenantID(c), c.Params("id")); err != nil {
		return mapError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// CreatePresupuesto POST /api/finance/presupuestos/
func (h *FinanceHandler) CreatePresupuesto(c *fiber.Ctx) error {
	var in dto.CreatePresupuestoRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.uc.CreatePresupuesto(c.Context(), GetTenantID(c), in)
	if err != nil {
		return mapError(c, err)
	}
	return ok(c, fiber.StatusCreated, out)
}

// ListPresupuestos GET /api/finance/presupuestos/?periodo=2026-08
func (h *FinanceHandler) ListPresupuestos(c *fiber.Ctx) error {
	out, err := h.uc.ListPresupuestos(c.Context(), GetTenantID(c), c.Query("periodo"))
	if err != nil {
		return mapError(c, err)
	}
	return ok(c, fiber.StatusOK, out)
}

// DeletePresupuesto DELETE /api/finance/presupuestos/:id/
func (h *FinanceHandler) DeletePresupuesto(c *fiber.Ctx) error {
	if err := h.uc.DeletePresupuesto(c.Context(), GetTenantID(c), c.Params("id")); err != nil {
		return mapError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

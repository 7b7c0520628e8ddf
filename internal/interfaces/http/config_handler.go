package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/arteideas/backend/internal/application/dto"
	"github.com/arteideas/backend/internal/application/usecase"
)

// ConfigHandler expone la configuración del negocio: ajustes del tenant,
// gestión de usuarios, roles y permisos, y administración de tenants (solo
// super admin).
type ConfigHandler struct {
	uc *usecase.ConfigUseCase
}

// NewConfigHandler construye el handler de configuración.
func NewConfigHandler(uc *usecase.ConfigUseCase) *ConfigHandler {
	return &ConfigHandler{uc: uc}
}

// GetBusiness GET /api/core/config/business/
func (h *ConfigHandler) GetBusiness(c *fiber.Ctx) error {
	out, err := h.uc.GetBusinessConfig(c.Context(), GetTenantID(c))
	if err != nil {
		return mapError(c, err)
	}
	return ok(c, fiber.StatusOK, out)
}

// PutBusiness PUT /api/core/config/business/
func (h *ConfigHandler) PutBusiness(c *fiber.Ctx) error {
	var in dto.BusinessConfigRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.uc.PutBusinessConfig(c.Context(), GetTenantID(c), in)
	if err != nil {
		return mapError(c, err)
	}
	return ok(c, fiber.StatusOK, out)
}

// ListUsers GET /api/core/config/users/
func (h *ConfigHandler) ListUsers(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return fail(c, fiber.StatusBadRequest, "VALIDATION", "paginación inválida")
	}
	page.DefaultPage()
	out, err := h.uc.ListUsers(c.Context(), GetTenantID(c), page.Limit, page.Offset)
	if err != nil {
		return mapError(c, err)
	}
	return ok(c, fiber.StatusOK, out)
}

// CreateUser POST /api/core/config/users/
func (h *ConfigHandler) CreateUser(c *fiber.Ctx) error {
	var in dto.CreateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.uc.CreateUser(c.Context(), GetTenantID(c), in)
	if err != nil {
		return mapError(c, err)
	}
	return ok(c, fiber.StatusCreated, out)
}

// GetUser GET /api/core/config/users/:user_id/
func (h *ConfigHandler) GetUser(c *fiber.Ctx) error {
	out, err := h.uc.GetUser(c.Context(), GetTenantID(c), c.Params("user_id"))
	if err != nil {
		return mapError(c, err)
	}
	return ok(c, fiber.StatusOK, out)
}

// UpdateUser PATCH /api/core/config/users/:user_id/
func (h *ConfigHandler) UpdateUser(c *fiber.Ctx) error {
	var in dto.UpdateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.uc.UpdateUser(c.Context(), GetTenantID(c), c.Params("user_id"), in)
	if err != nil {
		return mapError(c, err)
	}
	return ok(c, fiber.StatusOK, out)
}

// DeactivateUser DELETE /api/core/config/users/:user_id/
//
// La baja es lógica: el usuario queda inactive y sus sesiones se revocan,
// pero la fila nunca se borra.
func (h *ConfigHandler) DeactivateUser(c *fiber.Ctx) error {
	if err := h.uc.DeactivateUser(c.Context(), GetTenantID(c), c.Params("user_id")); err != nil {
		return mapError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListRoles GET /api/core/config/roles/
func (h *ConfigHandler) ListRoles(c *fiber.Ctx) error {
	return ok(c, fiber.StatusOK, h.uc.ListRoles(c.Context()))
}

// ListPermissions GET /api/core/config/permissions/
func (h *ConfigHandler) ListPermissions(c *fiber.Ctx) error {
	out, err := h.uc.ListPermissions(c.Context(), GetTenantID(c))
	if err != nil {
		return mapError(c, err)
	}
	return ok(c, fiber.StatusOK, out)
}

// GetRolePermissions GET /api/core/config/permissions/:role/
func (h *ConfigHandler) GetRolePermissions(c *fiber.Ctx) error {
	out, err := h.uc.GetRolePermissions(c.Context(), GetTenantID(c), c.Params("role"))
	if err != nil {
		return mapError(c, err)
	}
	return ok(c, fiber.StatusOK, out)
}

// SetRolePermissions PUT /api/core/config/permissions/:role/
func (h *ConfigHandler) SetRolePermissions(c *fiber.Ctx) error {
	var in dto.SetRolePermissionsRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.uc.SetRolePermissions(c.Context(), GetTenantID(c), c.Params("role"), in)
	if err != nil {
		return mapError(c, err)
	}
	return ok(c, fiber.StatusOK, out)
}

// ListTenants GET /api/core/config/tenants/ (super admin)
func (h *ConfigHandler) ListTenants(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return fail(c, fiber.StatusBadRequest, "VALIDATION", "paginación inválida")
	}
	page.DefaultPage()
	out, err := h.uc.ListTenants(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return mapError(c, err)
	}
	return ok(c, fiber.StatusOK, out)
}

// CreateTenant POST /api/core/config/tenants/ (super admin)
func (h *ConfigHandler) CreateTenant(c *fiber.Ctx) error {
	var in dto.CreateTenantRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.uc.CreateTenant(c.Context(), in)
	if err != nil {
		return mapError(c, err)
	}
	return ok(c, fiber.StatusCreated, out)
}

// ListTenantUsers GET /api/core/config/tenants/:tenant_id/users/ (super admin)
//
// El tenant viene en el path, no del claim: es la única ruta donde el super
// admin enumera miembros de un tenant arbitrario.
func (h *ConfigHandler) ListTenantUsers(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return fail(c, fiber.StatusBadRequest, "VALIDATION", "paginación inválida")
	}
	page.DefaultPage()
	out, err := h.uc.ListTenantUsers(c.Context(), c.Params("tenant_id"), page.Limit, page.Offset)
	if err != nil {
		return mapError(c, err)
	}
	return ok(c, fiber.StatusOK, out)
}

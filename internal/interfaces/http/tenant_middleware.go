package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// HeaderTenant permite al super admin operar sobre un tenant ajeno al de su
// token. Para cualquier otro principal la cabecera se ignora.
const HeaderTenant = "X-Tenant"

// TenantMiddleware resuelve el tenant activo de la petición. Orden de
// precedencia: claim del token, luego X-Tenant si el principal es super
// admin. Si las fuentes discrepan gana el claim salvo super admin. Sin
// tenant resuelto en una ruta con ámbito de tenant la petición falla con
// TENANT_REQUIRED.
func TenantMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tenant := GetTenantID(c)
		if header := strings.TrimSpace(c.Get(HeaderTenant)); header != "" && isSuperAdmin(c) {
			tenant = header
			c.Locals(LocalTenantID, tenant)
		}
		if tenant == "" {
			return fail(c, fiber.StatusBadRequest, "TENANT_REQUIRED", "tenant requerido")
		}
		return c.Next()
	}
}

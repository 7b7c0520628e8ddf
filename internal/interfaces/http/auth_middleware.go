package http

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/arteideas/backend/internal/application/authz"
	"github.com/arteideas/backend/internal/domain/entity"
	"github.com/arteideas/backend/pkg/ids"
	"github.com/arteideas/backend/pkg/jwt"
)

// Locals keys compartidas por los middlewares y los handlers.
const (
	LocalUserID        = "user_id"
	LocalTenantID      = "tenant_id"
	LocalRoles         = "roles"
	LocalCorrelationID = "correlation_id"
)

// HeaderCorrelationID se acepta entrante y se refleja siempre en la respuesta.
const HeaderCorrelationID = "X-Correlation-ID"

// CorrelationMiddleware asigna un id de correlación a cada petición. Si el
// cliente ya trae uno se respeta; si no, se genera un ULID.
func CorrelationMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		cid := strings.TrimSpace(c.Get(HeaderCorrelationID))
		if cid == "" {
			cid = ids.New()
		}
		c.Locals(LocalCorrelationID, cid)
		c.Set(HeaderCorrelationID, cid)
		return c.Next()
	}
}

// AuthMiddleware valida el Bearer token y deja UserID, TenantID y Roles en
// c.Locals. El tenant del claim es el tenant activo salvo que el resolver de
// tenant lo sustituya después (solo super admin).
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get("Authorization")
		if header == "" {
			return fail(c, fiber.StatusUnauthorized, "MISSING_TOKEN", "Authorization header requerido")
		}
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return fail(c, fiber.StatusUnauthorized, "INVALID_TOKEN", "formato: Bearer <token>")
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return fail(c, fiber.StatusUnauthorized, "MISSING_TOKEN", "token vacío")
		}
		claims, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return fail(c, fiber.StatusUnauthorized, "INVALID_TOKEN", "token inválido o expirado")
		}
		c.Locals(LocalUserID, claims.UserID)
		c.Locals(LocalTenantID, claims.TenantID)
		c.Locals(LocalRoles, claims.Roles)
		return c.Next()
	}
}

// RequireRole corta la petición con la política de acceso antes de llegar al
// handler. Una denegación por tenant ajeno responde igual que un recurso
// inexistente.
func RequireRole(role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var principal *authz.Principal
		if uid := GetUserID(c); uid != "" {
			principal = &authz.Principal{UserID: uid, Roles: GetRoles(c)}
		}
		switch authz.Decide(authz.Input{
			Principal:    principal,
			ActiveTenant: GetTenantID(c),
			RequiredRole: role,
		}) {
		case authz.Allow:
			return c.Next()
		case authz.DenyUnauthorized:
			return fail(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "no autorizado")
		case authz.DenyNotFound:
			return fail(c, fiber.StatusNotFound, "NOT_FOUND", "recurso no encontrado")
		default:
			return fail(c, fiber.StatusForbidden, "FORBIDDEN", "rol insuficiente")
		}
	}
}

// PermissionSource resuelve los permisos efectivos de un principal en un
// tenant (override almacenado del rol o los por defecto).
type PermissionSource interface {
	EffectivePermissions(ctx context.Context, tenantID string, roles []string) ([]string, error)
}

// RequirePermission exige una clave de permiso además del rango de rol que ya
// verificó RequireRole. El super admin no consulta la fuente: los overrides
// de un tenant nunca lo recortan.
func RequirePermission(src PermissionSource, perm string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var principal *authz.Principal
		if uid := GetUserID(c); uid != "" {
			principal = &authz.Principal{UserID: uid, Roles: GetRoles(c)}
		}
		in := authz.Input{
			Principal:          principal,
			ActiveTenant:       GetTenantID(c),
			RequiredRole:       entity.RoleStaff,
			RequiredPermission: perm,
		}
		if principal != nil && !isSuperAdmin(c) {
			perms, err := src.EffectivePermissions(c.Context(), GetTenantID(c), GetRoles(c))
			if err != nil {
				return mapError(c, err)
			}
			in.Permissions = perms
		}
		switch authz.Decide(in) {
		case authz.Allow:
			return c.Next()
		case authz.DenyUnauthorized:
			return fail(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "no autorizado")
		case authz.DenyNotFound:
			return fail(c, fiber.StatusNotFound, "NOT_FOUND", "recurso no encontrado")
		default:
			return fail(c, fiber.StatusForbidden, "FORBIDDEN", "permiso insuficiente")
		}
	}
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalUserID).(string)
	return s
}

// GetTenantID devuelve el tenant activo de la petición.
func GetTenantID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalTenantID).(string)
	return s
}

// GetRoles devuelve los roles del principal en el tenant activo.
func GetRoles(c *fiber.Ctx) []string {
	rs, _ := c.Locals(LocalRoles).([]string)
	return rs
}

// GetCorrelationID devuelve el id de correlación de la petición.
func GetCorrelationID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalCorrelationID).(string)
	return s
}

// isSuperAdmin informa si el principal lleva el rol super_admin.
func isSuperAdmin(c *fiber.Ctx) bool {
	for _, r := range GetRoles(c) {
		if r == entity.RoleSuperAdmin {
			return true
		}
	}
	return false
}

package authz

import "github.com/arteideas/backend/internal/domain/entity"

// Decision resultado de evaluar la política de acceso. La política es una
// función pura: los middlewares la consultan antes de invocar cualquier
// handler, y una denegación corta la petición sin efectos observables.
type Decision int

const (
	Allow Decision = iota
	// DenyUnauthorized sin credenciales donde se exigían (401).
	DenyUnauthorized
	// DenyForbidden credenciales válidas pero rol insuficiente (403).
	DenyForbidden
	// DenyNotFound enmascara recursos de otro tenant como inexistentes (404),
	// para no permitir enumerar tenants ajenos.
	DenyNotFound
)

// Principal identidad autenticada con sus roles en el tenant activo.
type Principal struct {
	UserID string
	Roles  []string
}

// Input entrada de la política: principal (nil = anónimo), tenant activo,
// rol mínimo exigido por la ruta ("" = pública) y tenant del objeto cargado
// ("" si el handler aún no cargó ninguno). RequiredPermission exige además
// una clave presente en Permissions, los permisos efectivos del principal en
// el tenant activo (override del tenant o los por defecto del rol).
type Input struct {
	Principal          *Principal
	ActiveTenant       string
	RequiredRole       string
	RequiredPermission string
	Permissions        []string
	TargetTenant       string
}

// rank ordena los roles por capacidad. Un rol desconocido no otorga nada.
func rank(role string) int {
	switch role {
	case entity.RoleSuperAdmin:
		return 3
	case entity.RoleTenantAdmin:
		return 2
	case entity.RoleStaff:
		return 1
	default:
		return 0
	}
}

// maxRank devuelve la capacidad más alta del principal.
func maxRank(p *Principal) int {
	best := 0
	for _, r := range p.Roles {
		if v := rank(r); v > best {
			best = v
		}
	}
	return best
}

// Decide evalúa la tabla de decisión de la política de acceso.
func Decide(in Input) Decision {
	// Rutas públicas: siempre permitidas, incluso anónimas.
	if in.RequiredRole == "" {
		return Allow
	}
	if in.Principal == nil {
		return DenyUnauthorized
	}
	// El super admin opera sobre cualquier tenant.
	if maxRank(in.Principal) >= rank(entity.RoleSuperAdmin) {
		return Allow
	}
	// Objeto de otro tenant: misma respuesta que inexistente.
	if in.TargetTenant != "" && in.TargetTenant != in.ActiveTenant {
		return DenyNotFound
	}
	// Sin rol alguno en el tenant activo el principal no debe poder
	// distinguir el recurso de uno inexistente.
	if maxRank(in.Principal) == 0 {
		return DenyNotFound
	}
	if maxRank(in.Principal) < rank(in.RequiredRole) {
		return DenyForbidden
	}
	// Con rango suficiente, la clave de permiso exigida debe estar en el
	// conjunto efectivo del principal. El super admin ya fue admitido: los
	// overrides de un tenant nunca lo recortan.
	if in.RequiredPermission != "" && !hasPermission(in.Permissions, in.RequiredPermission) {
		return DenyForbidden
	}
	return Allow
}

func hasPermission(perms []string, key string) bool {
	for _, p := range perms {
		if p == key {
			return true
		}
	}
	return false
}
